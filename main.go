package main

import "collection-adapter/cmd"

func main() {
	cmd.Execute()
}
