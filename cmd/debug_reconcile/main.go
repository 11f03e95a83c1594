package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"collection-adapter/core/reconcile"
	"collection-adapter/feature/scenario"
)

// builtin exercises growth, retyping, stashing and detach on one host.
const builtin = `
name: debug
stash_size: 2
start_offset: 1
end_offset: 1
steps:
  - set: [a, b, c, d]
  - attach
  - set: [a, "1:b", c]
  - set: [a]
  - set: [a, b, c, d, e]
  - capacity: {type: 0, max: 1}
  - detach
`

func main() {
	data := []byte(builtin)
	if len(os.Args) > 1 {
		b, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		data = b
	}

	sc, err := scenario.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	res, runErr := scenario.NewRunner(reconcile.DefaultSettings(), nil).Run(context.Background(), sc)
	if res == nil {
		log.Fatal(runErr)
	}

	for _, st := range res.Steps {
		fmt.Printf("=== STEP %d: %s ===\n", st.Index, st.Step)
		for _, op := range st.Ops {
			fmt.Printf("  %-12s index=%d count=%d\n", op.Kind, op.Index, op.Count)
		}
		for _, r := range st.Reports {
			out, _ := json.Marshal(r)
			fmt.Printf("  report %s\n", out)
		}
		for _, c := range st.Snapshot.Children {
			fmt.Printf("  [%d] %s %q stashed=%v\n", c.Index, c.ID, c.Label, c.Stashed)
		}
		if st.Error != "" {
			fmt.Printf("  error: %s\n", st.Error)
		}
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
