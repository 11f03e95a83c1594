// Package utils provides small conversion helpers shared by the feature packages,
// mostly for turning loosely typed decoded values (YAML, path parameters) into ints.
package utils
