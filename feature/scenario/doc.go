// Package scenario replays scripted collection changes and renders what the
// reconciler did at every step.
//
// # Format
//
// Scenarios are YAML documents:
//
//	name: shrink-and-grow
//	stash_size: 1
//	start_offset: 1
//	capacities: {1: 0}
//	steps:
//	  - set: [a, b, "1:header", {type: 2, text: c}]
//	  - attach
//	  - set: [a]
//	  - capacity: {type: 0, max: 2}
//	  - detach
//	  - clear_pool
//
// Items are "text", "<type>:text" or a {type, text} mapping. The supported steps are
// set, attach, detach, refresh, capacity and clear_pool.
//
// # Sources
//
// A Store reads scenarios from local files or, for references of the form
// "storage:<key>", from the configured bucket. Bucket reads are cached with a TTL and
// concurrent fetches of one key are collapsed.
//
// # HTTP Endpoints
//
//   - POST /scenarios/run : Run the YAML body.
//   - GET /scenarios : List stored scenarios.
//   - GET /scenarios/:name : Run a stored scenario.
//   - PUT /scenarios/:name : Validate and store a scenario.
package scenario
