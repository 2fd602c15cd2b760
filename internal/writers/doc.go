// Package writers turns a run result into serialized output.
//
// Design:
//   - Writers own all presentation; greedy and search stay domain-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
//   - Formats register themselves in init() and are dispatched by name.
package writers
