// Package writers turns annotated unitigs into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (BCALM headers, GFA, DOT, JSONL).
//   - core/graph stays domain-only; the pipeline stays orchestration-only.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
package writers
