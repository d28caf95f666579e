// Package pipeline drives a conversion: it indexes every unitig extremity,
// infers links, then re-streams the sequences and hands each unitig, with its
// identity and links, to a visit callback in input order.
//
// A pipeline owns its index and link state; nothing is shared between runs.
// The only contract to implement is Source, which must yield the same records
// on every call.
package pipeline
