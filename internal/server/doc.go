// Package server implements the bookstand HTTP API surface.
//
// Owns:
//   - HTTP routing, handlers, and request/response contracts
//   - The BookStore interface and its memory and sqlite backends
//   - The uniform data/links response envelope
//
// Does not own:
//   - Logger construction (internal/logging)
//   - Process configuration (cmd/bookstand-server reads the environment)
//
// Invariants:
//   - Success responses go through writeJSON and carry the envelope
//   - Absence (including an unparseable path id) is a 404 with an empty body
//   - Ids come from the current last record only: last id + 1, or 1 when
//     the collection is empty
package server
