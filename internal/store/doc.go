// Package store persists the console's local state between runs.
//
// Two kinds of state live here:
//
//   - The session: a small set of key-value pairs (token plus derived
//     profile fields) written on sign-in and cleared wholesale on
//     sign-out or token expiry. Writes replace the whole set in a single
//     transaction so a reader never observes a half-written session.
//
//   - Entity snapshots: the last fetched usuarios/células collections,
//     serialized as JSON with their fetch time, so the console can render
//     a stale-marked listing when the backend is unreachable.
//
// Store is the interface; SQLiteStore is the production implementation
// backed by modernc.org/sqlite, and MockStore is an in-memory double for
// tests.
package store
