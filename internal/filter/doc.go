// Package filter derives narrowed views of the entity collections.
//
// ApplyFilters and ApplySearch are pure, total, order-preserving
// functions: they never mutate their input, return matches in the input
// order, and produce the same result for the same inputs every time.
// Recomputing from scratch is always safe; Memo only short-circuits the
// O(n) pass when both the collection and the criteria are unchanged.
//
// Text matching lowercases and strips diacritics (NFD decomposition
// followed by removal of combining marks) on both sides, so "jose"
// finds "José".
package filter
