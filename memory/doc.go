// Package memory holds the family memory data model and its persistence.
//
// A Record is one contributed memory (category, author, free text, optional
// embedded photo). Records live in a Store: an ordered, append-only sequence
// mirrored in full to a single persistent Slot on every mutation. The Slot is
// a plain key-value abstraction so the same Store works against a JSON file
// on disk (FileSlot) or an in-process fake (MemorySlot) in tests.
//
// Hydration is forgiving: a missing or unparsable slot yields an empty store
// (the failure is logged, never raised). Persistence failures on writes do
// propagate to the caller.
package memory
