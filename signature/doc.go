// Package signature resolves method descriptors into immutable
// Signature values: the ordered parameter types, the return type, and
// the slot accounting later compilation stages consume.
//
// Two construction paths exist. New tokenizes descriptor text and
// resolves each reference through a TypeResolver, which may return
// unloaded placeholders for classes not yet materialized. That is
// deferred resolution, not an error; the Maybe* queries widen
// conservatively over it. NewFromMethodShape trusts an
// already-structured, fully resolved descriptor and re-tokenizes
// nothing.
//
// Signature equality is independent of the accessing class: it compares
// the descriptor symbol and the canonical identity of every resolved
// type, never where resolution happened.
package signature
