// Package symbol provides an interning table for descriptor and class
// name strings.
//
// Interning gives every distinct string a single canonical *Symbol, so
// symbol comparison throughout the library is pointer comparison. The
// signature equality contract depends on this: descriptor symbols are
// compared by handle, never re-scanned.
package symbol
