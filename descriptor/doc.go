// Package descriptor tokenizes method descriptors.
//
// A method descriptor encodes a callable's parameter and return types as
// text, for example (IDQPoint;)V: one int, one double, one null-free
// value-class Point, returning void. The Stream walks that text lazily,
// one token at a time, in declaration order.
//
// The grammar:
//
//	method:    '(' field* ')' return
//	return:    field | 'V'
//	field:     base | 'L' name ';' | 'Q' name ';' | '[' + field
//	base:      B C D F I J S Z
//
// Q references are value-class occurrences and carry the never-null
// marker. Arrays are treated as opaque reference names; their element
// types are validated syntactically but not split out.
//
// Malformed input (missing return marker, unknown tag, unterminated
// class name, trailing text) is a fatal parse error; the stream never
// silently truncates.
package descriptor
