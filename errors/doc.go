// Package errors provides structured error types for the quartz library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: descriptor text, class name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidTag).
//		Descriptor("(IX)V").
//		Detail("unknown type tag 'X' at offset 2").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidTag("(IX)V", 2, 'X')
//	err := errors.ClassNotFound("com/example/Missing", "Main")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
