// Package quartz provides the compiler-interface view of method signatures
// for a JVM-style virtual machine with inline (value) classes.
//
// The compiler front end sees callables through their method descriptors:
// a textual encoding of parameter types and a return type, such as
// (IDQPoint;)V. This library resolves descriptors against a canonical type
// registry, computes the slot accounting calling-convention code depends
// on, and tracks the never-null property of value-class occurrences.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	quartz/              Root package with the TypeResolver and MethodShape interfaces
//	├── signature/       The resolved Signature aggregate and its query surface
//	├── types/           Type model: kinds, canonical primitives, class references,
//	│                    value classes, never-null wrapper, interning registry
//	├── descriptor/      Lazy method-descriptor tokenizer
//	├── symbol/          Interning symbol table (canonical pointer identity)
//	├── errors/          Structured error types for debugging
//	└── cmd/sigdump/     Debug CLI that resolves and pretty-prints a descriptor
//
// # Quick Start
//
// Resolve a descriptor:
//
//	reg := types.NewRegistry()
//	reg.DefineValueClass(symbol.Intern("Point"))
//	owner := reg.DefineObjectClass(symbol.Intern("Main"))
//
//	sig, err := signature.New(owner, nil, symbol.Intern("(IDQPoint;)V"), reg)
//	if err != nil {
//		// malformed descriptor or hard resolution failure
//	}
//	sig.ParameterCount() // 3
//	sig.SlotCount()      // 4 (int=1, double=2, Point=1)
//	sig.IsNeverNullAt(2) // true
//
// # Canonical Identity
//
// Types denoting the same resolved class or primitive are pointer-identical.
// The registry interns class references; signature equality compares those
// handles and never performs structural type comparison.
//
// # Deferred Resolution
//
// A resolver may return an unloaded placeholder for a class that has not
// been materialized yet. That is valid steady-state data, not an error; the
// Maybe* query family widens conservatively over it.
package quartz
