// Package types models the resolved types a signature refers to.
//
// The model is a closed set of variants: canonical primitives, object
// class references (loaded or unloaded placeholders), loaded value
// classes, and a never-null decorator over value classes. Two types
// denoting the same resolved class or primitive are pointer-identical;
// the Registry interns class references and the primitive table is
// fixed, so consumers compare handles and never compare structure.
//
// The never-null wrapper records that one occurrence of a value class is
// statically guaranteed non-null. Unwrap is total and strips at most one
// wrapper; type identity flows through the unwrapped type while
// nullability is read off the wrapper.
package types
