// Package validator implements schema evaluation over generic value trees:
// it walks an instance and a schema together and produces a complete,
// ordered list of violations instead of stopping at the first one.
//
// # Model
//
// Both the instance and the schema are value.Value trees; a schema is a
// mapping whose keys are recognized keyword names. One call:
//
//	v := validator.New()
//	result, err := v.Validate(instance, schema)
//
// A nonconforming instance is never a Go error: every failed keyword check
// becomes a ValidationError in the result, carrying the path into the
// instance, the keyword that failed, and a message. Only a malformed
// schema (unknown type name, unknown format, invalid pattern, wrongly
// kinded keyword value) aborts the call, returning a valerrors.SchemaError.
//
// # Evaluation order
//
// Each node is evaluated in a fixed order: the null/required short-circuit,
// then type, enum, the scalar keyword family matching the instance kind
// (string or number), the structural family (object or array), and finally
// the composition operators (allOf, anyOf, oneOf, not). Only the
// short-circuit terminates a node's evaluation early; every other failure
// is collected and evaluation continues.
//
// A null instance passes validation by default regardless of other
// constraints; declaring required: true is the sole gate against that
// default, and a missing object property surfaces as a "required" failure
// at the property's path.
//
// # Strings
//
// minLength and maxLength count Unicode code points after NFC
// normalization, so a combining sequence with a precomposed form counts
// as one. pattern and format match anywhere in the string unless the
// pattern itself is anchored; the built-in format patterns are anchored.
//
// # Numbers
//
// Numeric comparisons are exact (arbitrary-precision rationals), never
// floating approximations. divisibleBy requires an exactly zero remainder:
// the instance divided by the divisor must be an integer, which is exact
// for non-integral divisors too.
//
// # Concurrency
//
// A Validator holds no mutable state between calls; a single instance may
// be used from multiple goroutines as long as callers do not mutate the
// instance or schema trees mid-call. The format registry is built once at
// package initialization and is read-only afterwards.
package validator
