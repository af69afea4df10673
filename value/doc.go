// Package value defines the tagged-union Value type used to represent both
// instance data and schema data: the generic tree of null, boolean, number,
// string, sequence, and mapping nodes produced by parsing JSON-like text.
//
// Values are immutable by convention: nothing in this module mutates a Value
// after construction, and callers must not mutate slices or maps reachable
// from one while a validation call is in flight.
//
// Numbers are held as arbitrary-precision rationals (math/big.Rat), so
// comparisons are exact and an integer and its decimal spelling compare
// equal (1 == 1.0).
package value
