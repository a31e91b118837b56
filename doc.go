/*
Package tristate implements three-valued (Kleene K3) logic: a Value that is
True, False or Unknown, the AND/OR/NOT connectives over it, conversions to and
from bool, text and integers, and bulk operations over sequences of values.

# Values

Value is a signed ordinal. False is -1, Unknown is 0 (the zero value) and True
is +1, so the ordinary comparison operators order them as False < Unknown < True
and the sign of a value tells its truthiness.

	v := tristate.And(tristate.True, tristate.Unknown) // Unknown
	w := tristate.Or(v, tristate.True)                  // True
	fmt.Println(v < w, tristate.Not(w))                 // true false

# Conversions

FromBool and ToBool cross the boolean boundary. ToBool reports ok=false for
Unknown instead of inventing a value; ToBoolDefault makes the conversion total.

FromString accepts exactly "true", "false" and "unknown". Anything else yields
Unknown together with ok=false. A caller that drops the flag cannot tell an
explicit "unknown" from garbage; that ambiguity is part of the contract. Parse
is the error-returning form.

# Sequences

Bools and Values are caller-owned slices. Their methods read or overwrite
elements in place and never allocate:

  - Totality / TriTotality: are all elements true, all false, or neither.
  - SetTotality / SetTriTotality / ResetTriTotality: broadcast one value.
  - EachAnd / EachOr / EachNot: apply a connective against every element.
  - ConnectAnd / ConnectOr: fold a connective, stopping at the first
    absorbing result.
  - ToValues / ToBools / ToBoolsDefault: elementwise conversion.

SetTriTotality skips Unknown while ResetTriTotality always overwrites. Boolean
targets cannot hold Unknown, so broadcasting it onto Bools leaves them as is.

# Strict builds

Building with the tristate_strict tag compiles contract checks into every
operation: an out-of-range Value or mismatched parallel slices panic with a
*ContractError. Without the tag those inputs are unchecked and operations
follow their sign arithmetic.

	go test -tags tristate_strict ./...
*/
package tristate
