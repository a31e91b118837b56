package tristate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katahiromz/tristate"
)

const (
	T = tristate.True
	U = tristate.Unknown
	F = tristate.False
)

func TestAnd_TruthTable(t *testing.T) {
	tests := []struct {
		a, b, want tristate.Value
	}{
		{T, T, T}, {T, U, U}, {T, F, F},
		{U, T, U}, {U, U, U}, {U, F, F},
		{F, T, F}, {F, U, F}, {F, F, F},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tristate.And(tt.a, tt.b), "And(%s, %s)", tt.a, tt.b)
		assert.Equal(t, tt.want, tt.a.And(tt.b), "%s.And(%s)", tt.a, tt.b)
	}
}

func TestOr_TruthTable(t *testing.T) {
	tests := []struct {
		a, b, want tristate.Value
	}{
		{T, T, T}, {T, U, T}, {T, F, T},
		{U, T, T}, {U, U, U}, {U, F, U},
		{F, T, T}, {F, U, U}, {F, F, F},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tristate.Or(tt.a, tt.b), "Or(%s, %s)", tt.a, tt.b)
		assert.Equal(t, tt.want, tt.a.Or(tt.b), "%s.Or(%s)", tt.a, tt.b)
	}
}

func TestNot(t *testing.T) {
	assert.Equal(t, F, tristate.Not(T))
	assert.Equal(t, T, tristate.Not(F))
	assert.Equal(t, U, tristate.Not(U))
	assert.Equal(t, T, T.Not().Not())
}

func TestConnectives_SignComparisons(t *testing.T) {
	assert.False(t, tristate.And(T, U) < 0)
	assert.True(t, tristate.And(U, U) == 0)
	assert.True(t, tristate.And(T, F) < 0)
	assert.True(t, tristate.Or(U, T) > 0)
	assert.True(t, tristate.Or(F, U) == 0)
	assert.True(t, tristate.Not(F) > 0)
}

func TestConnectives_Commutative(t *testing.T) {
	all := []tristate.Value{T, U, F}
	for _, a := range all {
		for _, b := range all {
			assert.Equal(t, tristate.And(a, b), tristate.And(b, a))
			assert.Equal(t, tristate.Or(a, b), tristate.Or(b, a))
			// De Morgan holds in K3.
			assert.Equal(t, tristate.Not(tristate.And(a, b)), tristate.Or(tristate.Not(a), tristate.Not(b)))
		}
	}
}

func TestAndThen_ShortCircuit(t *testing.T) {
	calls := 0
	right := func(v tristate.Value) func() tristate.Value {
		return func() tristate.Value {
			calls++
			return v
		}
	}

	assert.Equal(t, F, tristate.AndThen(F, right(T)))
	assert.Equal(t, 0, calls, "right operand evaluated after False")

	assert.Equal(t, U, tristate.AndThen(T, right(U)))
	assert.Equal(t, F, tristate.AndThen(U, right(F)))
	assert.Equal(t, 2, calls)
}

func TestOrElse_ShortCircuit(t *testing.T) {
	calls := 0
	right := func(v tristate.Value) func() tristate.Value {
		return func() tristate.Value {
			calls++
			return v
		}
	}

	assert.Equal(t, T, tristate.OrElse(T, right(F)))
	assert.Equal(t, 0, calls, "right operand evaluated after True")

	assert.Equal(t, U, tristate.OrElse(F, right(U)))
	assert.Equal(t, T, tristate.OrElse(U, right(T)))
	assert.Equal(t, 2, calls)
}

func TestBoolConnectives(t *testing.T) {
	for _, a := range []bool{true, false} {
		for _, b := range []bool{true, false} {
			assert.Equal(t, a && b, tristate.BoolAnd(a, b))
			assert.Equal(t, a || b, tristate.BoolOr(a, b))
		}
		assert.Equal(t, !a, tristate.BoolNot(a))
	}
}
