//go:build !tristate_strict

package tristate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katahiromz/tristate"
)

// Without the strict tag invalid values are not checked and follow the
// sign arithmetic of each operation.
func TestUnchecked_InvalidValuesFollowSign(t *testing.T) {
	assert.False(t, tristate.Strict)

	assert.Equal(t, tristate.Value(-5), tristate.Not(tristate.Value(5)))
	assert.Equal(t, "true", tristate.ToString(tristate.Value(5)))
	assert.Equal(t, "false", tristate.ToString(tristate.Value(-3)))
	assert.Equal(t, 1, tristate.ToInt(tristate.Value(9)))
	assert.Equal(t, F, tristate.And(tristate.Value(4), F))
	assert.Equal(t, tristate.Value(-2), tristate.And(tristate.Value(-2), T))

	b, ok := tristate.ToBool(tristate.Value(3))
	assert.True(t, ok)
	assert.True(t, b)
}

func TestUnchecked_LengthMismatchUsesShorter(t *testing.T) {
	dst := make([]bool, 2)
	n := tristate.Values{T, F, T}.ToBoolsDefault(dst, false)
	assert.Equal(t, 2, n)
	assert.Equal(t, []bool{true, false}, dst)

	vals := make([]tristate.Value, 4)
	n = tristate.Bools{true}.ToValues(vals)
	assert.Equal(t, 1, n)
	assert.Equal(t, []tristate.Value{T, U, U, U}, vals)
}
