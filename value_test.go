package tristate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katahiromz/tristate"
)

func TestValue_Ordering(t *testing.T) {
	assert.True(t, tristate.False < tristate.Unknown)
	assert.True(t, tristate.Unknown < tristate.True)
	assert.True(t, tristate.False < tristate.True)

	assert.Greater(t, int(tristate.True), 0)
	assert.Less(t, int(tristate.False), 0)
	assert.Equal(t, 0, int(tristate.Unknown))
}

func TestValue_ZeroIsUnknown(t *testing.T) {
	var v tristate.Value
	assert.Equal(t, tristate.Unknown, v)

	arr := [3]tristate.Value{tristate.True, tristate.False}
	assert.Equal(t, tristate.Unknown, arr[2])
}

func TestValue_IsValid(t *testing.T) {
	tests := []struct {
		v    tristate.Value
		want bool
	}{
		{tristate.True, true},
		{tristate.False, true},
		{tristate.Unknown, true},
		{tristate.Value(2), false},
		{tristate.Value(-2), false},
		{tristate.Value(127), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tristate.IsValid(tt.v), "IsValid(%d)", int(tt.v))
		assert.Equal(t, tt.want, tt.v.IsValid(), "Value(%d).IsValid()", int(tt.v))
	}

	assert.True(t, tristate.IsValidBool(true))
	assert.True(t, tristate.IsValidBool(false))
}

func TestValue_Rank(t *testing.T) {
	assert.Equal(t, 1, tristate.True.Rank())
	assert.Equal(t, 0, tristate.Unknown.Rank())
	assert.Equal(t, -1, tristate.False.Rank())
	assert.Equal(t, 1, tristate.Value(7).Rank())
	assert.Equal(t, -1, tristate.Value(-7).Rank())
}

func TestValue_Predicates(t *testing.T) {
	assert.True(t, tristate.True.IsTrue())
	assert.False(t, tristate.True.IsFalse())
	assert.True(t, tristate.False.IsFalse())
	assert.True(t, tristate.Unknown.IsUnknown())
	assert.False(t, tristate.Unknown.IsTrue())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "true", tristate.True.String())
	assert.Equal(t, "false", tristate.False.String())
	assert.Equal(t, "unknown", tristate.Unknown.String())
	assert.Equal(t, "Value(5)", tristate.Value(5).String())
}

func TestCheck(t *testing.T) {
	assert.NoError(t, tristate.Check(tristate.True))
	assert.NoError(t, tristate.Check(tristate.Unknown))

	err := tristate.Check(tristate.Value(3))
	assert.ErrorIs(t, err, tristate.ErrInvalidValue)

	var contractErr *tristate.ContractError
	assert.ErrorAs(t, err, &contractErr)
	assert.Equal(t, tristate.Value(3), contractErr.Value)
	assert.Equal(t, "tristate: check: invalid tri-state value 3", err.Error())
}
