package tristate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katahiromz/tristate"
)

func TestBools_TriTotality(t *testing.T) {
	tests := []struct {
		name string
		in   tristate.Bools
		want tristate.Value
	}{
		{"empty", tristate.Bools{}, U},
		{"nil", nil, U},
		{"all true", tristate.Bools{true, true, true}, T},
		{"all false", tristate.Bools{false, false, false}, F},
		{"mixed", tristate.Bools{true, false, true}, U},
		{"single true", tristate.Bools{true}, T},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.TriTotality())
		})
	}
}

func TestBools_Totality_WritesOnlyOnCertainty(t *testing.T) {
	tests := []struct {
		name   string
		in     tristate.Bools
		want   bool
		wantOK bool
	}{
		{"all true", tristate.Bools{true, true, true}, true, true},
		{"all false", tristate.Bools{false, false, false}, false, true},
		{"mixed", tristate.Bools{true, false, true}, false, false},
		{"empty", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, preset := range []bool{true, false} {
				flag := preset
				b, ok := tt.in.Totality()
				if ok {
					flag = b
				}
				assert.Equal(t, tt.wantOK, ok)
				if tt.wantOK {
					assert.Equal(t, tt.want, flag)
				} else {
					assert.Equal(t, preset, flag, "preset default must survive")
				}
			}
		})
	}
}

func TestValues_TriTotality(t *testing.T) {
	tests := []struct {
		name string
		in   tristate.Values
		want tristate.Value
	}{
		{"empty", nil, U},
		{"all true", tristate.Values{T, T, T}, T},
		{"all false", tristate.Values{F, F, F}, F},
		{"mixed", tristate.Values{T, F, U}, U},
		{"all unknown", tristate.Values{U, U}, U},
		{"true and unknown", tristate.Values{T, U, T}, T},
		{"false and unknown", tristate.Values{U, F}, F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.TriTotality())

			b, ok := tt.in.Totality()
			assert.Equal(t, tt.want != U, ok)
			if ok {
				assert.Equal(t, tt.want == T, b)
			}
		})
	}
}

func TestBools_SetTotality(t *testing.T) {
	s := tristate.Bools{true, false, true}
	s.SetTotality(false)
	assert.Equal(t, tristate.Bools{false, false, false}, s)

	s.SetTotality(true)
	assert.Equal(t, tristate.Bools{true, true, true}, s)
}

func TestBools_SetTriTotality(t *testing.T) {
	s := tristate.Bools{true, false, true}
	s.SetTriTotality(U)
	assert.Equal(t, tristate.Bools{true, false, true}, s, "Unknown must leave bools unchanged")

	s.SetTriTotality(F)
	assert.Equal(t, tristate.Bools{false, false, false}, s)

	s.SetTriTotality(T)
	assert.Equal(t, tristate.Bools{true, true, true}, s)
}

func TestValues_SetTotality(t *testing.T) {
	s := tristate.Values{T, F, U}
	s.SetTotality(false)
	assert.Equal(t, tristate.Values{F, F, F}, s)

	s.SetTotality(true)
	assert.Equal(t, tristate.Values{T, T, T}, s)
}

func TestValues_SetVersusReset(t *testing.T) {
	s := tristate.Values{T, F, U}
	s.SetTriTotality(U)
	assert.Equal(t, tristate.Values{T, F, U}, s, "SetTriTotality(Unknown) is a no-op")

	s.ResetTriTotality(U)
	assert.Equal(t, tristate.Values{U, U, U}, s, "ResetTriTotality(Unknown) overwrites")

	s.SetTriTotality(T)
	assert.Equal(t, tristate.Values{T, T, T}, s)

	s.ResetTriTotality(F)
	assert.Equal(t, tristate.Values{F, F, F}, s)
}

func TestBools_Each(t *testing.T) {
	s := tristate.Bools{true, false, true}
	s.EachAnd(true)
	assert.Equal(t, tristate.Bools{true, false, true}, s)

	s.EachOr(false)
	assert.Equal(t, tristate.Bools{true, false, true}, s)

	s.EachNot()
	assert.Equal(t, tristate.Bools{false, true, false}, s)

	s.EachOr(true)
	assert.Equal(t, tristate.Bools{true, true, true}, s)

	s.EachAnd(false)
	assert.Equal(t, tristate.Bools{false, false, false}, s)
}

func TestValues_EachAnd(t *testing.T) {
	tests := []struct {
		operand tristate.Value
		want    tristate.Values
	}{
		{F, tristate.Values{F, F, F}},
		{T, tristate.Values{T, F, U}},
		{U, tristate.Values{U, F, U}},
	}

	for _, tt := range tests {
		s := tristate.Values{T, F, U}
		s.EachAnd(tt.operand)
		assert.Equal(t, tt.want, s, "EachAnd(%s)", tt.operand)
	}
}

func TestValues_EachOr(t *testing.T) {
	tests := []struct {
		operand tristate.Value
		want    tristate.Values
	}{
		{T, tristate.Values{T, T, T}},
		{F, tristate.Values{T, F, U}},
		{U, tristate.Values{T, U, U}},
	}

	for _, tt := range tests {
		s := tristate.Values{T, F, U}
		s.EachOr(tt.operand)
		assert.Equal(t, tt.want, s, "EachOr(%s)", tt.operand)
	}
}

func TestValues_EachNot(t *testing.T) {
	s := tristate.Values{T, F, U}
	s.EachNot()
	assert.Equal(t, tristate.Values{F, T, U}, s)
}

func TestValues_EachOnEmpty(t *testing.T) {
	var s tristate.Values
	assert.NotPanics(t, func() {
		s.EachAnd(F)
		s.EachOr(U)
		s.EachNot()
	})
	assert.Empty(t, s)
}
