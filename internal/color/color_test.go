package color

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	assert.Equal(t, "w", White.Code())
	assert.Equal(t, "b", Black.Code())
	assert.Equal(t, "w", White.String())
	assert.Equal(t, "b", Black.String())
}

func TestFromDiscriminant(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  Color
		ok    bool
	}{
		{"white", 1, White, true},
		{"black", 2, Black, true},
		{"zero", 0, 0, false},
		{"negative", -1, 0, false},
		{"out of range", 99, 0, false},
		{"next after black", 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromDiscriminant(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscriminantRoundTrip(t *testing.T) {
	for _, c := range All() {
		got, ok := FromDiscriminant(c.Discriminant())
		require.True(t, ok)
		assert.Equal(t, c, got)
	}

	for _, d := range []int{1, 2} {
		c, ok := FromDiscriminant(d)
		require.True(t, ok)
		assert.Equal(t, d, c.Discriminant())
	}
}

func TestParseCode(t *testing.T) {
	c, ok := ParseCode("w")
	assert.True(t, ok)
	assert.Equal(t, White, c)

	c, ok = ParseCode("b")
	assert.True(t, ok)
	assert.Equal(t, Black, c)

	for _, bad := range []string{"", "W", "white", "x"} {
		_, ok := ParseCode(bad)
		assert.False(t, ok, bad)
	}
}

func TestOpp(t *testing.T) {
	assert.Equal(t, Black, White.Opp())
	assert.Equal(t, White, Black.Opp())
}

func TestValid(t *testing.T) {
	assert.True(t, White.Valid())
	assert.True(t, Black.Valid())

	var zero Color
	assert.False(t, zero.Valid())
	assert.Equal(t, "", zero.Code())
	assert.Equal(t, "Color(0)", zero.String())
}

func TestJSON(t *testing.T) {
	type payload struct {
		Turn Color `json:"turn"`
	}

	data, err := json.Marshal(payload{Turn: Black})
	require.NoError(t, err)
	assert.JSONEq(t, `{"turn":"b"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"turn":"w"}`), &p))
	assert.Equal(t, White, p.Turn)

	err = json.Unmarshal([]byte(`{"turn":"x"}`), &p)
	assert.ErrorIs(t, err, ErrUnknownCode)

	_, err = json.Marshal(payload{})
	assert.ErrorIs(t, err, ErrUnknownCode)
}
