package color

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexNormalizes(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"#6366f1": "#6366f1",
		"6366F1":  "#6366f1",
		"#ABCDEF": "#abcdef",
		"#000000": "#000000",
	}

	for input, want := range cases {
		got, err := ParseHex(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got.String(), input)
	}
}

func TestParseHexRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	inputs := []string{"notacolor", "", "#", "#fff", "#1234567", "#12345g", "##123456", "#12 456", " #6366f1 ", "#6366f1\n", "\t6366f1"}

	for _, input := range inputs {
		_, err := ParseHex(input)
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, ErrInvalidColorFormat), input)

		var formatErr *FormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Equal(t, ErrCodeInvalidFormat, formatErr.Code)
		assert.Equal(t, input, formatErr.Input)
	}
}

func TestHexRGB(t *testing.T) {
	t.Parallel()

	h := MustParseHex("#6366f1")
	assert.Equal(t, RGB{R: 0x63, G: 0x66, B: 0xf1}, h.RGB())
	assert.Equal(t, h, FromRGB(h.RGB()))
}

func TestHexZeroValue(t *testing.T) {
	t.Parallel()

	var h Hex
	assert.True(t, h.IsZero())
	assert.Equal(t, "", h.String())
	assert.Equal(t, RGB{}, h.RGB())
}

func TestHexTextRoundTrip(t *testing.T) {
	t.Parallel()

	type doc struct {
		Seed Hex `json:"seed"`
	}

	var decoded doc
	require.NoError(t, json.Unmarshal([]byte(`{"seed":"4338CA"}`), &decoded))
	assert.Equal(t, "#4338ca", decoded.Seed.String())

	out, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"seed":"#4338ca"}`, string(out))

	err = json.Unmarshal([]byte(`{"seed":"nope"}`), &decoded)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestMustParseHexPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParseHex("xyz") })
}
