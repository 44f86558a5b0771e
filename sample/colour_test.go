package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColour(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Colour
		wantErr bool
	}{
		{input: "RED", want: Red},
		{input: "red", want: Red},
		{input: "Green", want: Green},
		{input: "blue", want: Blue},
		{input: "PURPLE", want: Purple},
		{input: "", wantErr: true},
		{input: "mauve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseColour(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, NoColour, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColourString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "RED", Red.String())
	assert.Equal(t, "PURPLE", Purple.String())
	assert.Equal(t, "", NoColour.String())
	assert.Equal(t, "Colour(42)", Colour(42).String())

	for _, c := range []Colour{Red, Green, Blue, Purple} {
		parsed, err := ParseColour(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}
