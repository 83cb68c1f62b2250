package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHand(t *testing.T) {
	t.Parallel()

	cards := []Card{
		NewCard(Six, Clubs), NewCard(Seven, Clubs), NewCard(Eight, Clubs),
		NewCard(Nine, Clubs), NewCard(Ten, Clubs), NewCard(Jack, Clubs),
	}

	h, err := NewHand(cards[:5]...)
	require.NoError(t, err)
	assert.Equal(t, cards[:5], h.Cards())

	_, err = NewHand(cards[:4]...)
	assert.ErrorIs(t, err, ErrInvalidHandSize)

	_, err = NewHand(cards...)
	assert.ErrorIs(t, err, ErrInvalidHandSize)

	_, err = NewHand()
	assert.ErrorIs(t, err, ErrInvalidHandSize)
}

func TestParseHandString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "straight flush", input: "6C 7C 8C 9C TC", want: "6C 7C 8C 9C TC"},
		{name: "lower case", input: "6c 7c 8c 9c tc", want: "6C 7C 8C 9C TC"},
		{name: "extra whitespace", input: "  9D\t9H 9S  9C 7D ", want: "9D 9H 9S 9C 7D"},
		{name: "four cards", input: "6C 7C 8C 9C", wantErr: ErrInvalidHandSize},
		{name: "six cards", input: "6C 7C 8C 9C TC JC", wantErr: ErrInvalidHandSize},
		{name: "empty", input: "", wantErr: ErrInvalidHandSize},
		{name: "bad card", input: "6C 7C 8C 9C XX", wantErr: ErrMalformedCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHandString(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.String())
		})
	}
}

func TestMustParseHand(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParseHand("6C 7C") })
	assert.NotPanics(t, func() { MustParseHand("TD TC TH 7C 7D") })
	assert.Equal(t, []string{"TD", "TC", "TH", "7C", "7D"}, MustParseHand("TD TC TH 7C 7D").Tokens())
}
