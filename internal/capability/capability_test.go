package capability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-climate-intel/models"
)

func TestUnavailable(t *testing.T) {
	ctx := context.Background()
	u := Unavailable{}

	assert.False(t, u.Available())

	_, err := u.Listen(ctx, models.LanguageEnglish)
	assert.ErrorIs(t, err, ErrCapabilityUnavailable)
	assert.ErrorIs(t, u.Speak(ctx, "hello", models.LanguageTamil), ErrCapabilityUnavailable)
	tile, err := u.Tile(ctx, "temperature", 3, 1, 2)
	assert.ErrorIs(t, err, ErrCapabilityUnavailable)
	assert.Nil(t, tile)
	assert.ErrorIs(t, u.Copy("x"), ErrCapabilityUnavailable)
}

func TestSet_WithDefaults(t *testing.T) {
	clip := &SystemClipboard{write: func(string) error { return nil }}

	s := Set{Clipboard: clip}.WithDefaults()

	require.NotNil(t, s.SpeechIn)
	require.NotNil(t, s.SpeechOut)
	require.NotNil(t, s.Tiles)
	assert.False(t, s.SpeechIn.Available())
	assert.False(t, s.SpeechOut.Available())
	assert.False(t, s.Tiles.Available())
	assert.Same(t, clip, s.Clipboard)
}

func TestDetect(t *testing.T) {
	s := Detect()

	assert.False(t, s.SpeechIn.Available())
	assert.False(t, s.SpeechOut.Available())
	assert.False(t, s.Tiles.Available())
	assert.IsType(t, &SystemClipboard{}, s.Clipboard)
}

func TestSystemClipboard(t *testing.T) {
	t.Run("copies", func(t *testing.T) {
		var got string
		c := &SystemClipboard{write: func(s string) error { got = s; return nil }}

		require.True(t, c.Available())
		require.NoError(t, c.Copy("reply"))
		assert.Equal(t, "reply", got)
	})

	t.Run("write failure", func(t *testing.T) {
		boom := errors.New("xclip died")
		c := &SystemClipboard{write: func(string) error { return boom }}

		assert.ErrorIs(t, c.Copy("reply"), boom)
	})

	t.Run("unsupported", func(t *testing.T) {
		c := &SystemClipboard{unsupported: true, write: func(string) error {
			t.Fatal("write must not be called")
			return nil
		}}

		assert.False(t, c.Available())
		assert.ErrorIs(t, c.Copy("reply"), ErrCapabilityUnavailable)
	})
}
