// Package capability describes optional platform features the client can use
// when present: speech input, speech output, map tiles and the system
// clipboard. Every capability reports Available; an absent one answers all
// calls with ErrCapabilityUnavailable and the TUI hides the feature.
package capability

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-climate-intel/models"
)

var ErrCapabilityUnavailable = errors.New("capability unavailable on this platform")

// SpeechInput turns spoken words into text.
type SpeechInput interface {
	Available() bool
	Listen(ctx context.Context, lang models.Language) (string, error)
}

// SpeechOutput reads text aloud.
type SpeechOutput interface {
	Available() bool
	Speak(ctx context.Context, text string, lang models.Language) error
}

// TileProvider renders one tile of a map layer.
type TileProvider interface {
	Available() bool
	Tile(ctx context.Context, layerID string, z, x, y int) ([]byte, error)
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Available() bool
	Copy(text string) error
}

// Set is the capabilities handed to the TUI. Nil fields are treated as
// unavailable.
type Set struct {
	SpeechIn  SpeechInput
	SpeechOut SpeechOutput
	Tiles     TileProvider
	Clipboard Clipboard
}

// Detect returns the capabilities of the running platform. Only the
// clipboard has a terminal implementation.
func Detect() Set {
	return Set{
		SpeechIn:  Unavailable{},
		SpeechOut: Unavailable{},
		Tiles:     Unavailable{},
		Clipboard: NewSystemClipboard(),
	}
}

// WithDefaults replaces nil fields of s with Unavailable.
func (s Set) WithDefaults() Set {
	if s.SpeechIn == nil {
		s.SpeechIn = Unavailable{}
	}
	if s.SpeechOut == nil {
		s.SpeechOut = Unavailable{}
	}
	if s.Tiles == nil {
		s.Tiles = Unavailable{}
	}
	if s.Clipboard == nil {
		s.Clipboard = Unavailable{}
	}
	return s
}
