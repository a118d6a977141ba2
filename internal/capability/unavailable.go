package capability

import (
	"context"

	"github.com/MKhiriev/go-climate-intel/models"
)

// Unavailable implements every capability as absent.
type Unavailable struct{}

var (
	_ SpeechInput  = Unavailable{}
	_ SpeechOutput = Unavailable{}
	_ TileProvider = Unavailable{}
	_ Clipboard    = Unavailable{}
)

func (Unavailable) Available() bool { return false }

func (Unavailable) Listen(context.Context, models.Language) (string, error) {
	return "", ErrCapabilityUnavailable
}

func (Unavailable) Speak(context.Context, string, models.Language) error {
	return ErrCapabilityUnavailable
}

func (Unavailable) Tile(context.Context, string, int, int, int) ([]byte, error) {
	return nil, ErrCapabilityUnavailable
}

func (Unavailable) Copy(string) error {
	return ErrCapabilityUnavailable
}
