package capability

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard writes to the OS clipboard through atotto/clipboard. It is
// unavailable when no clipboard utility is installed (xclip, xsel, wl-copy
// on Linux).
type SystemClipboard struct {
	write       func(string) error
	unsupported bool
}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

func (c *SystemClipboard) Available() bool {
	return !c.unsupported
}

func (c *SystemClipboard) Copy(text string) error {
	if c.unsupported {
		return ErrCapabilityUnavailable
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
