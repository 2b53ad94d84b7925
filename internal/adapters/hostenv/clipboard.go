package hostenv

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard implements the Clipboard port with the OS clipboard
type SystemClipboard struct{}

// NewSystemClipboard returns the OS clipboard adapter
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// WriteAll copies text to the clipboard
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	return clipboard.WriteAll(text)
}
