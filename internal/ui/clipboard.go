package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard는 atotto/clipboard를 사용하는 Clipboard다.
type SystemClipboard struct{}

var _ Clipboard = SystemClipboard{}

// Copy는 text를 시스템 클립보드에 쓴다.
func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("ui.Copy: %w", err)
	}
	return nil
}
