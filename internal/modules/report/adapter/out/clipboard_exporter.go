package out

import (
	"fmt"

	"github.com/atotto/clipboard"

	reportout "toobuff/internal/modules/report/port/out"
)

type SystemClipboard struct{}

func NewSystemClipboard() reportout.Clipboard {
	return &SystemClipboard{}
}

func (SystemClipboard) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
