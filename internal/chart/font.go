package chart

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// The embedded Go Regular face covers Latin, Greek and the symbols the
// figure labels need, so both backends work without font files on disk.
var (
	fontOnce sync.Once
	fontSrc  *text.FontSource
	fontErr  error
)

func fontSource() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSrc, fontErr = text.NewFontSource(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("chart: parsing embedded font: %w", fontErr)
		}
	})
	return fontSrc, fontErr
}
