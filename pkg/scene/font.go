package scene

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// DefaultFontSize is the point size used for all scene text.
const DefaultFontSize = 13.0

// LoadFontFace returns a monospaced font face for the canvas.
//
// With an empty name it parses the embedded Go Mono face, so the binary
// works without any font installed. A non-empty name is resolved against
// the system font directories via findfont; a TTF path is used as-is.
func LoadFontFace(name string, points float64) (font.Face, error) {
	if points <= 0 {
		points = DefaultFontSize
	}

	data := gomono.TTF
	if name != "" {
		path, err := findfont.Find(name)
		if err != nil {
			return nil, fmt.Errorf("find font %q: %w", name, err)
		}
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", path, err)
		}
	}

	ft, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(ft, &truetype.Options{Size: points}), nil
}
