package sprite

import (
	"fmt"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	Regular   *opentype.Font
	Monospace *opentype.Font
)

var fontMap = map[string]struct {
	ttf []byte
	dst **opentype.Font
}{
	"goregular": {goregular.TTF, &Regular},
	"gomono":    {gomono.TTF, &Monospace},
}

func loadFonts() (err error) {
	for name, f := range fontMap {
		*f.dst, err = opentype.Parse(f.ttf)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
	}
	return nil
}
