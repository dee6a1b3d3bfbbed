package ui

import (
	"github.com/veandco/go-sdl2/ttf"
)

// fonts are the UI font at three sizes plus an optional icon font.
type fonts struct {
	large  *ttf.Font
	medium *ttf.Font
	small  *ttf.Font
	icons  *ttf.Font
}

// fontSizes scales the three text sizes to the window height.
func fontSizes(height int32) (large, medium, small int) {
	large = max(int(height/14), 18)
	medium = max(int(height/20), 14)
	small = max(int(height/28), 11)
	return large, medium, small
}

func openFonts(path, iconPath string, height int32) (*fonts, error) {
	large, medium, small := fontSizes(height)

	f := &fonts{}
	var err error
	if f.large, err = ttf.OpenFont(path, large); err != nil {
		return nil, infraError("load_font", err)
	}
	if f.medium, err = ttf.OpenFont(path, medium); err != nil {
		f.close()
		return nil, infraError("load_font", err)
	}
	if f.small, err = ttf.OpenFont(path, small); err != nil {
		f.close()
		return nil, infraError("load_font", err)
	}

	// Icons are decoration only.
	if iconPath != "" {
		f.icons, _ = ttf.OpenFont(iconPath, large*2)
	}
	return f, nil
}

func (f *fonts) close() {
	for _, font := range []*ttf.Font{f.large, f.medium, f.small, f.icons} {
		if font != nil {
			font.Close()
		}
	}
}
