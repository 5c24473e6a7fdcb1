package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

// MPlus faces cover the Japanese phrases and labels.
var (
	SmallFont  font.Face
	NormalFont font.Face
	LargeFont  font.Face
)

// BoomFont is the heavy latin face drawn inside the burst.
var BoomFont font.Face

const dpi = 72

func loadFonts() error {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}

	faces := []struct {
		face *font.Face
		size float64
	}{
		{&SmallFont, 18},
		{&NormalFont, 24},
		{&LargeFont, 40},
	}
	for _, f := range faces {
		*f.face, err = opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     dpi,
			Hinting: font.HintingVertical,
		})
		if err != nil {
			return fmt.Errorf("failed to create font face: %v", err)
		}
	}

	ttfFont, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}

	BoomFont = truetype.NewFace(ttfFont, &truetype.Options{
		Size:    48,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	return nil
}
