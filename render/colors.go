package render

import "github.com/lixenwraith/snek/components"

// Palette (Tokyo Night base)
var (
	RgbBackground = RGB{26, 27, 38}
	RgbBoundary   = RGB{65, 72, 104}
	RgbStatusText = RGB{192, 202, 245}
	RgbStatusBg   = RGB{36, 40, 59}
	RgbOverlay    = RGB{224, 175, 104}

	RgbPlayer     = RGB{158, 206, 106}
	RgbPlayerHead = RGB{200, 255, 150}
	RgbBot        = RGB{122, 162, 247}
	RgbBotHead    = RGB{170, 200, 255}
	RgbDead       = RGB{86, 95, 137}

	RgbFoodNormal   = RGB{255, 158, 100}
	RgbFoodSpecial  = RGB{255, 220, 80}
	RgbFoodMagnetic = RGB{187, 154, 247}
	RgbFoodBigHead  = RGB{247, 118, 142}

	// Effect highlights on heads
	RgbMagnetAura  = RGB{187, 154, 247}
	RgbBigHeadAura = RGB{247, 118, 142}
)

// tintPalette is indexed by Agent.Tint-1
var tintPalette = [...]RGB{
	{255, 117, 127},
	{255, 158, 100},
	{224, 175, 104},
	{158, 206, 106},
	{115, 218, 202},
	{125, 207, 255},
	{187, 154, 247},
	{255, 0, 124},
}

// Food glyphs and colors per type
var foodLook = [...]struct {
	Glyph rune
	Color RGB
}{
	components.FoodNormal:   {'•', RgbFoodNormal},
	components.FoodSpecial:  {'*', RgbFoodSpecial},
	components.FoodMagnetic: {'¤', RgbFoodMagnetic},
	components.FoodBigHead:  {'◆', RgbFoodBigHead},
}

// TintColor returns the cosmetic tint color, ok false for no tint
func TintColor(tint int) (RGB, bool) {
	if tint <= 0 {
		return RGB{}, false
	}
	return tintPalette[(tint-1)%len(tintPalette)], true
}
