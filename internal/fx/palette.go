package fx

import "image/color"

var (
	FirePalette = []color.RGBA{
		{255, 165, 0, 255},
		{255, 69, 0, 255},
		{255, 0, 0, 255},
	}
	ExplosionFirePalette = []color.RGBA{
		{255, 200, 0, 255},
		{255, 100, 0, 255},
		{255, 0, 0, 255},
	}
	SmokePalette = []color.RGBA{
		{150, 150, 150, 255},
		{100, 100, 100, 255},
		{80, 80, 80, 255},
	}
	FlashPalette = []color.RGBA{
		{255, 255, 200, 255},
		{255, 255, 255, 255},
	}
	SuccessPalette = []color.RGBA{
		{255, 215, 0, 255},
		{0, 255, 0, 255},
		{255, 255, 255, 255},
	}
	SparklePalette = []color.RGBA{
		{255, 255, 150, 255},
		{150, 255, 150, 255},
	}
)
