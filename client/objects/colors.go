package objects

import "image/color"

// Palette of the bag drawing.
var (
	ColorBackground  = color.RGBA{0xfd, 0xf6, 0xe3, 0xff}
	ColorBag         = color.RGBA{0xea, 0xdd, 0xcf, 0xff}
	ColorBagOutline  = color.RGBA{0xd4, 0xc5, 0xb0, 0xff}
	ColorCordIntact  = color.RGBA{0xb9, 0x1c, 0x1c, 0xff}
	ColorCordBroken  = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
	ColorTextMain    = color.RGBA{0x43, 0x14, 0x07, 0xff}
	ColorBurst       = color.RGBA{0xef, 0x44, 0x44, 0xff}
	ColorBurstEdge   = color.RGBA{0x99, 0x1b, 0x1b, 0xff}
	ColorDebris      = color.RGBA{0x7f, 0x1d, 0x1d, 0xff}
	ColorWordBubble  = color.RGBA{0xff, 0xff, 0xff, 0xee}
	ColorWordOutline = color.RGBA{0x43, 0x14, 0x07, 0x80}
)
