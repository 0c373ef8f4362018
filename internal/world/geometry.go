package world

// Play area, in screen pixels. y grows downward.
const (
	ScreenWidth  = 800
	ScreenHeight = 600

	GroundHeight = 50
	GroundY      = ScreenHeight - GroundHeight // 550

	PadWidth       = 60
	PadHeight      = 20
	PadAboveGround = 30
	PadY           = GroundY - PadAboveGround // 520

	// EdgeMargin keeps the pad away from the screen sides.
	EdgeMargin = 100
)
