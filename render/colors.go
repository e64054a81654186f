package render

// HUD palette
var (
	RgbBackground = RGB{0, 0, 0}
	RgbHUDText    = RGB{255, 255, 255}
	RgbHUDDim     = RGB{150, 150, 150}
	RgbHUDPanel   = RGB{20, 20, 20}
	RgbFlash      = RGBWhite
	RgbFlashText  = RGBBlack
)
