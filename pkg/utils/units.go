package utils

const (
	// MMToPixel converts millimetres to rendering units (96 DPI).
	MMToPixel = 3.779528
	// MMToPoint converts millimetres to PDF points.
	MMToPoint = 72.0 / 25.4

	ScreenDPI = 96.0

	A4_WIDTH_MM  = 210.0
	A4_HEIGHT_MM = 297.0

	MIN_CUSTOM_MM = 50.0
	MAX_CUSTOM_MM = 1000.0
)

// PixelScale is the factor from rendering units to pixels at the given DPI.
func PixelScale(dpi int) float64 {
	if dpi <= 0 {
		return 1
	}
	return float64(dpi) / ScreenDPI
}
