package pptx

import "math"

// 1 inch = 914400 EMU.
const (
	emuPerInch = 914400
	maxEMU     = math.MaxInt64 / 2
)

// Inch converts inches to EMU. Clamps to safe range.
func Inch(n float64) int64 {
	return clampEMU(n * emuPerInch)
}

// Pixel converts a pixel count at the given resolution to EMU.
// A non-positive dpi falls back to 96.
func Pixel(px int, dpi float64) int64 {
	if dpi <= 0 {
		dpi = 96
	}
	return Inch(float64(px) / dpi)
}

// EMUToInch converts EMU to inches.
func EMUToInch(emu int64) float64 {
	return float64(emu) / emuPerInch
}

// clampEMU converts a float64 to int64, clamping to prevent overflow.
func clampEMU(v float64) int64 {
	if v > float64(maxEMU) {
		return maxEMU
	}
	if v < -float64(maxEMU) {
		return -maxEMU
	}
	return int64(v)
}
