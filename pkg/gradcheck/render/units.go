package render

import "math"

// TwipsPerInch is the WordprocessingML length unit: 1/20 point, 1440 per inch.
const TwipsPerInch = 1440

// MMToTwips converts millimetres to twips, rounded.
// A4 is 210 x 297 mm, i.e. 11906 x 16838 twips.
func MMToTwips(mm float64) int {
	return int(math.Round(mm / 25.4 * TwipsPerInch))
}

// PercentToPct converts a percentage to the fiftieths of a percent used by
// pct-typed table widths (100% is 5000).
func PercentToPct(percent float64) int {
	return int(math.Round(percent * 50))
}
