package arith

// MillimetersPerInch is the exact length of one international inch.
const MillimetersPerInch = 25.4

// InchToMillimeters converts a length in inches to millimeters.
func InchToMillimeters(inch float64) float64 {
	return inch * MillimetersPerInch
}
