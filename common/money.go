package common

import (
	"fmt"
	"math"
)

// Cents is a fixed-point monetary amount in hundredths of the portal
// currency. All pricing math operates on integer cents so repeated
// percentage application cannot accumulate binary floating-point drift.
type Cents int64

// CentsFromFloat converts a decimal currency amount (e.g. a JSON payload
// value) to cents, rounding half away from zero.
func CentsFromFloat(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}

// Float64 returns the decimal currency value of c.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// MulQty multiplies the amount by an integer quantity.
func (c Cents) MulQty(qty int) Cents {
	return c * Cents(qty)
}

// ApplyPercent returns pct percent of c, rounded to the nearest cent.
// Negative results are possible when pct is negative; callers that need a
// floor must clamp themselves.
func (c Cents) ApplyPercent(pct float64) Cents {
	return Cents(math.Round(float64(c) * pct / 100))
}

// String renders the amount as a plain decimal, e.g. "313.20".
func (c Cents) String() string {
	sign := ""
	v := c

	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
