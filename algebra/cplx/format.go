package cplx

import (
	"fmt"
	"math"
	"strconv"
)

// AngleUnit selects how the Polar form renders the argument.
type AngleUnit int

const (
	// Radians renders the argument in radians with a "rad" marker.
	Radians AngleUnit = iota
	// Degrees renders the argument in degrees with a degree glyph.
	Degrees
)

// Format holds the display preferences for rendering complex numbers.
// It is an explicit value threaded into a Formatter, not global state, so
// formatting stays deterministic and testable.
type Format struct {
	// Symbol is the imaginary unit glyph. Default "i".
	Symbol string
	// AngleUnit selects radians or degrees for the polar form.
	AngleUnit AngleUnit
	// Precision is the number of decimal digits components are rounded to.
	Precision int
	// Render, when non-nil, replaces the cartesian rendering entirely.
	Render func(Complex) string
}

// DefaultFormat returns the default display preferences:
// symbol "i", radians, 2 decimal digits.
func DefaultFormat() Format {
	return Format{Symbol: "i", AngleUnit: Radians, Precision: 2}
}

// Formatter renders complex numbers according to a Format.
type Formatter struct {
	cfg Format
}

// NewFormatter creates a Formatter from the given preferences. A non-positive
// precision falls back to the default.
func NewFormatter(cfg Format) *Formatter {
	if cfg.Symbol == "" {
		cfg.Symbol = "i"
	}
	if cfg.Precision <= 0 {
		cfg.Precision = 2
	}
	return &Formatter{cfg: cfg}
}

// Cartesian renders z as "X + Yi" / "X - Yi", with both components rounded
// to the configured precision. Unit imaginary coefficients are elided
// ("+i", not "+1i") and a zero value renders as "0".
func (f *Formatter) Cartesian(z Complex) string {
	if f.cfg.Render != nil {
		return f.cfg.Render(z)
	}
	re := roundTo(z.Re, f.cfg.Precision)
	im := roundTo(z.Im, f.cfg.Precision)

	switch {
	case re == 0 && im == 0:
		return "0"
	case im == 0:
		return formatFloat(re)
	case re == 0:
		return imagPart(im, f.cfg.Symbol)
	}

	sign := "+"
	if im < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s %s %s", formatFloat(re), sign, imagPart(math.Abs(im), f.cfg.Symbol))
}

// Polar renders z as "(r,θ°)" or "(r,θ rad)" depending on the configured
// angle unit, both values rounded to the configured precision.
func (f *Formatter) Polar(z Complex) string {
	r := roundTo(z.Abs(), f.cfg.Precision)
	theta := z.Arg()
	if f.cfg.AngleUnit == Degrees {
		theta = theta * 180 / math.Pi
		return fmt.Sprintf("(%s,%s°)", formatFloat(r), formatFloat(roundTo(theta, f.cfg.Precision)))
	}
	return fmt.Sprintf("(%s,%s rad)", formatFloat(r), formatFloat(roundTo(theta, f.cfg.Precision)))
}

// imagPart renders a non-zero imaginary coefficient with its unit symbol,
// eliding coefficients of magnitude 1.
func imagPart(im float64, symbol string) string {
	switch im {
	case 1:
		return symbol
	case -1:
		return "-" + symbol
	}
	return formatFloat(im) + symbol
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0 // collapse -0
	}
	return r
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
