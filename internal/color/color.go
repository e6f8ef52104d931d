// Package color provides the piece color definition for a chess game
package color

import (
	"errors"
	"fmt"
)

// ErrUnknownCode is returned when text does not hold a known color code
var ErrUnknownCode = errors.New("unknown color code")

// Color represent a chess piece color. The underlying value is the
// discriminant used when a color crosses an integer-only boundary.
type Color int

// Possible color variations in a chess game
const (
	White Color = 1
	Black Color = 2
)

// Canonical single-character codes
const (
	WhiteCode = "w"
	BlackCode = "b"
)

// FromDiscriminant returns the color reserved for value. The second result
// is false for any value that is not a known discriminant.
func FromDiscriminant(value int) (Color, bool) {
	switch Color(value) {
	case White:
		return White, true
	case Black:
		return Black, true
	}

	return 0, false
}

// ParseCode returns the color for a "w" or "b" code.
func ParseCode(code string) (Color, bool) {
	switch code {
	case WhiteCode:
		return White, true
	case BlackCode:
		return Black, true
	}

	return 0, false
}

// All returns both colors in discriminant order.
func All() []Color {
	return []Color{White, Black}
}

// Valid reports whether c is one of the two colors.
func (c Color) Valid() bool {
	return c == White || c == Black
}

// Discriminant returns the integer form of c.
func (c Color) Discriminant() int {
	return int(c)
}

// Code returns the canonical code: "w" for White, "b" for Black.
func (c Color) Code() string {
	if c == White {
		return WhiteCode
	}
	if c == Black {
		return BlackCode
	}

	return ""
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}

	return c.Code()
}

// Opp returns the opposite color for the given color.
func (c Color) Opp() Color {
	if c == White {
		return Black
	}

	return White
}

// MarshalText encodes the color as its code.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("marshal %s: %w", c, ErrUnknownCode)
	}

	return []byte(c.Code()), nil
}

// UnmarshalText decodes a "w" or "b" code.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := ParseCode(string(text))
	if !ok {
		return fmt.Errorf("unmarshal %q: %w", text, ErrUnknownCode)
	}

	*c = parsed
	return nil
}
