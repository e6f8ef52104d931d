// Package binding exposes color lookups to hosts that only pass integers
// and strings across the boundary.
package binding

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/tecu23/piece-color/internal/color"
)

// ErrNotInteger is returned when host input is not a decimal integer
var ErrNotInteger = errors.New("discriminant must be an integer")

// Result is the outcome of a lookup. Code is nil when the discriminant
// does not name a color.
type Result struct {
	Discriminant json.Number `json:"discriminant"`
	Code         *string     `json:"code"`
}

// Found reports whether the lookup produced a code
func (r Result) Found() bool {
	return r.Code != nil
}

// ColorString returns the code for value, or false when value is not a
// known discriminant.
func ColorString(value int) (string, bool) {
	c, ok := color.FromDiscriminant(value)
	if !ok {
		return "", false
	}

	return c.Code(), true
}

// ColorStringFloat is ColorString for hosts whose numbers are float64.
// Fractional, infinite and NaN values name no color.
func ColorStringFloat(value float64) (string, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return "", false
	}
	if value < math.MinInt32 || value > math.MaxInt32 {
		return "", false
	}

	return ColorString(int(value))
}

// Lookup wraps ColorString in a Result
func Lookup(value int) Result {
	res := Result{Discriminant: json.Number(strconv.Itoa(value))}
	if code, ok := ColorString(value); ok {
		res.Code = &code
	}

	return res
}

// ParseLookup resolves a decimal discriminant. Integers too large for int
// are still integers and resolve to no color.
func ParseLookup(raw string) (Result, error) {
	value, err := strconv.Atoi(raw)
	if err == nil {
		return Lookup(value), nil
	}

	if !errors.Is(err, strconv.ErrRange) {
		return Result{}, ErrNotInteger
	}

	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return Result{}, ErrNotInteger
	}

	return Result{Discriminant: json.Number(n.String())}, nil
}

// Entry pairs a color's discriminant with its code
type Entry struct {
	Discriminant int    `json:"discriminant"`
	Code         string `json:"code"`
}

// Table lists every color
func Table() []Entry {
	all := color.All()
	entries := make([]Entry, 0, len(all))
	for _, c := range all {
		entries = append(entries, Entry{Discriminant: c.Discriminant(), Code: c.Code()})
	}

	return entries
}
