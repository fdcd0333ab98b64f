package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNonFinitePrice is returned for NaN and infinite prices, which cannot be
// rendered back as JSON.
var ErrNonFinitePrice = errors.New("price must be a finite number")

// Price is a non-negative amount that accepts either a JSON number or a
// numeric string ("1.5") on input.
type Price float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var f float64
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("price %q is not a number", s)
		}
		f = parsed
	} else if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("price must be a number: %w", err)
	}
	if !Price(f).IsFinite() {
		return ErrNonFinitePrice
	}
	*p = Price(f)
	return nil
}

// IsFinite reports whether p is neither NaN nor infinite.
func (p Price) IsFinite() bool {
	f := float64(p)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Float64 returns p as a float64.
func (p Price) Float64() float64 {
	return float64(p)
}
