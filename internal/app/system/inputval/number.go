// internal/app/system/inputval/number.go
package inputval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON field that accepts a number or a numeric string
// ("23.8", " 120.6 "). Null, absence and "" leave it unset.
type Number struct {
	value float64
	set   bool
}

// NewNumber returns a set Number.
func NewNumber(f float64) Number { return Number{value: f, set: true} }

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = Number{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*n = Number{}
			return nil
		}
		f, err := ParseFloat(s)
		if err != nil {
			return err
		}
		*n = NewNumber(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("%s is not a number", string(b))
	}
	*n = NewNumber(f)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// Ptr returns the value, or nil when unset. Validation tags on *float64
// fields use it to express "required".
func (n Number) Ptr() *float64 {
	if !n.set {
		return nil
	}
	f := n.value
	return &f
}

// IsSet reports whether a value was supplied.
func (n Number) IsSet() bool { return n.set }

// Float returns the value (0 when unset).
func (n Number) Float() float64 { return n.value }

// ParseFloat parses a decimal string, rejecting NaN and infinities.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}
