// ABOUTME: Validation rules attachable to form field descriptors.
// ABOUTME: Rules skip empty values; required-ness is checked separately.

package form

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/abmusica/maestro/internal/schema"
)

type rule struct {
	name string
	fn   func(any) error
}

func (r rule) Name() string         { return r.name }
func (r rule) Validate(v any) error { return r.fn(v) }

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email validates that a non-empty value looks like an e-mail address.
func Email() schema.Rule {
	return rule{name: "email", fn: func(v any) error {
		s, _ := v.(string)
		if s == "" {
			return nil
		}
		if !emailPattern.MatchString(s) {
			return fmt.Errorf("invalid email address")
		}
		return nil
	}}
}

// PastDate validates that a non-empty "2006-01-02" value is not in the future.
func PastDate() schema.Rule {
	return pastDateAt(time.Now)
}

func pastDateAt(now func() time.Time) schema.Rule {
	return rule{name: "pastDate", fn: func(v any) error {
		s, _ := v.(string)
		if s == "" {
			return nil
		}
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("invalid date")
		}
		today := now()
		cutoff := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		if d.After(cutoff) {
			return fmt.Errorf("date must be in the past")
		}
		return nil
	}}
}

// Min validates a numeric lower bound.
func Min(limit float64) schema.Rule {
	return rule{name: "min", fn: func(v any) error {
		f, ok := toFloat(v)
		if !ok {
			return nil
		}
		if f < limit {
			return fmt.Errorf("value below minimum %v", limit)
		}
		return nil
	}}
}

// Max validates a numeric upper bound.
func Max(limit float64) schema.Rule {
	return rule{name: "max", fn: func(v any) error {
		f, ok := toFloat(v)
		if !ok {
			return nil
		}
		if f > limit {
			return fmt.Errorf("value above maximum %v", limit)
		}
		return nil
	}}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		if n == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
