// ABOUTME: Base types shared by every domain entity.
// ABOUTME: Identifier/timestamp envelope, calendar dates and the person fields.

package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Base carries the server-assigned identity of every entity. It is zero on
// creation payloads; the client strips these keys before POST/PUT.
type Base struct {
	ID        int64      `json:"id,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// EntityID returns the server-assigned identifier (0 when not persisted yet).
func (b Base) EntityID() int64 { return b.ID }

// Entity is the minimal contract of a domain record.
type Entity interface {
	EntityID() int64
}

// ServerFields are the JSON keys owned by the backend. Create and update
// shapes are the entity document with these keys removed.
var ServerFields = []string{"id", "createdAt", "updatedAt"}

// Date is a calendar date marshalled as "2006-01-02". It also accepts
// RFC 3339 strings on the way in, since some backends send full timestamps.
type Date struct {
	time.Time
}

// DateOf builds a Date from a time value, truncated to the day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "2006-01-02"; empty input yields the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Person groups the fields shared by musicians and students.
type Person struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone,omitempty"`
	BirthDate  Date    `json:"birthDate,omitempty"`
	ProfileIDs []int64 `json:"profileIds,omitempty"`
}

// FullName joins first and last name for display.
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Age returns the age in whole years at ref, adjusted when the birthday has
// not yet happened that year. ok is false when no birth date is known.
func (p Person) Age(ref time.Time) (age int, ok bool) {
	if p.BirthDate.IsZero() {
		return 0, false
	}
	birth := p.BirthDate.Time
	age = ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age, true
}

// IsAdult reports whether the person is 18 or older at ref. Unknown birth
// dates count as adult, mirroring the original console behaviour.
func (p Person) IsAdult(ref time.Time) bool {
	age, ok := p.Age(ref)
	return !ok || age >= 18
}

// Dash substitutes the em dash placeholder for empty display values.
func Dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// Media is one media reference attached to a presentation.
type Media struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Type     string `json:"type"` // image, video, audio, document
	External bool   `json:"external"`
}
