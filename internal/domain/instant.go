package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// isoLayout is the wire format for moments: second precision, always UTC.
const isoLayout = "2006-01-02T15:04:05Z"

// Instant is a UTC moment with second precision. It is stored as RFC 3339
// text so both SQLite and PostgreSQL read it back the same way.
type Instant struct{ time.Time }

func NewInstant(t time.Time) Instant { return Instant{t.UTC().Truncate(time.Second)} }

func Now() Instant { return NewInstant(time.Now()) }

func ParseInstant(s string) (Instant, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Instant{}, Invalid("bad moment %q", s)
	}
	return NewInstant(t), nil
}

// MustInstant is ParseInstant for literals known to be valid.
func MustInstant(s string) Instant {
	i, err := ParseInstant(s)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Instant) String() string { return i.UTC().Format(isoLayout) }

func (i Instant) MarshalJSON() ([]byte, error) { return json.Marshal(i.String()) }

func (i *Instant) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return Invalid("moment must be a string")
	}
	v, err := ParseInstant(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i *Instant) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*i = NewInstant(v)
		return nil
	case string:
		p, err := ParseInstant(v)
		if err != nil {
			return err
		}
		*i = p
		return nil
	case []byte:
		return i.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Instant", src)
	}
}

func (i Instant) Value() (driver.Value, error) { return i.UTC().Format(time.RFC3339), nil }
