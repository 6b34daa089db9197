// Package localtime renders and parses instants in the platform's fixed
// display time zone. Timestamps are stored as canonical instants; the
// localized text form only ever appears at the API boundary.
package localtime

import (
	"fmt"
	"time"
)

// DisplayLayout matches the en-US locale string the platform shows to
// users, e.g. "6/15/2026, 9:05:07 PM".
const DisplayLayout = "1/2/2006, 3:04:05 PM"

// DefaultZone is the zone used when none is configured.
const DefaultZone = "Asia/Dhaka"

// Zone converts instants to and from the fixed local representation.
type Zone struct {
	loc *time.Location
}

// Load resolves a zone by IANA name. An empty name falls back to DefaultZone.
func Load(name string) (*Zone, error) {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", name, err)
	}
	return &Zone{loc: loc}, nil
}

// Now returns the current instant in the display zone.
func (z *Zone) Now() time.Time {
	return time.Now().In(z.loc)
}

// In shifts an instant into the display zone without changing it.
func (z *Zone) In(t time.Time) time.Time {
	return t.In(z.loc)
}

// Format renders an instant as localized display text.
func (z *Zone) Format(t time.Time) string {
	return t.In(z.loc).Format(DisplayLayout)
}

// Parse reads localized display text back into an instant. The AM/PM form
// is handled by the layout itself; no manual decomposition is needed.
func (z *Zone) Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DisplayLayout, s, z.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse local time %q: %w", s, err)
	}
	return t, nil
}

// ParseAny accepts either an RFC3339 instant or the localized display form.
// Election schedules arrive in both shapes depending on the client.
func (z *Zone) ParseAny(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return z.Parse(s)
}
