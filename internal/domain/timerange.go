package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" in 24-hour notation
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: bad time %q", ErrInvalidTimeRestriction, s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayFrom extracts the wall-clock time of t in its own location
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// MarshalText implements encoding.TextMarshaler
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TimeRange is a half-open daily window [Start, End). A range whose end is
// before its start spans midnight.
type TimeRange struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Contains reports whether tod falls inside the range
func (r TimeRange) Contains(tod TimeOfDay) bool {
	if r.Start <= r.End {
		return tod >= r.Start && tod < r.End
	}
	return tod >= r.Start || tod < r.End
}

// SpansMidnight reports whether the range wraps past 00:00
func (r TimeRange) SpansMidnight() bool {
	return r.End < r.Start
}

// TimeRestriction limits when a session or device use is permitted
type TimeRestriction struct {
	AllowedRanges []TimeRange    `json:"allowed_ranges,omitempty"`
	BlockedDays   []time.Weekday `json:"blocked_days,omitempty"`
}

// IsAllowed reports whether t satisfies the restriction
func (r TimeRestriction) IsAllowed(t time.Time) bool {
	if slices.Contains(r.BlockedDays, t.Weekday()) {
		return false
	}
	if len(r.AllowedRanges) == 0 {
		return true
	}
	tod := TimeOfDayFrom(t)
	for _, rng := range r.AllowedRanges {
		if rng.Contains(tod) {
			return true
		}
	}
	return false
}

// TimeRestrictionRequest is the raw form of a TimeRestriction
type TimeRestrictionRequest struct {
	AllowedRanges []TimeRangeInput `json:"allowed_ranges,omitempty" toml:"allowed_ranges"`
	BlockedDays   []string         `json:"blocked_days,omitempty" toml:"blocked_days"`
}

// TimeRangeInput is the raw form of a TimeRange
type TimeRangeInput struct {
	Start string `json:"start" toml:"start"`
	End   string `json:"end" toml:"end"`
}

// Validate converts the request into a TimeRestriction
func (r TimeRestrictionRequest) Validate() (TimeRestriction, error) {
	var out TimeRestriction
	for _, in := range r.AllowedRanges {
		start, err := ParseTimeOfDay(in.Start)
		if err != nil {
			return TimeRestriction{}, err
		}
		end, err := ParseTimeOfDay(in.End)
		if err != nil {
			return TimeRestriction{}, err
		}
		if start == end {
			return TimeRestriction{}, fmt.Errorf("%w: empty range %s-%s", ErrInvalidTimeRestriction, in.Start, in.End)
		}
		out.AllowedRanges = append(out.AllowedRanges, TimeRange{Start: start, End: end})
	}

	for _, d := range r.BlockedDays {
		day, err := ParseWeekday(d)
		if err != nil {
			return TimeRestriction{}, err
		}
		if !slices.Contains(out.BlockedDays, day) {
			out.BlockedDays = append(out.BlockedDays, day)
		}
	}
	slices.Sort(out.BlockedDays)

	if len(out.BlockedDays) == 7 {
		return TimeRestriction{}, fmt.Errorf("%w: every day is blocked", ErrInvalidTimeRestriction)
	}
	return out, nil
}

// ParseWeekday accepts full or three-letter English day names, case-insensitively
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown day %q", ErrInvalidTimeRestriction, s)
}
