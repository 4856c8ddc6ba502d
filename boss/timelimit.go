// SPDX-License-Identifier: MIT

package boss

import (
	"fmt"
	"strings"
	"time"
)

// TimeUnit is the symbolic unit of a training budget.
type TimeUnit int

const (
	// Minute is 6e10 ns.
	Minute TimeUnit = iota + 1
	// Hour is 3.6e12 ns.
	Hour
	// Day is 8.64e13 ns.
	Day
)

// Duration returns one unit as a duration.
func (u TimeUnit) Duration() time.Duration {
	switch u {
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	case Day:
		return 24 * time.Hour
	default:
		return 0
	}
}

func (u TimeUnit) String() string {
	switch u {
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	default:
		return fmt.Sprintf("TimeUnit(%d)", int(u))
	}
}

// ParseTimeUnit accepts minute/hour/day in singular or plural, any case.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s") {
	case "minute":
		return Minute, nil
	case "hour":
		return Hour, nil
	case "day":
		return Day, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrTimeUnit)
}

// Budget normalises amount units to a single duration.
func Budget(unit TimeUnit, amount int) (time.Duration, error) {
	d := unit.Duration()
	if d == 0 {
		return 0, fmt.Errorf("%v: %w", unit, ErrTimeUnit)
	}
	return time.Duration(amount) * d, nil
}
