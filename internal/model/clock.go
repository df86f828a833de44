package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotStep is the granularity of the availability grid in minutes.
// Every bookable time and every blocked slot falls on a multiple of it.
const SlotStep = 30

// Clock is a time of day expressed as minutes since midnight. Keeping
// times as plain minutes makes interval comparisons ordinary integer
// comparisons and sidesteps time zones entirely, since a reservation's
// date and time are always local to the restaurant.
type Clock int

// ParseClock converts an "HH:MM" label into a Clock. Hours above 23 or
// minutes above 59 are rejected.
func ParseClock(s string) (Clock, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time %q: hour out of range", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: minute out of range", s)
	}
	return Clock(hour*60 + minute), nil
}

// String renders the clock back as a zero-padded "HH:MM" label.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Add returns the clock shifted forward by the given number of minutes.
func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// SlotTimes enumerates the "HH:MM" labels of each SlotStep-sized slot
// in the half-open window [c, c+duration). A two hour booking starting
// at 19:30 yields 19:30, 20:00, 20:30 and 21:00.
func (c Clock) SlotTimes(durationHours float64) []string {
	end := c.Add(int(durationHours * 60))
	var out []string
	for t := c; t < end; t += SlotStep {
		out = append(out, t.String())
	}
	return out
}
