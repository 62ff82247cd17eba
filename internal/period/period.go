// Package period derives canonical day and week identifiers from wall-clock
// time. Keys are pure values: two timestamps in the same local calendar day
// (or ISO week) always produce identical keys, and the keys are the sole
// trigger for rollover detection.
package period

import (
	"fmt"
	"time"
)

// DayKey identifies one calendar day in the timestamp's own location.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the day key for t, using t's location.
func DayOf(t time.Time) DayKey {
	y, m, d := t.Date()
	return DayKey{Year: y, Month: m, Day: d}
}

func (k DayKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// Seed folds the key into a PRNG seed. Only same-key-same-seed matters;
// the exact mixing is not a compatibility surface.
func (k DayKey) Seed() uint64 {
	return uint64(k.Year)*10000 + uint64(k.Month)*100 + uint64(k.Day)
}

// WeekKey identifies one ISO week in the timestamp's own location.
type WeekKey struct {
	Year int
	Week int
}

// WeekOf returns the ISO week key for t, using t's location.
func WeekOf(t time.Time) WeekKey {
	y, w := t.ISOWeek()
	return WeekKey{Year: y, Week: w}
}

func (k WeekKey) String() string {
	return fmt.Sprintf("%04d-W%02d", k.Year, k.Week)
}

// Seed folds the key into a PRNG seed, salted so a week never collides with
// a day seed for the same date range.
func (k WeekKey) Seed() uint64 {
	return uint64(k.Year)*100 + uint64(k.Week) + 0x57ee0000
}

// StartOfDay returns local midnight of t's calendar day. Generated daily
// instances carry it as their creation anchor.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight of the Monday beginning t's ISO week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	// time.Weekday counts Sunday as 0; ISO weeks start on Monday.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
