package schedule

import (
	"time"
)

// TimeOfDay is the wall-clock offset from local midnight
type TimeOfDay time.Duration

// At returns the TimeOfDay for hh:mm
func At(hh int, mm int) TimeOfDay {
	return TimeOfDay(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute)
}

// FromTime returns the wall-clock time of day of t in its own location
func FromTime(t time.Time) TimeOfDay {
	hh, mm, ss := t.Clock()
	return TimeOfDay(time.Duration(hh)*time.Hour +
		time.Duration(mm)*time.Minute +
		time.Duration(ss)*time.Second +
		time.Duration(t.Nanosecond()))
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(d).Format("15:04:05")
}

// InBetween reports whether now lies in [start, end). When start is after
// end the interval wraps past midnight.
func InBetween(now TimeOfDay, start TimeOfDay, end TimeOfDay) bool {
	if start <= end {
		return start <= now && now < end
	}

	return start <= now || now < end
}

// Window is a daily interval during which the board refreshes quickly
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Refresh is the pause before the next cycle along with its display label
type Refresh struct {
	Interval time.Duration
	Label    string
}

var (
	PeakWindows = []Window{
		{Start: At(7, 0), End: At(9, 0)},
		{Start: At(16, 0), End: At(19, 0)},
	}

	Peak    = Refresh{Interval: 30 * time.Second, Label: "30s"}
	OffPeak = Refresh{Interval: 5 * time.Minute, Label: "5m"}
)

// NextRefresh picks the refresh interval for the wall-clock time of now
func NextRefresh(now time.Time) Refresh {
	tod := FromTime(now)

	for _, w := range PeakWindows {
		if InBetween(tod, w.Start, w.End) {
			return Peak
		}
	}

	return OffPeak
}
