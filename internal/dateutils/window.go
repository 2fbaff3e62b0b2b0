package dateutils

import (
	"fmt"
	"time"
)

// DateWindow is an inclusive [Start, End] range of instants.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewDateWindow builds a window, rejecting an End before Start.
func NewDateWindow(start, end time.Time) (DateWindow, error) {
	w := DateWindow{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return DateWindow{}, err
	}
	return w, nil
}

// LastMonth returns the window from one calendar month before now up to now.
func LastMonth(now time.Time) DateWindow {
	return DateWindow{Start: now.AddDate(0, -1, 0), End: now}
}

// Validate checks that both bounds are set and ordered.
func (w DateWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("date window needs both a start and an end")
	}
	if w.End.Before(w.Start) {
		return fmt.Errorf("date window end %s is before start %s",
			w.End.Format(time.RFC3339), w.Start.Format(time.RFC3339))
	}
	return nil
}

// Contains reports whether t lies in the window; both bounds are included.
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// String returns the window in the format "YYYY-MM-DD_YYYY-MM-DD"
func (w DateWindow) String() string {
	if w.Start.IsZero() || w.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s", ToISODate(w.Start), ToISODate(w.End))
}
