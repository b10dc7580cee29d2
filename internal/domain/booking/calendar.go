package booking

import "time"

// ===============================
// Calendar View Controller
// ===============================

type ViewMode string

const (
	ViewDay  ViewMode = "day"
	ViewWeek ViewMode = "week"
)

// Controller holds the only mutable state of the calendar: the anchor
// date and the view mode. It is meant to be driven by a single UI
// goroutine; everything it feeds into is pure.
type Controller struct {
	mode   ViewMode
	anchor time.Time
	narrow bool
}

// NewController picks the initial mode from the viewport
// classification: narrow viewports cannot usefully render 7 columns,
// so they open in day mode.
func NewController(now time.Time, narrow bool) *Controller {
	mode := ViewWeek
	if narrow {
		mode = ViewDay
	}
	return &Controller{
		mode:   mode,
		anchor: StartOfDay(now),
		narrow: narrow,
	}
}

func (c *Controller) Mode() ViewMode    { return c.mode }
func (c *Controller) Anchor() time.Time { return c.anchor }
func (c *Controller) Narrow() bool      { return c.narrow }

func (c *Controller) GoToPreviousDay() { c.anchor = c.anchor.AddDate(0, 0, -1) }
func (c *Controller) GoToNextDay()     { c.anchor = c.anchor.AddDate(0, 0, 1) }

func (c *Controller) GoToPreviousWeek() { c.anchor = c.anchor.AddDate(0, 0, -7) }
func (c *Controller) GoToNextWeek()     { c.anchor = c.anchor.AddDate(0, 0, 7) }

func (c *Controller) GoToToday(now time.Time) { c.anchor = StartOfDay(now) }

// SwitchView changes the mode. While the viewport is narrow, week mode
// cannot be selected; the request is dropped rather than queued.
func (c *Controller) SwitchView(mode ViewMode) {
	if mode != ViewDay && mode != ViewWeek {
		return
	}
	if c.narrow && mode == ViewWeek {
		return
	}
	c.mode = mode
}

// SetNarrow re-applies the viewport policy whenever the classification
// changes: going narrow forces day mode immediately; widening only
// re-enables week selection, it does not switch back on its own.
func (c *Controller) SetNarrow(narrow bool) {
	c.narrow = narrow
	if narrow {
		c.mode = ViewDay
	}
}
