package domain

import "time"

// Highlight is a background interval for the month view. End is exclusive:
// an event ending on a given day highlights through the end of that day,
// matching a calendar widget's exclusive-end convention.
type Highlight struct {
	EventID string    `json:"eventId"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// Highlight returns the event's background interval [StartDate, EndDate+1d).
func (e *Event) Highlight() Highlight {
	return Highlight{
		EventID: e.ID,
		Title:   e.EventName,
		Start:   e.StartDate,
		End:     e.EndDate.AddDate(0, 0, 1),
	}
}

// ProjectHighlights derives one highlight per event. The transform is pure;
// callers recompute it whenever the event set is refreshed.
func ProjectHighlights(events []*Event) []Highlight {
	out := make([]Highlight, 0, len(events))
	for _, e := range events {
		out = append(out, e.Highlight())
	}
	return out
}

// ClipHighlights returns the highlights overlapping the half-open window
// [from, to). A zero bound leaves the corresponding side unclipped.
func ClipHighlights(highlights []Highlight, from, to time.Time) []Highlight {
	out := make([]Highlight, 0, len(highlights))
	for _, h := range highlights {
		if !from.IsZero() && !h.End.After(from) {
			continue
		}
		if !to.IsZero() && !h.Start.Before(to) {
			continue
		}
		out = append(out, h)
	}
	return out
}
