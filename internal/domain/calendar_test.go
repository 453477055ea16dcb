package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectHighlights(t *testing.T) {
	events := []*Event{
		{ID: "ev-1", EventName: "Meetup", StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 2)},
		{ID: "ev-2", EventName: "Hands-on", StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 10)},
	}

	hs := ProjectHighlights(events)
	require.Len(t, hs, 2)

	// End is exclusive: an inclusive end date extends one day past it.
	assert.Equal(t, day(2024, 6, 1), hs[0].Start)
	assert.Equal(t, day(2024, 6, 3), hs[0].End)
	assert.Equal(t, "Meetup", hs[0].Title)

	// A single-day event still spans a full day.
	assert.Equal(t, day(2024, 6, 10), hs[1].Start)
	assert.Equal(t, day(2024, 6, 11), hs[1].End)
}

func TestProjectHighlights_Empty(t *testing.T) {
	assert.Empty(t, ProjectHighlights(nil))
}

func TestClipHighlights(t *testing.T) {
	hs := []Highlight{
		{EventID: "ev-1", Start: day(2024, 5, 30), End: day(2024, 6, 1)},
		{EventID: "ev-2", Start: day(2024, 6, 1), End: day(2024, 6, 3)},
		{EventID: "ev-3", Start: day(2024, 7, 1), End: day(2024, 7, 2)},
	}

	tests := []struct {
		name    string
		from    time.Time
		to      time.Time
		wantIDs []string
	}{
		{"unclipped", time.Time{}, time.Time{}, []string{"ev-1", "ev-2", "ev-3"}},
		{"june only", day(2024, 6, 1), day(2024, 7, 1), []string{"ev-2"}},
		{"from only", day(2024, 6, 1), time.Time{}, []string{"ev-2", "ev-3"}},
		{"to only", time.Time{}, day(2024, 6, 1), []string{"ev-1"}},
		{"empty window", day(2024, 8, 1), day(2024, 8, 2), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipHighlights(hs, tt.from, tt.to)
			ids := make([]string, 0, len(got))
			for _, h := range got {
				ids = append(ids, h.EventID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
