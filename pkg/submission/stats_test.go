package submission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics(t *testing.T) {
	s, _ := newTestStore(t, nil, time.Date(2025, 3, 1, 9, 0, 0, 0, est))
	s.AddItem("Shirt")
	s.AddItem("Shirt blue")
	s.AddItem("Pajama")
	s.MarkAsSubmitted()

	stats := s.Statistics()
	require.Len(t, stats, 2)
	assert.Equal(t, "Shirt", stats[0].Name)
	assert.Equal(t, 2, stats[0].Count)
	assert.InDelta(t, 66.7, stats[0].Percentage, 0.05)
	assert.Equal(t, "Pajama", stats[1].Name)
	assert.Equal(t, 1, stats[1].Count)
	assert.InDelta(t, 33.3, stats[1].Percentage, 0.05)
}

func TestStatisticsIgnoresPendingAndEmpty(t *testing.T) {
	s, _ := newTestStore(t, nil, time.Date(2025, 3, 1, 9, 0, 0, 0, est))
	assert.Empty(t, s.Statistics())

	s.AddItem("Shirt")
	assert.Empty(t, s.Statistics(), "pending items are not counted")
}

func TestStatisticsTiesByName(t *testing.T) {
	s, _ := newTestStore(t, nil, time.Date(2025, 3, 1, 9, 0, 0, 0, est))
	s.AddItem("Towel")
	s.AddItem("Sock")
	s.MarkAsSubmitted()

	stats := s.Statistics()
	require.Len(t, stats, 2)
	assert.Equal(t, []string{"Sock", "Towel"}, []string{stats[0].Name, stats[1].Name})
	assert.InDelta(t, 50.0, stats[0].Percentage, 0.001)
}

func TestMonthlyStats(t *testing.T) {
	s, c := newTestStore(t, nil, time.Date(2025, 3, 30, 9, 0, 0, 0, est))
	s.AddItem("Shirt")
	s.MarkAsSubmitted()
	c.Advance(24 * time.Hour)
	s.AddItem("Shirt")
	s.AddItem("Towel")
	s.MarkAsSubmitted()
	c.Advance(24 * time.Hour) // April 1st
	s.AddItem("Sock")
	s.MarkAsSubmitted()

	months := s.MonthlyStats()
	require.Len(t, months, 2)
	assert.True(t, months[0].Month.Equal(day(2025, 4, 1)))
	assert.Equal(t, 1, months[0].Count)
	assert.True(t, months[1].Month.Equal(day(2025, 3, 1)))
	assert.Equal(t, 3, months[1].Count)
}
