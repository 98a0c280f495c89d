package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComputeWindows(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, time.March, 15, 14, 30, 45, 0, loc)
	w := ComputeWindows(now)

	require.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, loc), w.Midnight)
	require.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, loc), w.Yesterday)
	require.Equal(t, time.Date(2025, time.March, 8, 0, 0, 0, 0, loc), w.WeekStart)
	require.Equal(t, time.Date(2025, time.February, 15, 0, 0, 0, 0, loc), w.MonthStart)
	require.Equal(t, time.Date(2025, time.February, 13, 0, 0, 0, 0, loc), w.ThirtyDaysAgo)
}

func TestComputeWindowsKeepsLocation(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.January, 1, 0, 0, 1, 0, time.UTC)
	w := ComputeWindows(now)

	require.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), w.Midnight)
	require.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), w.Yesterday)
	require.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), w.MonthStart)
}

func TestBucketByDay(t *testing.T) {
	t.Parallel()

	t.Run("groups and sorts ascending, omitting empty days", func(t *testing.T) {
		loc := time.UTC
		times := []time.Time{
			time.Date(2025, time.March, 14, 23, 59, 0, 0, loc),
			time.Date(2025, time.March, 12, 9, 0, 0, 0, loc),
			time.Date(2025, time.March, 14, 0, 1, 0, 0, loc),
		}
		daily := BucketByDay(times, loc)
		require.Equal(t, []DailyCount{
			{Date: "2025-03-12", Count: 1},
			{Date: "2025-03-14", Count: 2},
		}, daily)
	})

	t.Run("buckets by the given location's calendar day", func(t *testing.T) {
		// 20:00 UTC on the 14th is already the 15th at UTC+5:30.
		ist := time.FixedZone("IST", 5*3600+1800)
		ts := time.Date(2025, time.March, 14, 20, 0, 0, 0, time.UTC)

		require.Equal(t, []DailyCount{{Date: "2025-03-15", Count: 1}},
			BucketByDay([]time.Time{ts}, ist))
		require.Equal(t, []DailyCount{{Date: "2025-03-14", Count: 1}},
			BucketByDay([]time.Time{ts}, time.UTC))
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		require.Empty(t, BucketByDay(nil, time.UTC))
	})
}

func TestComputeGrowth(t *testing.T) {
	t.Parallel()

	t.Run("daily is today minus yesterday", func(t *testing.T) {
		g := ComputeGrowth(100, 8, 5, 30, 60)
		require.Equal(t, 3, g.Daily)
	})

	t.Run("weekly and monthly compare window against its complement", func(t *testing.T) {
		g := ComputeGrowth(100, 8, 5, 30, 60)
		require.Equal(t, 30-(100-30), g.Weekly)
		require.Equal(t, 60-(100-60), g.Monthly)
	})

	t.Run("empty store yields zeros", func(t *testing.T) {
		require.Equal(t, Growth{}, ComputeGrowth(0, 0, 0, 0, 0))
	})
}
