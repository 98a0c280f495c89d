package stats

import (
	"sort"
	"time"
)

// Windows holds the time boundaries for the statistics counts. All are
// anchored at local midnight of the current day.
type Windows struct {
	Midnight      time.Time // start of today
	Yesterday     time.Time // start of yesterday
	WeekStart     time.Time // 7 days before midnight
	MonthStart    time.Time // 1 calendar month before midnight
	ThirtyDaysAgo time.Time // 30 days before midnight
}

// ComputeWindows derives the count boundaries from the given instant, in its
// location.
func ComputeWindows(now time.Time) Windows {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Windows{
		Midnight:      midnight,
		Yesterday:     midnight.AddDate(0, 0, -1),
		WeekStart:     midnight.AddDate(0, 0, -7),
		MonthStart:    midnight.AddDate(0, -1, 0),
		ThirtyDaysAgo: midnight.AddDate(0, 0, -30),
	}
}

// Growth holds the registration growth deltas. The weekly and monthly values
// compare the window count against everything outside the window; this mirrors
// the product's established numbers and is kept as-is.
type Growth struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

// ComputeGrowth derives growth deltas from the window counts.
func ComputeGrowth(total, today, yesterday, thisWeek, thisMonth int) Growth {
	return Growth{
		Daily:   today - yesterday,
		Weekly:  thisWeek - (total - thisWeek),
		Monthly: thisMonth - (total - thisMonth),
	}
}

// BucketByDay groups timestamps into per-calendar-day counts in loc, ascending
// by date. Days with no registrations do not appear. Using the same location
// as the window boundaries keeps a registration from straddling the 30-day
// cutoff into a day outside it.
func BucketByDay(times []time.Time, loc *time.Location) []DailyCount {
	counts := make(map[string]int, len(times))
	for _, ts := range times {
		counts[ts.In(loc).Format("2006-01-02")]++
	}
	days := make([]string, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Strings(days)
	daily := make([]DailyCount, 0, len(days))
	for _, day := range days {
		daily = append(daily, DailyCount{Date: day, Count: counts[day]})
	}
	return daily
}
