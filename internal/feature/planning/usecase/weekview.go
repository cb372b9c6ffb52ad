package usecase

import (
	"sort"
	"time"

	evententity "twitchplanner/internal/feature/event/domain/entity"
	"twitchplanner/internal/feature/planning/domain/entity"
)

// WeekDay is one calendar day of the export grid: its date, its weekday
// bucket (1=Monday..7=Sunday) and the events scheduled on that weekday.
type WeekDay struct {
	Date      time.Time
	DayOfWeek int
	Events    []evententity.Event
}

// BuildWeekView derives the literal sequence of calendar days between the
// planning's start and end dates inclusive, buckets its events by weekday and
// sorts each bucket by start time. It is a pure projection with no I/O.
func BuildWeekView(planning *entity.Planning) []WeekDay {
	buckets := make(map[int][]evententity.Event)
	for _, ev := range planning.Events {
		buckets[ev.DayOfWeek] = append(buckets[ev.DayOfWeek], ev)
	}
	for day := range buckets {
		events := buckets[day]
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].StartTime < events[j].StartTime
		})
	}

	start := truncateToDay(planning.StartDate)
	end := truncateToDay(planning.EndDate)

	var days []WeekDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, WeekDay{
			Date:      d,
			DayOfWeek: isoWeekday(d),
			Events:    buckets[isoWeekday(d)],
		})
	}
	return days
}

// isoWeekday maps Go's Sunday=0 convention to the 1=Monday..7=Sunday scheme
// used by events.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
