package macro

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	weekdayJa    = [...]string{"月", "火", "水", "木", "金", "土", "日"}
	weekdayShort = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	weekdayUpper = [...]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}
)

// mondayIndex maps time.Weekday onto the Monday-first tables above.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func quarter(t time.Time) string {
	return strconv.Itoa((int(t.Month())-1)/3 + 1)
}

// expandDateTime replaces the date and time macros for one timestamp.
// prefix is "" for the broadcast start and "ed" for the end.
//
// The "s" variants apply late-night adjustment: a broadcast before 05:00
// belongs to the previous calendar day, with the hour carried past 24 the
// way Japanese listings print it.
func expandDateTime(s string, t time.Time, prefix string) string {
	rep := func(name, val string) {
		s = strings.ReplaceAll(s, "$SC"+prefix+name+"$", val)
	}

	rep("date", t.Format("060102"))
	rep("date2", t.Format("20060102"))
	rep("year", t.Format("06"))
	rep("year2", t.Format("2006"))
	rep("month", t.Format("01"))
	rep("day", t.Format("02"))
	rep("quarter", quarter(t))
	rep("week", weekdayJa[mondayIndex(t)])
	rep("week2", weekdayShort[mondayIndex(t)])
	rep("week3", weekdayUpper[mondayIndex(t)])
	rep("time", t.Format("1504"))
	rep("time2", t.Format("150405"))
	rep("hour", t.Format("15"))
	rep("minute", t.Format("04"))
	rep("second", t.Format("05"))

	adj, hour := t, t.Hour()
	if hour < 5 {
		adj = t.AddDate(0, 0, -1)
		hour += 24
	}
	hh := fmt.Sprintf("%02d", hour)

	rep("dates", adj.Format("060102"))
	rep("date2s", adj.Format("20060102"))
	rep("years", adj.Format("06"))
	rep("year2s", adj.Format("2006"))
	rep("months", adj.Format("01"))
	rep("days", adj.Format("02"))
	rep("quarters", quarter(adj))
	rep("weeks", weekdayJa[mondayIndex(adj)])
	rep("week2s", weekdayShort[mondayIndex(adj)])
	rep("week3s", weekdayUpper[mondayIndex(adj)])
	rep("times", hh+adj.Format("04"))
	rep("time2s", hh+adj.Format("0405"))
	rep("hours", hh)

	return s
}
