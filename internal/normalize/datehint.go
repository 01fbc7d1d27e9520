package normalize

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/afero"
)

// DateHint is the best-guess target datetime derived from a filename or,
// failing that, from file timestamps. It steers schedule disambiguation.
type DateHint struct {
	// Target is always defined by the time matching begins; it falls back
	// to "now" when nothing better is known.
	Target time.Time

	// AnchoredAtStart reports that Target refers to the program start (a
	// clock time was recovered); otherwise candidates are compared against
	// their end times.
	AnchoredAtStart bool

	// WindowDays is the backward search window. 1 normally; 7 marks the
	// "date unknown, searched backward a week from file time" case.
	WindowDays int

	// TitleOffset is the position just past the parsed date(+time) run.
	// Never 0: 0 means "unset" and is coerced to 1.
	TitleOffset int
}

// ExtractDateHint scans name for a 6-8 digit YYMMDD/YYYYMMDD run with an
// optional trailing HHMM (hours >= 24 roll into the next day), falling back
// to the modification time of the file at statPath. startPos seeds
// TitleOffset; now anchors the 2-digit-year disambiguation.
//
// The 6-vs-8 digit choice compares the first four digits against the current
// year: a delta below -2 or above 99 means the run cannot start with a full
// year, so the century is prefixed instead. The thresholds are inherited
// verbatim from the legacy tool, quirks included (a leading 6-digit date
// still yields TitleOffset 8). When a clock time parses, TitleOffset lands
// just past its digits instead.
func ExtractDateHint(fsys afero.Fs, name, statPath string, startPos int, now time.Time) DateHint {
	rs := []rune(name)
	var target time.Time
	haveTarget := false
	anchored := false
	days := 1
	titlePos := startPos
	dateAtStart := false
	k := 0

	if len(rs) > 8 {
		for i := 0; i < len(rs)-5; i++ {
			if !isDigit(rs[i]) {
				continue
			}
			j := i + 1
			for j < len(rs) && isDigit(rs[j]) {
				j++
			}
			if j-i <= 5 {
				continue
			}

			yearDelta := now.Year() - runesToInt(rs[i:i+4])
			var dateStr string
			if j-i < 8 || yearDelta < -2 || yearDelta > 99 {
				dateStr = fmt.Sprintf("%02d%s", now.Year()/100, string(rs[i:i+6]))
				k = i + 6
			} else {
				dateStr = string(rs[i : i+8])
				k = i + 8
			}

			if atoi(dateStr[:4]) >= now.Year()+3 {
				continue
			}
			t, err := time.ParseInLocation("2006/01/02",
				dateStr[:4]+"/"+dateStr[4:6]+"/"+dateStr[6:8], time.Local)
			if err != nil {
				continue
			}
			target = t
			haveTarget = true
			dateAtStart = i == 0
			if dateAtStart {
				dateLength := 8
				if k+4 <= len(rs) && allDigits(rs[k:k+4]) {
					dateLength += 4
				}
				titlePos = dateLength
			}
			break
		}
	}
	if titlePos == 0 {
		titlePos = 1
	}

	// Optional HHMM after the date, allowing one joining character. Hours
	// of 24 and above roll into the next day, the way late-night listings
	// are printed.
	if haveTarget && k < len(rs)-2 {
		if !isDigit(rs[k]) {
			k++
		}
		if k+4 <= len(rs) && allDigits(rs[k:k+4]) {
			hour := runesToInt(rs[k : k+2])
			dayAdd := 0
			if hour > 23 {
				hour -= 24
				dayAdd = 1
			}
			minute := runesToInt(rs[k+2 : k+4])
			if hour <= 23 && minute <= 59 {
				target = target.AddDate(0, 0, dayAdd)
				target = time.Date(target.Year(), target.Month(), target.Day(),
					hour, minute, 0, 0, time.Local)
				anchored = true
				if dateAtStart {
					titlePos = k + 4
				}
			}
		}
	}

	// Filesystem fallback on the recording's own timestamps.
	if !anchored {
		if fi, err := fsys.Stat(statPath); err == nil {
			mt := fi.ModTime()
			if !haveTarget {
				target = mt
				haveTarget = true
				days = 7
			} else {
				target = time.Date(target.Year(), target.Month(), target.Day(),
					mt.Hour(), mt.Minute(), mt.Second(), 0, time.Local)
			}
		}
	}

	if !haveTarget {
		target = now
	}

	return DateHint{
		Target:          target,
		AnchoredAtStart: anchored,
		WindowDays:      days,
		TitleOffset:     titlePos,
	}
}

func runesToInt(rs []rune) int { return atoi(string(rs)) }

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
