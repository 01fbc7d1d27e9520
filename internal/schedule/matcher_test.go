package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunatsu/recname/internal/normalize"
)

func listingAt(title, channel, sub string, start time.Time, dur time.Duration) ListingEntry {
	return ListingEntry{
		Title: title, Channel: channel, SubtitleRaw: sub,
		Start: start, HasStart: true,
		End: start.Add(dur), HasEnd: true,
	}
}

func TestMatchListing(t *testing.T) {
	day := func(d, h int) time.Time {
		return time.Date(2020, 6, d, h, 0, 0, 0, time.Local)
	}
	entries := []ListingEntry{
		listingAt("Example Show", "TV Example", "#11 「前回」", day(1, 1), 30*time.Minute),
		listingAt("Example Show", "TV Example", "#12 「The Subtitle」", day(8, 1), 30*time.Minute),
		listingAt("Example Show", "Other Channel", "#12 「The Subtitle」", day(8, 5), 30*time.Minute),
		listingAt("Unrelated", "TV Example", "", day(8, 1), 30*time.Minute),
	}

	t.Run("nearest start wins when anchored", func(t *testing.T) {
		m, ok := MatchListing(entries, Query{
			SearchTitle: "Exam",
			Hint:        normalize.DateHint{Target: day(8, 2), AnchoredAtStart: true},
		})
		require.True(t, ok)
		assert.Equal(t, "Example Show", m.Title)
		assert.Equal(t, "#12", m.EpisodeLabel)
		assert.Equal(t, "The Subtitle", m.Subtitle)
		assert.Equal(t, day(8, 1), m.Start)
	})

	t.Run("channel alias filters candidates", func(t *testing.T) {
		m, ok := MatchListing(entries, Query{
			SearchTitle:  "Exam",
			ChannelAlias: "Other",
			Hint:         normalize.DateHint{Target: day(8, 1), AnchoredAtStart: true},
		})
		require.True(t, ok)
		assert.Equal(t, "Other Channel", m.Channel)
	})

	t.Run("end anchor when time came from file metadata", func(t *testing.T) {
		m, ok := MatchListing(entries, Query{
			SearchTitle: "Exam",
			Hint:        normalize.DateHint{Target: day(1, 2)},
		})
		require.True(t, ok)
		assert.Equal(t, "#11", m.EpisodeLabel)
	})

	t.Run("no title hit", func(t *testing.T) {
		_, ok := MatchListing(entries, Query{
			SearchTitle: "ZZZ",
			Hint:        normalize.DateHint{Target: day(8, 1)},
		})
		assert.False(t, ok)
	})
}
