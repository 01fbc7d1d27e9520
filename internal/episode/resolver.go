package episode

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/harunatsu/recname/internal/broadcast"
	"github.com/harunatsu/recname/internal/schedule"
)

var (
	// ErrNoMarker means the filename carries no recognizable episode
	// marker, so number-based resolution cannot run.
	ErrNoMarker = errors.New("no episode marker in filename")

	// ErrTitleNotFound means neither the cache nor the keyword search
	// produced a program id for the marker's title.
	ErrTitleNotFound = errors.New("program id not found for title")

	// ErrEpisodeNotFound means the program id resolved but the service has
	// no record for that episode number on the queried channel.
	ErrEpisodeNotFound = errors.New("episode not found")
)

// Logger is the subset of the application logger the resolver reports
// through.
type Logger interface {
	Debug(format string, args ...interface{})
}

// Resolver turns an episode marker into a broadcast match.
type Resolver struct {
	Client *schedule.Client
	Cache  *Cache
	Log    Logger
}

// Resolve extracts the marker from name and looks the episode up. When the
// service record names a channel id known to the registry, the returned
// broadcaster id supersedes the caller's; otherwise the caller's id passes
// through unchanged.
func (r *Resolver) Resolve(ctx context.Context, name string, id broadcast.ID, reg *broadcast.Registry) (schedule.Match, broadcast.ID, error) {
	m, ok := ExtractMarker(name)
	if !ok {
		return schedule.Match{}, id, ErrNoMarker
	}
	r.Log.Debug("episode marker: title=%q number=%d", m.Title, m.Number)

	entry, hit := r.Cache.Lookup(m.Title)
	if !hit {
		body, err := r.Client.FindTitle(ctx, m.Title)
		if err != nil {
			return schedule.Match{}, id, err
		}
		tid, canonical, found := scanProgramAnchors(body, TitleKey(m.Title))
		if !found {
			return schedule.Match{}, id, ErrTitleNotFound
		}
		entry = Entry{Title: canonical, TID: tid}
		if err := r.Cache.Put(entry); err != nil {
			r.Log.Debug("cache update failed: %v", err)
		}
	}
	r.Log.Debug("program id %d for %q", entry.TID, entry.Title)

	var channelID string
	if b, ok := reg.Get(id); ok {
		channelID = b.ChannelID
	}
	body, err := r.Client.EpisodeLookup(ctx, entry.TID, channelID, m.Number)
	if err != nil {
		return schedule.Match{}, id, err
	}
	rec, ok := schedule.ParseEpisode(body)
	if !ok {
		return schedule.Match{}, id, ErrEpisodeNotFound
	}
	if chID := reg.ByChannelID(rec.ChannelID); chID != broadcast.Unknown {
		id = chID
	}

	match := schedule.Match{
		Title:        entry.Title,
		Subtitle:     rec.Subtitle,
		EpisodeLabel: "#" + strconv.Itoa(m.Number),
		Start:        rec.Start,
		End:          rec.End,
		HasStart:     rec.HasStart,
		HasEnd:       rec.HasEnd,
	}
	return match, id, nil
}

// scanProgramAnchors walks keyword-search results backward looking for a
// program link, "/tid/<digits>" followed by the anchor text, whose folded
// title starts with key. Scanning backward prefers the newest program when
// several share a title prefix.
func scanProgramAnchors(body, key string) (tid int, title string, found bool) {
	body = schedule.DecodeEntities(body)
	i := len(body)
	for {
		i = strings.LastIndex(body[:i], "/tid/")
		if i < 0 {
			return 0, "", false
		}
		j := i + len("/tid/")
		for j < len(body) && body[j] >= '0' && body[j] <= '9' {
			j++
		}
		if j == i+len("/tid/") {
			continue
		}
		id, err := strconv.Atoi(body[i+len("/tid/") : j])
		if err != nil {
			continue
		}
		// Skip the `">` that closes the href attribute.
		j += 2
		if j >= len(body) {
			continue
		}
		k := strings.Index(body[j:], "</a>")
		if k <= 0 {
			continue
		}
		text := normalizeAnchorTitle(body[j : j+k])
		if strings.HasPrefix(TitleKey(text), key) {
			return id, text, true
		}
	}
}

// normalizeAnchorTitle matches the width normalization applied to
// filenames, where ? and ! stay full width.
func normalizeAnchorTitle(s string) string {
	s = strings.ReplaceAll(s, "?", "？")
	return strings.ReplaceAll(s, "!", "！")
}
