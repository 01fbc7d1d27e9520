// Package broadcast loads the broadcaster table and resolves which
// broadcaster a filename refers to. Identity is an explicit [ID] handed out
// by the registry; table row order only determines match priority, never
// identity semantics elsewhere.
package broadcast

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ID identifies a broadcaster within a loaded registry. Unknown means "any
// broadcaster" to downstream searches.
type ID int

// Unknown is the ID of an unresolved broadcaster.
const Unknown ID = -1

// Broadcaster is one row of the external table.
type Broadcaster struct {
	DisplayName string // Primary name matched against filenames.
	Alias       string // Name matched against the feed's channel field.
	OutputName  string // Name substituted for $SCservice$.
	ChannelID   string // Remote channel id; may be empty.
}

// ErrConfigMissing is returned when the broadcaster table file is absent.
// The table is required: without it every run would be an "any broadcaster"
// search.
var ErrConfigMissing = errors.New("broadcaster table not found")

// commentMarker starts a comment line in every recname.* data file.
const commentMarker = ':'

// Registry is the ordered broadcaster table.
type Registry struct {
	rows []Broadcaster
}

// LoadRegistry reads the broadcaster table: ordered rows of four
// comma-separated fields, comment lines starting with ':'. Rows with fewer
// than four fields or an empty display name are skipped.
func LoadRegistry(fsys afero.Fs, path string) (*Registry, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
	}
	defer f.Close()

	r := &Registry{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == commentMarker {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 4 || parts[0] == "" {
			continue
		}
		r.rows = append(r.rows, Broadcaster{
			DisplayName: parts[0],
			Alias:       parts[1],
			OutputName:  parts[2],
			ChannelID:   parts[3],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading broadcaster table: %w", err)
	}
	return r, nil
}

// Len returns the number of rows.
func (r *Registry) Len() int { return len(r.rows) }

// Get returns the broadcaster for id. Unknown (or any out-of-range id)
// yields a zero value and false.
func (r *Registry) Get(id ID) (Broadcaster, bool) {
	if id < 0 || int(id) >= len(r.rows) {
		return Broadcaster{}, false
	}
	return r.rows[id], true
}

// ByChannelID returns the ID whose remote channel id equals ch, or Unknown.
func (r *Registry) ByChannelID(ch string) ID {
	if ch == "" {
		return Unknown
	}
	for i, b := range r.rows {
		if b.ChannelID == ch {
			return ID(i)
		}
	}
	return Unknown
}

// ByAlias returns the first ID whose feed alias occurs in channelName, or
// Unknown. Used to recognize a broadcaster from the feed's channel field
// when the filename did not identify one.
func (r *Registry) ByAlias(channelName string) ID {
	for i, b := range r.rows {
		if b.Alias != "" && strings.Contains(channelName, b.Alias) {
			return ID(i)
		}
	}
	return Unknown
}
