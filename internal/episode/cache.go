package episode

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Entry maps a program title to its service-side program id.
type Entry struct {
	Title string
	TID   int
}

// Cache persists title-to-program-id mappings as "title,id" lines sorted by
// id. A missing file is an empty cache.
type Cache struct {
	fsys afero.Fs
	path string
}

// NewCache opens a cache at path on fsys. No I/O happens until Lookup or
// Put.
func NewCache(fsys afero.Fs, path string) *Cache {
	return &Cache{fsys: fsys, path: path}
}

// TitleKey folds a title for prefix comparison: spaces removed, upper case.
func TitleKey(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, " ", ""))
}

// Lookup finds the first entry whose folded title has the folded key as a
// prefix.
func (c *Cache) Lookup(key string) (Entry, bool) {
	entries, err := c.load()
	if err != nil {
		return Entry{}, false
	}
	key = TitleKey(key)
	for _, e := range entries {
		if strings.HasPrefix(TitleKey(e.Title), key) {
			return e, true
		}
	}
	return Entry{}, false
}

// Put stores an entry, replacing any existing entry with the same id, and
// rewrites the file keeping id order. The rewrite goes through a temp file
// so an interrupted write cannot truncate the cache.
func (c *Cache) Put(e Entry) error {
	entries, err := c.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range entries {
		if entries[i].TID == e.TID {
			entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, e)
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].TID < entries[j].TID
		})
	}
	return c.rewrite(entries)
}

func (c *Cache) load() ([]Entry, error) {
	f, err := c.fsys.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open program-id cache: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		// The id is the numeric tail; titles may contain commas.
		i := strings.LastIndex(line, ",")
		if i <= 0 {
			continue
		}
		tid, err := strconv.Atoi(line[i+1:])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Title: line[:i], TID: tid})
	}
	return entries, sc.Err()
}

func (c *Cache) rewrite(entries []Entry) error {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s,%d\n", e.Title, e.TID)
	}
	tmp := c.path + ".tmp"
	if err := afero.WriteFile(c.fsys, tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write program-id cache: %w", err)
	}
	if err := c.fsys.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace program-id cache: %w", err)
	}
	return nil
}

// Len reports the number of cached entries, for diagnostics.
func (c *Cache) Len() int {
	entries, _ := c.load()
	return len(entries)
}
