// Package subst loads and applies the user-owned text tables: the pre and
// post substitution tables and the exclusion list. All three share the flat
// "field,field" line format with ':'-prefixed comment lines; the files are
// optional and absence yields an empty table.
package subst

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

const commentMarker = ':'

// Rule is one find→replace pair.
type Rule struct {
	Find    string
	Replace string
}

// Table is an ordered substitution table, applied in file order.
type Table []Rule

// LoadTable reads a substitution table: lines of "find,replace" split on the
// first comma. A missing file is not an error.
func LoadTable(fsys afero.Fs, path string) (Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening substitution table: %w", err)
	}
	defer f.Close()

	var t Table
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == commentMarker {
			continue
		}
		find, replace, ok := strings.Cut(line, ",")
		if !ok || find == "" {
			continue
		}
		t = append(t, Rule{Find: find, Replace: replace})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading substitution table: %w", err)
	}
	return t, nil
}

// Apply runs every rule over s in table order.
func (t Table) Apply(s string) string {
	for _, r := range t {
		s = strings.ReplaceAll(s, r.Find, r.Replace)
	}
	return s
}

// LoadExclusions reads the exclusion list: one substring per line. A missing
// file yields an empty list.
func LoadExclusions(fsys afero.Fs, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening exclusion list: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == commentMarker {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading exclusion list: %w", err)
	}
	return out, nil
}

// Excluded reports whether any exclusion substring occurs in path,
// case-insensitively.
func Excluded(path string, exclusions []string) bool {
	upper := strings.ToUpper(path)
	for _, e := range exclusions {
		if strings.Contains(upper, strings.ToUpper(e)) {
			return true
		}
	}
	return false
}
