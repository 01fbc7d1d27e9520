package normalize

import (
	"path/filepath"
	"strings"
)

// RawName is the immutable three-way split of an input path.
type RawName struct {
	Dir  string // Directory part, possibly a bare drive letter ("C:").
	Base string // Filename without extension(s).
	Ext  string // Extension including the dot, or "".
}

// SplitPath splits a path into directory, base and extension. A secondary
// pseudo-extension is stripped when the base contains an internal separator
// and the tail after the last dot is purely alphanumeric (handles
// "name_part.x264.ts"-style names whose first dot is not an extension
// boundary). On Windows-style paths a drive-letter-only directory is
// preserved when no directory segment exists.
func SplitPath(path string) RawName {
	dir, base := filepath.Split(path)
	if dir == "" && len(base) >= 2 && base[1] == ':' && isDriveLetter(base[0]) {
		dir = base[:2]
		base = base[2:]
	}
	if dir != "/" {
		dir = strings.TrimRight(dir, string(filepath.Separator))
	}

	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	if strings.ContainsRune(name, Sep) {
		ext2 := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext2)
		if strings.ContainsRune(stem, Sep) && isAlnum(strings.TrimPrefix(ext2, ".")) {
			name = stem
		}
	}

	return RawName{Dir: dir, Base: name, Ext: ext}
}

func isDriveLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isAlnum reports whether s is non-empty ASCII letters and digits only.
func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= '0' && b <= '9':
		case b >= 'a' && b <= 'z':
		case b >= 'A' && b <= 'Z':
		default:
			return false
		}
	}
	return true
}
