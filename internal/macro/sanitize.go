package macro

import (
	"runtime"
	"strings"
)

// invalidPairs maps filename-hostile characters to their full-width
// stand-ins. On Windows the forward slash is hostile too; elsewhere it is a
// legitimate directory separator the template author may have written.
func invalidPairs() (from, to []rune) {
	from = []rune(`:*?!"<>|`)
	to = []rune("：＊？！”＜＞｜")
	if runtime.GOOS == "windows" {
		from = append([]rune{'/'}, from...)
		to = append([]rune{'／'}, to...)
	}
	return from, to
}

// ReplaceInvalidChars widens filename-hostile characters across the whole
// rendered path. When both the template and the rendered path open with a
// drive letter, that two-character prefix keeps its colon.
func ReplaceInvalidChars(rendered, template string) string {
	prefix := ""
	if hasDrivePrefix(template) && hasDrivePrefix(rendered) {
		prefix, rendered = rendered[:2], rendered[2:]
	}
	from, to := invalidPairs()
	for i := range from {
		rendered = strings.ReplaceAll(rendered, string(from[i]), string(to[i]))
	}
	return prefix + rendered
}

func hasDrivePrefix(s string) bool {
	return len(s) >= 2 && s[1] == ':'
}

// CollapseSpaces tidies whitespace in a rendered path. Spaces directly
// before a backslash vanish, then each remaining run of spaces collapses to
// its first character. A run that follows a colon or backslash vanishes
// entirely. Half-width and full-width spaces count alike.
func CollapseSpaces(s string) string {
	rs := []rune(s)

	// Drop spaces that butt up against a following backslash. Starting at
	// index 2 leaves a UNC prefix alone.
	for i := 2; i < len(rs); i++ {
		if rs[i] != '\\' {
			continue
		}
		j := i - 1
		for j >= 0 && rs[j] == ' ' {
			j--
		}
		if j < i-1 {
			rs = append(rs[:j+1], rs[i:]...)
			i = j + 1
		}
	}

	rs = []rune(strings.TrimSpace(string(rs)))
	for i := 0; i < len(rs); i++ {
		if !isSpaceRune(rs[i]) {
			continue
		}
		j := i + 1
		for j < len(rs) && isSpaceRune(rs[j]) {
			j++
		}
		if i > 0 && (rs[i-1] == ':' || rs[i-1] == '\\') {
			i--
		}
		rs = append(rs[:i+1], rs[j:]...)
	}
	return string(rs)
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '　'
}
