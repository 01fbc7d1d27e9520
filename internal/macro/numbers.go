package macro

import (
	"strconv"
	"strings"
)

// episodeNumbers renders an episode label such as "#5" or "#5,#6" at four
// widths. Width 1 keeps only the numbers themselves; widths 2 through 4
// zero-pad each number and copy any text between markers through verbatim,
// so "#5,#6" becomes "05,06" at width 2.
func episodeNumbers(label string) (n1, n2, n3, n4 string) {
	var b1, b2, b3, b4 strings.Builder
	rs := []rune(label)
	i := 0
	for i < len(rs) {
		if rs[i] != '#' {
			b2.WriteRune(rs[i])
			b3.WriteRune(rs[i])
			b4.WriteRune(rs[i])
			i++
			continue
		}
		j := i + 1
		for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
			j++
		}
		if j == i+1 {
			// A bare '#' with no digits is dropped at every width.
			i++
			continue
		}
		n, _ := strconv.Atoi(string(rs[i+1 : j]))
		s := strconv.Itoa(n)
		b1.WriteString(s)
		s = padTo(s, 2)
		b2.WriteString(s)
		s = padTo(s, 3)
		b3.WriteString(s)
		s = padTo(s, 4)
		b4.WriteString(s)
		i = j
	}
	return b1.String(), b2.String(), b3.String(), b4.String()
}

func padTo(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
