// Package display renders the startup banner.
package display

import (
	"fmt"
	"os"

	"github.com/harunatsu/recname/internal/term"
)

// PrintBanner prints the ASCII banner to stderr; uses Magenta if colors are
// enabled. stdout stays clean for the destination path.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stderr, term.Magenta)
	}
	fmt.Fprint(os.Stderr, ` _ __ ___  ___ _ __   __ _ _ __ ___   ___
| '__/ _ \/ __| '_ \ / _`+"`"+` | '_ `+"`"+` _ \ / _ \
| | |  __/ (__| | | | (_| | | | | | |  __/
|_|  \___|\___|_| |_|\__,_|_| |_| |_|\___|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stderr, term.NC)
	}
}
