// Package art bundles the ascii art shipped with the terminal: the
// dancing-kirby animation frames, the splash logo, and a generated
// waveform. Art is plain multi-line strings; the terminal centers and
// colors them at render time.
package art

import (
	"sort"
	"strings"
)

const (
	Dance1 = "<('-'<) "
	Dance2 = "<('-')>"
	Dance3 = " (>'-')>"

	Dance4 = "<('-'<)  (>'-')>"
	Dance5 = "<('-')> <('-')>"
	Dance6 = " (>'-')><('-'<) "

	Dance7 = "<('-'<) <('-')^ <('-'<) "
	Dance8 = "<('-')> <('-')> <('-')>"
	Dance9 = " (>'-')> ^('-')> (>'-')>"

	Dance10 = "<('-'<) <('-')^ <('-'<) \n\n (>'-')> ^('-')> (>'-')>"
	Dance11 = "<('-')> <('-')> <('-')>\n\n<('-')> <('-')> <('-')>"
	Dance12 = " (>'-')> ^('-')> (>'-')>\n\n<('-'<) <('-')^ <('-'<) "
)

// Dances is the frame sequence of the dance animation, in play order.
var Dances = []string{
	Dance1, Dance2, Dance3, Dance2,
	Dance4, Dance5, Dance6, Dance5,
	Dance7, Dance8, Dance9, Dance8,
	Dance10, Dance11, Dance12, Dance11,
}

// Logo is the splash banner.
const Logo = `  __                  _
 / _| __ _ _   ___  _| |_ ___ _ __ _ __ ___
| |_ / _` + "`" + ` | | | \ \/ / __/ _ \ '__| '_ ` + "`" + ` _ \
|  _| (_| | |_| |>  <| ||  __/ |  | | | | | |
|_|  \__,_|\__,_/_/\_\\__\___|_|  |_| |_| |_|`

var registry = map[string]string{
	"logo":  Logo,
	"dance": Dance11,
	"wave":  Wave(60, 8),
}

// Lookup returns a named piece of art.
func Lookup(name string) (string, bool) {
	a, ok := registry[name]
	return a, ok
}

// Names lists the registered art names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lines splits a piece of art into display rows.
func Lines(a string) []string {
	return strings.Split(a, "\n")
}
