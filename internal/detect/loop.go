// Package detect holds a rough textual heuristic for spotting obvious
// infinite loops in submitted code. Nothing on the request path calls it.
package detect

import "strings"

var loopMarkers = []string{
	"while true",
	"while(true)",
	"while (true)",
	"for(;;)",
	"for (;;)",
	"while 1:",
}

// LooksLikeInfiniteLoop reports whether the code contains an unconditional
// loop construct. Purely textual, so false negatives abound.
func LooksLikeInfiniteLoop(code string) bool {
	lowered := strings.ToLower(code)
	for _, marker := range loopMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
