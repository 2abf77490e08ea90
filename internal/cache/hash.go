package cache

import (
	"strconv"
	"unicode/utf16"
)

const (
	// Prefix starts every generated identifier.
	Prefix = "uni-"
	// Placeholder stands for the identifier in compiled rules until the
	// hash of the rules is known.
	Placeholder = "__uni__"
	// MarkerProperty names the selector and custom property of marker rules.
	MarkerProperty = "--uni"
)

// Hash returns the identifier of text: a 31-multiplier rolling hash over
// its UTF-16 code units with 32-bit wraparound, made non-negative and
// prefixed with Prefix. The empty string hashes to "uni-0".
func Hash(text string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(text)) {
		h = h*31 + int32(u)
	}
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return Prefix + strconv.FormatInt(n, 10)
}

// Marker returns the rule recording hash in a sink. Markers are what
// hydration looks for.
func Marker(hash string) string {
	return MarkerProperty + " {" + MarkerProperty + ":" + hash + ";}"
}
