package style

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// normalizeColor canonicalizes a color value for the resolved style: SVG 1.1
// color names ("tomato", "steelblue") become their "#rrggbb" form. Hex values
// keep their casing so resolved output matches the document byte-for-byte.
// Anything unrecognized passes through untouched so renderer-specific color
// syntax keeps working.
func normalizeColor(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.HasPrefix(s, "#") {
		return &s
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		return &hex
	}
	return &s
}
