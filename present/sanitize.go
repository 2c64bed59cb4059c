package present

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips markup from feed and API text and collapses whitespace.
// The result is plain text with entities decoded, so escaped markup such as
// "&lt;b&gt;" comes back as literal "<b>". Callers that render HTML must
// escape it again.
func Sanitize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	plain := html.UnescapeString(strictPolicy.Sanitize(s))
	return strings.Join(strings.Fields(plain), " ")
}
