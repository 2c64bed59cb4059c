package present

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// DedupeCards drops cards that repeat an earlier card's normalized URL and
// title, keeping the first occurrence and the original order.
func DedupeCards(cards []Card) []Card {
	seen := make(map[string]struct{}, len(cards))
	out := cards[:0:0]
	for _, c := range cards {
		key := cardKey(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// cardKey is sha256(normalizedURL + "|" + normalizedTitle)
func cardKey(c Card) string {
	combined := normalizeURL(c.URL) + "|" + normalizeTitle(c.Title)
	h := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(h[:])
}

func normalizeTitle(t string) string {
	return strings.Join(strings.Fields(strings.ToLower(t)), " ")
}

// normalizeURL lowercases scheme and host, drops the fragment, tracking
// parameters and any trailing slash.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") || lk == "fbclid" || lk == "gclid" {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()

	return strings.TrimRight(u.String(), "/")
}
