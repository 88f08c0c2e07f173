package store

import "regexp"

// regexpQuote escapes user-supplied search text before it is used inside a
// case-insensitive regex filter.
func regexpQuote(s string) string {
	return regexp.QuoteMeta(s)
}
