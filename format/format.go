// Package format supplies the built-in draft-07 "format" checkers:
// date-time, date, time, email, hostname, ipv4, ipv6 and regex. Each is a
// plain predicate over a string instance; the string keyword only calls
// these once the instance has already passed its type check.
package format

import (
	"net"
	"net/mail"
	"regexp"
	"strings"
	"time"
)

// DateTime reports whether s is a valid RFC 3339 date-time, the same
// layout the donor library's own time codec parses with (time.RFC3339Nano,
// falling back to time.RFC3339 for inputs with no fractional seconds).
func DateTime(s string) bool {
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// Date reports whether s is a full-date per RFC 3339 §5.6 ("2026-08-06").
func Date(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Time reports whether s is a full-time per RFC 3339 §5.6
// ("15:04:05Z" or "15:04:05.999999999+07:00").
func Time(s string) bool {
	for _, layout := range []string{"15:04:05Z07:00", "15:04:05.999999999Z07:00"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// Email reports whether s is a syntactically valid single address, using
// the standard library's RFC 5322 parser. A format check only validates
// syntax, never deliverability.
func Email(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// mail.ParseAddress accepts "Name <addr>"; the format keyword wants a
	// bare address, so reject anything that round-trips to something else.
	return addr.Address == s
}

// Hostname reports whether s is a valid RFC 1123 hostname: 1-253 total
// characters, dot-separated labels of 1-63 characters each drawn from
// letters, digits and hyphens, no label starting or ending with a hyphen.
func Hostname(s string) bool {
	if s == "" || len(s) > 253 {
		return false
	}
	labels := strings.Split(s, ".")
	for _, label := range labels {
		if !validHostnameLabel(label) {
			return false
		}
	}
	return true
}

func validHostnameLabel(label string) bool {
	n := len(label)
	if n == 0 || n > 63 {
		return false
	}
	if label[0] == '-' || label[n-1] == '-' {
		return false
	}
	for i := 0; i < n; i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
		default:
			return false
		}
	}
	return true
}

// IPv4 reports whether s is a dotted-quad IPv4 address.
func IPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && strings.Contains(s, ".")
}

// IPv6 reports whether s is an IPv6 address in its standard textual form.
func IPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() == nil && strings.Contains(s, ":")
}

// Regex reports whether s compiles as an ECMAScript-flavored regular
// expression. Go's regexp package implements RE2, not ECMAScript syntax,
// but RE2 is a (mostly) stricter subset, so a pattern that fails to
// compile here would also fail most real ECMAScript engines; this is the
// same tradeoff the rest of the corpus's own schema implementation makes
// when it compiles schema-authored patterns with regexp.Compile.
func Regex(s string) bool {
	_, err := regexp.Compile(s)
	return err == nil
}
