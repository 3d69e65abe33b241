// Package validate provides input validation helpers used at the CLI and
// enumerator boundaries.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// hostnameRegexp accepts LDH hostnames with at least two labels. Underscore
// labels (_dmarc, _sip._tcp) are allowed because service names use them. The
// TLD is alphabetic or an IDNA A-label (xn--p1ai).
var hostnameRegexp = regexp.MustCompile(`^([a-zA-Z0-9_]([a-zA-Z0-9\-_]{0,61}[a-zA-Z0-9])?\.)+([a-zA-Z]{2,63}|xn--[a-zA-Z0-9\-]{1,59})$`)

// Normalize lowercases s and strips surrounding whitespace and a trailing dot.
// Internationalized names are converted to their ASCII (punycode) form; a
// name idna rejects is returned lowercased so IsDomain can refuse it.
func Normalize(s string) string {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ".")
	if !isASCII(s) {
		if a, err := idna.Lookup.ToASCII(s); err == nil {
			s = a
		}
	}
	return s
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// IsDomain reports whether s is a syntactically valid domain name with at
// least two labels. s is expected to be normalized.
func IsDomain(s string) bool {
	if _, ok := dns.IsDomainName(s); !ok {
		return false
	}
	return hostnameRegexp.MatchString(s)
}
