package enumerate

import (
	"strings"

	"github.com/miekg/dns"

	"github.com/tbckr/dnsdumper/internal/validate"
)

// Kind says how a custom list entry is queried.
type Kind int

const (
	// KindLabel entries are joined with the target domain: "mail" -> "mail.example.com".
	KindLabel Kind = iota
	// KindFullDomain entries are queried verbatim.
	KindFullDomain
)

func (k Kind) String() string {
	if k == KindFullDomain {
		return "full-domain"
	}
	return "label"
}

// Classify decides whether a custom list entry is a label or a full domain,
// relative to the target domain. Comparison is case-insensitive and ignores a
// trailing dot.
//
//	entry has no dot                                   -> label
//	entry equals domain or is below it ("mail.example.com")  -> full domain
//	entry does not contain domain ("cdn.other.net")    -> full domain
//	entry contains but does not end with domain        -> full domain
//	entry ends with domain off a label boundary ("myexample.com") -> label
//
// The second row is the exact-suffix case: an entry spelled out as a
// subdomain of the target is queried as written, never re-suffixed.
func Classify(entry, domain string) Kind {
	e := validate.Normalize(entry)
	d := validate.Normalize(domain)
	switch {
	case !strings.Contains(e, "."):
		return KindLabel
	case dns.IsSubDomain(dns.Fqdn(d), dns.Fqdn(e)):
		return KindFullDomain
	case !strings.Contains(e, d):
		return KindFullDomain
	case !strings.HasSuffix(e, d):
		return KindFullDomain
	default:
		return KindLabel
	}
}
