package record

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/tbckr/dnsdumper/internal/apperr"
)

// Type is a DNS record type. Values are the IANA type codes as defined by
// miekg/dns, so Type(dns.TypeMX) == TypeMX.
type Type uint16

// Record types queried by dnsdumper.
const (
	TypeA      = Type(dns.TypeA)
	TypeAAAA   = Type(dns.TypeAAAA)
	TypeCNAME  = Type(dns.TypeCNAME)
	TypeMX     = Type(dns.TypeMX)
	TypeNS     = Type(dns.TypeNS)
	TypeTXT    = Type(dns.TypeTXT)
	TypeSOA    = Type(dns.TypeSOA)
	TypePTR    = Type(dns.TypePTR)
	TypeSRV    = Type(dns.TypeSRV)
	TypeCAA    = Type(dns.TypeCAA)
	TypeDNSKEY = Type(dns.TypeDNSKEY)
	TypeDS     = Type(dns.TypeDS)
)

// MainTypes are queried against the main domain, in this order.
var MainTypes = []Type{
	TypeA, TypeAAAA, TypeCNAME, TypeMX, TypeNS, TypeTXT,
	TypeSOA, TypePTR, TypeSRV, TypeCAA, TypeDNSKEY, TypeDS,
}

// SubdomainTypes are queried against every subdomain and full external domain.
var SubdomainTypes = []Type{TypeA, TypeAAAA, TypeCNAME}

// ParseType converts a case-insensitive mnemonic ("mx", "AAAA") to a Type.
func ParseType(s string) (Type, error) {
	t, ok := dns.StringToType[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperr.ErrUnknownRecordType, s)
	}
	return Type(t), nil
}

// String returns the mnemonic, e.g. "MX".
func (t Type) String() string {
	if s, ok := dns.TypeToString[uint16(t)]; ok {
		return s
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// HasDetail reports whether the main domain gets a second, full-output query
// for this type.
func (t Type) HasDetail() bool {
	return t == TypeSOA || t == TypeNS || t == TypeMX
}

// MarshalText encodes the type as its mnemonic so it can key JSON objects.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a mnemonic produced by MarshalText.
func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
