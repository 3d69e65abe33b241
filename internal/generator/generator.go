// Package generator produces realistic-sounding random domain names for
// testing and demos.
package generator

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"golang.org/x/net/idna"

	"github.com/tbckr/dnsdumper/internal/apperr"
)

// ErrUnknownCategory is returned by Word for a category without a word table.
var ErrUnknownCategory = errors.New("unknown word category")

// Options controls the shape of generated domains.
type Options struct {
	// International draws names from Language's word table.
	International bool
	// Language selects the international word table. Defaults to "german".
	Language string
	// Punycode converts internationalized names to their ASCII form.
	Punycode bool
}

// Generator draws names from the built-in tables. It is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator reading randomness from src. A nil src seeds a
// fresh PCG source.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// Word returns a random entry of category.
func (g *Generator) Word(category Category) (string, error) {
	list, ok := words[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if len(list) == 0 {
		return "", fmt.Errorf("empty word list for category %q", category)
	}
	return list[g.rng.IntN(len(list))], nil
}

func (g *Generator) pick(category Category) string {
	w, _ := g.Word(category) // built-in categories always resolve
	return strings.NewReplacer("-", "", " ", "").Replace(w)
}

// BusinessName combines nouns, adjectives and suffixes into a lowercase name
// such as "smartsystems" or "datacloudlabs".
func (g *Generator) BusinessName() string {
	var parts []string
	switch g.rng.IntN(6) {
	case 0:
		parts = []string{g.pick(CategoryNouns), g.pick(CategorySuffixes)}
	case 1:
		parts = []string{g.pick(CategoryAdjectives), g.pick(CategoryNouns)}
	case 2:
		parts = []string{g.pick(CategoryAdjectives), g.pick(CategoryNouns), g.pick(CategorySuffixes)}
	case 3:
		parts = []string{g.pick(CategoryNouns), g.pick(CategoryNouns)}
	case 4:
		parts = []string{g.pick(CategoryNouns)}
	default:
		parts = []string{g.pick(CategoryAdjectives), g.pick(CategorySuffixes)}
	}
	return strings.ToLower(strings.Join(parts, ""))
}

// InternationalName returns a business name built from a non-ASCII word table.
// Only "german" is supported.
func (g *Generator) InternationalName(language string) (string, error) {
	lang, ok := languages[strings.ToLower(language)]
	if !ok {
		return "", fmt.Errorf("%w: unsupported language %q", apperr.ErrInvalidInput, language)
	}
	suffix := lang.suffixes[g.rng.IntN(len(lang.suffixes))]
	return strings.ToLower(g.pick(lang.category) + suffix), nil
}

// TLD returns a public suffix, including its leading dot, weighted by
// popularity.
func (g *Generator) TLD() string {
	n := g.rng.IntN(totalWeight)
	for _, t := range tlds {
		if n < t.weight {
			return t.tld
		}
		n -= t.weight
	}
	return tlds[0].tld
}

// Domain returns one random domain name.
func (g *Generator) Domain(opts Options) (string, error) {
	name := g.BusinessName()
	if opts.International {
		language := opts.Language
		if language == "" {
			language = "german"
		}
		var err error
		if name, err = g.InternationalName(language); err != nil {
			return "", err
		}
	}
	domain := name + g.TLD()
	if opts.Punycode {
		ascii, err := idna.Lookup.ToASCII(domain)
		if err != nil {
			return "", fmt.Errorf("converting %q to punycode: %w", domain, err)
		}
		domain = ascii
	}
	return domain, nil
}

// Generate returns count random domains. count must be positive.
func (g *Generator) Generate(count int, opts Options) (Domains, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: domain count must be a positive integer, got %d", apperr.ErrInvalidInput, count)
	}
	domains := make(Domains, 0, count)
	for range count {
		d, err := g.Domain(opts)
		if err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, nil
}

// Domains is a generated list, renderable through output.Write.
type Domains []string

// WriteText writes one domain per line.
func (d Domains) WriteText(w io.Writer) error {
	return d.WritePlain(w)
}

// WritePlain writes one domain per line.
func (d Domains) WritePlain(w io.Writer) error {
	for _, domain := range d {
		if _, err := fmt.Fprintln(w, domain); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes a "Domain" header and one domain per row.
func (d Domains) WriteCSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Domain"); err != nil {
		return err
	}
	return d.WritePlain(w)
}
