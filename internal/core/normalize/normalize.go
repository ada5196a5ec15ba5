// Package normalize turns raw model output into registrable ASCII domain names
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Strip control and format chars (ZWJ ZWNJ FEFF etc)
// 3 NFKC, case folding, width fold fullwidth to ASCII
// 4 Trim whitespace, scheme, path and the root dot
// 5 IDNA lookup mapping to ASCII (punycode for anything left non-ASCII)
// 6 DNS shape checks: at least two labels, label <= 63, name <= 253
//
// Accents and other combining marks are kept: münchen.de and munchen.de are different names.
package normalize

import (
	"errors"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/net/idna"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Errors returned by Domain
var (
	ErrEmpty     = errors.New("empty domain")
	ErrNoSuffix  = errors.New("domain has no suffix")
	ErrTooLong   = errors.New("domain too long")
	ErrBadLabel  = errors.New("invalid domain label")
	ErrSeparator = errors.New("domain contains whitespace or path")
)

const (
	maxLabel  = 63
	maxDomain = 253
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			runes.Remove(runes.In(unicode.Cc)), // strip controls
			runes.Remove(runes.In(unicode.Cf)), // strip format chars
			norm.NFKC,
			cases.Fold(),
			width.Fold,
		)
	},
}

var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.StrictDomainName(true),
	idna.ValidateLabels(true),
	idna.VerifyDNSLength(true),
)

// Fold applies steps 1-3 without any DNS checks
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return ""
	}
	return out
}

// Domain normalizes s into its ASCII registrable form or reports why it cannot be one
func Domain(s string) (string, error) {
	s = strings.TrimSpace(Fold(s))
	s = trimDecorations(s)
	if s == "" {
		return "", ErrEmpty
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 || strings.ContainsAny(s, "/?#@:") {
		return "", ErrSeparator
	}

	ascii, err := profile.ToASCII(s)
	if err != nil {
		return "", errors.Join(ErrBadLabel, err)
	}
	if len(ascii) > maxDomain {
		return "", ErrTooLong
	}

	labels := strings.Split(ascii, ".")
	if len(labels) < 2 {
		return "", ErrNoSuffix
	}
	for _, l := range labels {
		if l == "" || len(l) > maxLabel {
			return "", ErrBadLabel
		}
	}
	return ascii, nil
}

// Domains normalizes names in order, drops the invalid ones and collapses exact duplicates
func Domains(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		d, err := Domain(raw)
		if err != nil {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// TLD returns the suffix after the last dot, or "" when there is none
func TLD(domain string) string {
	i := strings.LastIndexByte(domain, '.')
	if i < 0 {
		return ""
	}
	return domain[i+1:]
}

// LocalPart returns the portion before the first dot
func LocalPart(domain string) string {
	if i := strings.IndexByte(domain, '.'); i >= 0 {
		return domain[:i]
	}
	return domain
}

// Suffix normalizes a tld filter or accepted-tld entry: case folded, no leading or trailing dots
func Suffix(s string) string {
	return strings.Trim(strings.TrimSpace(Fold(s)), ".")
}

// trimDecorations drops a url scheme, a leading www-less path tail and the DNS root dot
func trimDecorations(s string) string {
	for _, p := range []string{"https://", "http://"} {
		if strings.HasPrefix(s, p) {
			s = strings.TrimPrefix(s, p)
			if i := strings.IndexByte(s, '/'); i >= 0 {
				s = s[:i]
			}
			break
		}
	}
	return strings.TrimSuffix(s, ".")
}
