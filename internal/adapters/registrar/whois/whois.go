// Package whois implements registrar.Registrar with plain WHOIS lookups
// a lookup that fails or reads ambiguously counts as taken
package whois

import (
	"context"
	"strings"
	"time"

	"seekdomains/internal/platform/logger"

	lxwhois "github.com/likexian/whois"
)

const defaultTimeout = 10 * time.Second

// markers of a registered name, checked first
var takenMarkers = []string{
	"registrar:",
	"registrant:",
	"creation date:",
	"created:",
	"registry expiry date:",
	"expiration date:",
	"name server:",
	"nameserver:",
	"nserver:",
	"domain status:",
	"registrar iana id:",
	"this name is reserved",
}

// markers of an unregistered name
var freeMarkers = []string{
	"no match for",
	"not found",
	"no entries found",
	"no data found",
	"status: free",
	"status: available",
	"no object found",
	"object does not exist",
	"nothing found",
	"is available for registration",
	"domain is available",
	"no such domain",
	"domain name has not been registered",
	"no matching record",
}

// Options configures the Client
type Options struct {
	Timeout time.Duration
}

// Client checks names one WHOIS query at a time
type Client struct {
	lookup func(domain string) (string, error)
	log    logger.Logger
}

// New builds a Client backed by likexian/whois
func New(o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	wc := lxwhois.NewClient().SetTimeout(o.Timeout)
	return &Client{
		lookup: func(d string) (string, error) { return wc.Whois(d) },
		log:    *logger.Named("whois"),
	}
}

// Name is the provider label used in logs and metrics
func (c *Client) Name() string { return "whois" }

// Available looks up each name in order and returns the free ones
// only context cancellation fails the call
func (c *Client) Available(ctx context.Context, names []string) ([]string, error) {
	var out []string
	for _, n := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := c.lookup(n)
		if err != nil {
			c.log.Debug().Err(err).Str("domain", n).Msg("whois lookup failed; counted as taken")
			continue
		}
		if Classify(raw) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Classify reports whether a raw WHOIS answer says the name is free
func Classify(raw string) bool {
	s := strings.ToLower(raw)
	for _, m := range takenMarkers {
		if strings.Contains(s, m) {
			return false
		}
	}
	if (strings.Contains(s, "premium") || strings.Contains(s, "platinum")) &&
		(strings.Contains(s, "purchase") || strings.Contains(s, "offer") || strings.Contains(s, "reserved")) {
		return false
	}
	for _, m := range freeMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
