// Package namecheap implements registrar.Registrar over the namecheap.domains.check command
package namecheap

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	perr "seekdomains/internal/platform/errors"
	"seekdomains/internal/platform/logger"
)

const (
	ProductionURL = "https://api.namecheap.com/xml.response"
	SandboxURL    = "https://api.sandbox.namecheap.com/xml.response"

	commandCheck   = "namecheap.domains.check"
	defaultTimeout = 30 * time.Second
	maxBody        = 4 << 20
)

// Options configures the Client
type Options struct {
	APIUser  string
	APIKey   string
	ClientIP string
	Sandbox  bool
	Endpoint string // overrides Sandbox when set
	Timeout  time.Duration
}

// Client is a minimal namecheap API client
type Client struct {
	http     *http.Client
	opts     Options
	endpoint string
	log      logger.Logger
}

// New builds a Client with defaults applied
func New(o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	ep := o.Endpoint
	switch {
	case ep != "":
	case o.Sandbox:
		ep = SandboxURL
	default:
		ep = ProductionURL
	}
	return &Client{
		http:     &http.Client{Timeout: o.Timeout},
		opts:     o,
		endpoint: ep,
		log:      *logger.Named("namecheap"),
	}
}

// Name is the provider label used in logs and metrics
func (c *Client) Name() string { return "namecheap" }

// apiResponse mirrors the parts of the xml.response document we read
// element names are matched in the http://api.namecheap.com/xml.response namespace
type apiResponse struct {
	XMLName xml.Name `xml:"http://api.namecheap.com/xml.response ApiResponse"`
	Status  string   `xml:"Status,attr"`
	Errors  []struct {
		Number string `xml:"Number,attr"`
		Text   string `xml:",chardata"`
	} `xml:"http://api.namecheap.com/xml.response Errors>Error"`
	Results []checkResult `xml:"http://api.namecheap.com/xml.response CommandResponse>DomainCheckResult"`
}

type checkResult struct {
	Domain    string `xml:"Domain,attr"`
	Available string `xml:"Available,attr"`
}

// Available issues one bulk check for names and returns the ones reported available
func (c *Client) Available(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	form := url.Values{}
	form.Set("ApiUser", c.opts.APIUser)
	form.Set("ApiKey", c.opts.APIKey)
	form.Set("UserName", c.opts.APIUser)
	form.Set("Command", commandCheck)
	form.Set("ClientIp", c.opts.ClientIP)
	form.Set("DomainList", strings.Join(names, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeAvailability, "namecheap new request failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeAvailability, "namecheap request failed")
	}
	defer resp.Body.Close()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Int("names", len(names)).
		Dur("elapsed", time.Since(start)).
		Msg("namecheap domains.check")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return nil, perr.Availabilityf("namecheap responded %d", resp.StatusCode)
	}

	return Parse(io.LimitReader(resp.Body, maxBody))
}

// Parse decodes an xml.response body and returns domains whose Available attribute is exactly "true"
func Parse(r io.Reader) ([]string, error) {
	var doc apiResponse
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeAvailability, "namecheap response decode failed")
	}
	if strings.EqualFold(doc.Status, "ERROR") {
		msgs := make([]string, 0, len(doc.Errors))
		for _, e := range doc.Errors {
			msgs = append(msgs, fmt.Sprintf("%s %s", e.Number, strings.TrimSpace(e.Text)))
		}
		return nil, perr.Availabilityf("namecheap error: %s", strings.Join(msgs, "; "))
	}
	var out []string
	for _, res := range doc.Results {
		if res.Available == "true" {
			out = append(out, res.Domain)
		}
	}
	return out, nil
}
