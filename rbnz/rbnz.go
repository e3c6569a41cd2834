// Package rbnz resolves NZD cross rates from the Reserve Bank of New
// Zealand statistics portal. It implements fif.RateResolver, so a
// calculation can fill its FX store from the feed instead of prompting.
package rbnz

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/sjoerdsma/fif"
)

// DefaultBaseURL is the exchange-rate observations endpoint.
const DefaultBaseURL = "https://api.rbnz.govt.nz/statistics/exchange-rates"

// Resolver fetches observation-date rates over HTTP.
type Resolver struct {
	client *http.Client
	base   string
}

// New returns a resolver backed by a daily-expiring disk cache, so repeated
// runs within a day do not hammer the portal.
func New() *Resolver {
	return &Resolver{client: daily(), base: DefaultBaseURL}
}

// NewWithBase returns a resolver against a custom endpoint. Used in tests.
func NewWithBase(client *http.Client, base string) *Resolver {
	return &Resolver{client: client, base: base}
}

// ResolveRate implements fif.RateResolver. The portal quotes rates as
// foreign currency units per 1 NZD, which is the convention the FX store
// expects.
func (r *Resolver) ResolveRate(currency string, on fif.Date) (string, error) {
	addr := fmt.Sprintf("%s?currency=%s&date=%s", r.base,
		url.QueryEscape(currency), url.QueryEscape(on.String()))

	var jobj any
	if err := jwget(r.client, addr, &jobj); err != nil {
		return "", fmt.Errorf("error retrieving %s rate for %s: %w", currency, on, err)
	}

	path := "$.observations[-1:].value"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %s rate for %s: %q %w", currency, on, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return "", fmt.Errorf("no %s observation published for %s", currency, on)
		}
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case string:
		return v, nil
	case float64:
		// sometimes, this weird API returns the value as a number
		return fmt.Sprintf("%v", v), nil
	default:
		return "", fmt.Errorf("error parsing %s rate for %s: %q not a string or float (%v)", currency, on, path, jval)
	}
}
