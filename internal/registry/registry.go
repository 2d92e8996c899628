// Package registry selects the npm registry for the install attempt by
// probing candidates for reachability. This picks the target of the single
// attempt; it is not a retry policy.
package registry

import (
	"io"
	"net/http"
	"time"
)

// DefaultRegistry is the public npm registry.
const DefaultRegistry = "https://registry.npmjs.org"

// ProbeTimeout bounds each reachability probe.
const ProbeTimeout = 2 * time.Second

// Selection is the resolved registry choice.
type Selection struct {
	URL string
}

// IsDefault reports whether the public registry was selected; only a
// non-default selection adds a --registry flag to the install command.
func (s Selection) IsDefault() bool { return s.URL == DefaultRegistry }

// Select probes candidates in order and returns the first reachable one.
// With no candidates, or none reachable, the default registry is kept and
// npm is left to surface its own error.
func Select(candidates []string, timeout time.Duration) Selection {
	for _, url := range candidates {
		if checkReachability(url, timeout) == nil {
			return Selection{URL: url}
		}
	}
	return Selection{URL: DefaultRegistry}
}

// checkReachability issues a single lightweight GET. Any HTTP response
// counts as reachable: even 4xx/5xx means DNS and TLS are fine.
func checkReachability(url string, timeout time.Duration) error {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DisableKeepAlives: true,
		},
	}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "forge-setup/1.0")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
	resp.Body.Close()
	return nil
}
