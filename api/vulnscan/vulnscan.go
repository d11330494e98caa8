// Package vulnscan provides a high-level interface to the remote
// vulnerability scanning API.
package vulnscan

import (
	"net/url"

	"github.com/depscan/depscan-cli/errors"
)

var (
	serverURL *url.URL
	apiKey    string
)

// SetEndpoint sets the API server base URL.
func SetEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return errors.Wrapf(err, "could not parse endpoint %q", endpoint)
	}
	serverURL = u
	return nil
}

// SetAPIKey sets the API key used for authentication.
func SetAPIKey(key string) error {
	if key == "" {
		return &errors.Error{
			Type:            errors.User,
			Message:         "no API key provided",
			Troubleshooting: "Provide an API key by setting the $DEPSCAN_API_KEY environment variable or the `apikey` field in .depscan.yml.",
		}
	}
	apiKey = key
	return nil
}

func mustParse(endpoint string) (*url.URL, error) {
	if serverURL == nil {
		return nil, errors.New("API endpoint is not configured")
	}
	u, err := serverURL.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid API endpoint %q", endpoint)
	}
	return u, nil
}
