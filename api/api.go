// Package api provides low-level primitives for implementing interfaces to
// HTTP APIs.
package api

import (
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/apex/log"

	"github.com/depscan/depscan-cli/errors"
)

var c = http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		DisableKeepAlives: true,
	},
}

var userAgent = "depscan-cli"

// SetUserAgent sets the User-Agent header sent with every request.
func SetUserAgent(ua string) {
	userAgent = ua
}

func isTimeout(err error) bool {
	switch e := err.(type) {
	case net.Error:
		return e.Timeout()
	case *url.Error:
		return e.Err == io.EOF
	}
	return false
}

// TimeoutError marks request timeouts so callers can distinguish them from
// other transport failures.
type TimeoutError error

// MakeAPIRequest runs and logs a request backed by an `http.Client`. The
// body is streamed, so callers may pass a file reader for large uploads.
func MakeAPIRequest(method string, endpoint *url.URL, apiKey string, body io.Reader) (res []byte, statusCode int, err error) {
	log.WithFields(log.Fields{
		"endpoint": endpoint.String(),
		"method":   method,
	}).Debug("making API request")

	req, err := http.NewRequest(method, endpoint.String(), body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not construct API HTTP request")
	}
	req.Close = true
	req.Header.Set("Authorization", "token "+apiKey)
	req.Header.Set("User-Agent", userAgent)

	response, err := c.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, 0, TimeoutError(errors.Wrap(err, "API request timed out"))
		}
		return nil, 0, errors.Wrap(err, "could not send API HTTP request")
	}
	defer response.Body.Close()

	res, err = io.ReadAll(response.Body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not read API HTTP response")
	}

	log.Debugf("got API response: status %d, %d bytes", response.StatusCode, len(res))
	return res, response.StatusCode, nil
}
