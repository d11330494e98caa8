package vulnscan

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"

	"github.com/apex/log"

	"github.com/depscan/depscan-cli/api"
	"github.com/depscan/depscan-cli/errors"
)

// ScanAPI accepts a unit's archive and responds with its findings.
const ScanAPI = "/api/components/scan"

type scanResponse struct {
	Findings []Finding `json:"findings"`
}

// Scan uploads the archive at path and returns the backend's findings.
//
// Any transport failure or non-2xx response is returned as an error; the
// pipeline runner isolates these to the unit being scanned.
func Scan(path, name string) ([]Finding, error) {
	endpoint, err := mustParse(ScanAPI + "?name=" + url.QueryEscape(name))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open archive %q", path)
	}
	defer f.Close()

	log.WithField("unit", name).Debug("uploading unit for scanning")
	res, code, err := api.MakeAPIRequest(http.MethodPost, endpoint, apiKey, f)
	if err != nil {
		return nil, errors.Wrap(err, "could not upload unit for scanning")
	}
	if code < 200 || code > 299 {
		return nil, errors.Errorf("scan upload failed: status %d: %s", code, string(res))
	}

	var parsed scanResponse
	if err := json.Unmarshal(res, &parsed); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal scan response")
	}
	return parsed.Findings, nil
}
