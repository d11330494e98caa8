package api_test

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscan/depscan-cli/api"
)

func TestMakeAPIRequestSetsHeaders(t *testing.T) {
	api.SetUserAgent("depscan-cli/test")

	var gotAuth, gotUA string
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		gotBody, _ = ioutil.ReadAll(r.Body)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	endpoint, err := url.Parse(ts.URL)
	require.NoError(t, err)

	res, code, err := api.MakeAPIRequest(http.MethodPost, endpoint, "secret", bytes.NewReader([]byte("payload")))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, `{"ok":true}`, string(res))
	assert.Equal(t, "token secret", gotAuth)
	assert.Equal(t, "depscan-cli/test", gotUA)
	assert.Equal(t, "payload", string(gotBody))
}

func TestMakeAPIRequestSurfacesStatusCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("no such project"))
	}))
	defer ts.Close()

	endpoint, err := url.Parse(ts.URL)
	require.NoError(t, err)

	res, code, err := api.MakeAPIRequest(http.MethodGet, endpoint, "secret", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "no such project", string(res))
}
