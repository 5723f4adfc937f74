package wiki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *Client {
	c := NewClient()
	c.URL = srv.URL
	return c
}

func TestFetch_When_WellFormedEnvelope(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"parse":{"wikitext":{"*":"| gold_NOR = 5"}}}`))
	}))
	defer srv.Close()

	text, err := testClient(srv).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "| gold_NOR = 5", text)
	assert.Equal(t, "OlympicMedalTracker/1.0 (Linux; Fedora; personal project)", gotUA)
}

func TestFetch_When_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestFetch_When_MalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFetch_When_EnvelopeMissingKeys(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"no parse", `{}`},
		{"no wikitext", `{"parse":{}}`},
		{"no star key", `{"parse":{"wikitext":{}}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := testClient(srv).Fetch(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestFetch_When_ServerUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := testClient(srv).Fetch(context.Background())
	assert.Error(t, err)
}
