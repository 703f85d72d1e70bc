package hltv

import (
	"context"
	"fmt"
	"hltvapi-backend/internal/components/telemetry"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHttpFetcher(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("user-agent")
		switch r.URL.Path {
		case "/team/4608/natus-vincere":
			fmt.Fprint(w, teamPage)
		case "/blocked":
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, "Just a moment...")
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	tel := telemetry.NewRecorder()
	fetcher := NewHttpFetcher(HttpFetcherOptions{UserAgent: "hltvapi-test"}, tel)

	doc, err := fetcher.Fetch(context.Background(), server.URL+"/team/4608/natus-vincere")
	require.NoError(t, err)
	require.Equal(t, "hltvapi-test", userAgent)

	team, ok := ParseTeam(doc.Selection, testOrigin)
	require.True(t, ok)
	require.Equal(t, "Natus Vincere", team.Name)
	require.True(t, tel.Has(telemetry.REPORT_DEBUG, "resty.response"))

	_, err = fetcher.Fetch(context.Background(), server.URL+"/blocked")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
	require.Nil(t, fetchErr.Err)
	require.True(t, tel.Has(telemetry.REPORT_BROKEN, report_fetcher_fetch))
}

func TestHttpFetcherTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	link := server.URL + "/team/1/a"
	server.Close()

	fetcher := NewHttpFetcher(HttpFetcherOptions{}, telemetry.NewRecorder())
	_, err := fetcher.Fetch(context.Background(), link)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, link, fetchErr.Url)
	require.Zero(t, fetchErr.StatusCode)
	require.Error(t, fetchErr.Unwrap())
}

func TestFetchErrorMessage(t *testing.T) {
	err := &FetchError{Url: "https://www.hltv.org/team/1/a", StatusCode: 503}
	require.Equal(t, "hltv: fetch https://www.hltv.org/team/1/a: unexpected status 503", err.Error())
}
