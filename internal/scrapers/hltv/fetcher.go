package hltv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hltvapi-backend/internal/components/assert"
	"hltvapi-backend/internal/components/telemetry"
	"net/http"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const (
	report_fetcher_fetch = "fetcher.fetch"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// ErrNotFound is returned when the element a record cannot exist without is
// missing from the page (ex. the team name on a team page).
var ErrNotFound = errors.New("hltv: record not found")

// FetchError is a transport level failure, either the request itself failed
// (Err is set) or the site responded with a non-2xx status.
type FetchError struct {
	Url        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hltv: fetch %s: %s", e.Url, e.Err.Error())
	}
	return fmt.Sprintf("hltv: fetch %s: unexpected status %d", e.Url, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher fetches and parses a page.
//
// note: fault injection point
type Fetcher interface {
	Fetch(ctx context.Context, link string) (*goquery.Document, error)
}

type HttpFetcherOptions struct {
	// defaults to DefaultUserAgent
	UserAgent string
	// defaults to 30 seconds
	Timeout time.Duration
	// the base transport that the cloudflare bypass wraps, defaults to resty's transport
	Transport http.RoundTripper
}

// HttpFetcher is the Fetcher used in production, the underlying client is
// reused across requests.
type HttpFetcher struct {
	http *resty.Client
	tel  telemetry.API
}

func NewHttpFetcher(opts HttpFetcherOptions, tel telemetry.API) HttpFetcher {
	assert.NotNil(tel, "tel")

	tel = telemetry.NewScopedAPI("hltv_fetcher", tel)

	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	if opts.Transport != nil {
		client.SetTransport(opts.Transport)
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, tel)

	return HttpFetcher{
		http: client,
		tel:  tel,
	}
}

func (f HttpFetcher) Fetch(ctx context.Context, link string) (*goquery.Document, error) {
	res, err := f.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		f.tel.ReportBroken(
			report_fetcher_fetch,
			fmt.Errorf("fetch: %w", err),
			link,
		)
		return nil, &FetchError{Url: link, Err: err}
	}
	if !res.IsSuccess() {
		f.tel.ReportBroken(
			report_fetcher_fetch,
			fmt.Errorf("fetch: unexpected status %s", res.Status()),
			link,
		)
		return nil, &FetchError{Url: link, StatusCode: res.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		f.tel.ReportBroken(
			report_fetcher_fetch,
			fmt.Errorf("parse: %w", err),
			link,
		)
		return nil, &FetchError{Url: link, StatusCode: res.StatusCode(), Err: fmt.Errorf("parse: %w", err)}
	}
	return doc, nil
}
