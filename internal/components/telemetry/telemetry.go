package telemetry

import (
	"fmt"
)

// API is what the scraper and the service report through, SlogAPI logs the
// reports and Recorder keeps them for tests.
//
// ids name the component that reported ("fetcher.fetch"), details go in params.
type API interface {
	ReportBroken(id string, params ...any)
	ReportWarning(id string, params ...any)
	// ReportDebug is dropped unless verbose logging is enabled.
	ReportDebug(msg string, params ...any)
	// ReportCount records a point-in-time count, not an increment.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with "<namespace>: ".
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(fmt.Sprintf("%s: %s", s.namespace, msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(fmt.Sprintf("%s: %s", s.namespace, id), count)
}
