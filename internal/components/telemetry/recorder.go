package telemetry

import (
	"strings"
	"sync"
)

type ReportKind int

const (
	REPORT_BROKEN ReportKind = iota
	REPORT_WARNING
	REPORT_DEBUG
	REPORT_COUNT
)

type Report struct {
	Kind   ReportKind
	Id     string
	Params []any
}

// Recorder implements API by keeping every report in memory, it is used by tests
// to assert that components report what they should.
type Recorder struct {
	lock    sync.Mutex
	reports []Report
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(kind ReportKind, id string, params []any) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reports = append(r.reports, Report{Kind: kind, Id: id, Params: params})
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.record(REPORT_BROKEN, id, params)
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.record(REPORT_WARNING, id, params)
}

func (r *Recorder) ReportDebug(msg string, params ...any) {
	r.record(REPORT_DEBUG, msg, params)
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.record(REPORT_COUNT, id, []any{count})
}

// Reports returns all the reports of a given kind in the order they were made.
func (r *Recorder) Reports(kind ReportKind) []Report {
	r.lock.Lock()
	defer r.lock.Unlock()

	var out []Report
	for _, report := range r.reports {
		if report.Kind == kind {
			out = append(out, report)
		}
	}
	return out
}

// Has returns true if a report of the given kind has an id ending with suffix,
// scoped ids are prefixed so only the suffix is compared.
func (r *Recorder) Has(kind ReportKind, suffix string) bool {
	for _, report := range r.Reports(kind) {
		if strings.HasSuffix(report.Id, suffix) {
			return true
		}
	}
	return false
}
