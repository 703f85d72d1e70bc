package service

import (
	"context"
	"errors"
	"fmt"
	"hltvapi-backend/internal/components/assert"
	"hltvapi-backend/internal/components/telemetry"
	"hltvapi-backend/internal/scrapers/hltv"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	report_service_team    = "service.team"
	report_service_matches = "service.matches"
	report_service_event   = "service.event"
	report_service_result  = "service.result"
	report_service_write   = "service.write"
)

const Banner = "HLTV Web Scraping API"

// Service serves hltv records as json.
type Service struct {
	scraper hltv.Scraper
	tel     telemetry.API
}

func NewService(scraper hltv.Scraper, tel telemetry.API) Service {
	assert.NotNil(tel, "tel")
	return Service{
		scraper: scraper,
		tel:     telemetry.NewScopedAPI("service", tel),
	}
}

type route struct {
	pattern string
	handler http.HandlerFunc
}

// Handler returns the router of the service wrapped with otel instrumentation,
// ids that aren't numeric don't match any route.
func (s Service) Handler() http.Handler {
	routes := []route{
		{"/", s.banner},
		{"/healthz", s.healthz},
		{"/team/{id:[0-9]+}/{name}", recordHandler(s, report_service_team, "Team not found", s.scraper.Team)},
		{"/matches/{id:[0-9]+}/{name}", recordHandler(s, report_service_matches, "No upcoming match found", s.scraper.UpcomingMatch)},
		{"/events/{id:[0-9]+}/{name}", recordHandler(s, report_service_event, "Event not found", s.scraper.Event)},
		{"/result/{id:[0-9]+}/{name}", recordHandler(s, report_service_result, "Result not found", s.scraper.Result)},
	}

	router := mux.NewRouter()
	for _, r := range routes {
		router.Handle(r.pattern, otelhttp.WithRouteTag(r.pattern, r.handler)).
			Methods(http.MethodGet)
	}
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return otelhttp.NewHandler(router, "hltvapi")
}

func (s Service) banner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("content-type", "text/plain; charset=utf-8")
	fmt.Fprint(w, Banner)
}

func (s Service) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("content-type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "ok")
}

// recordHandler serves the record returned by scrape, ErrNotFound becomes a 404
// with notFoundMsg and every other error a 500.
func recordHandler[T any](s Service, reportId, notFoundMsg string, scrape func(ctx context.Context, id int, name string) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id, err := strconv.Atoi(vars["id"])
		if err != nil {
			writeError(w, http.StatusNotFound, notFoundMsg)
			return
		}

		record, err := scrape(r.Context(), id, vars["name"])
		if errors.Is(err, hltv.ErrNotFound) {
			writeError(w, http.StatusNotFound, notFoundMsg)
			return
		}
		if err != nil {
			s.tel.ReportBroken(reportId, err, id, vars["name"])
			writeError(w, http.StatusInternalServerError, "Failed to scrape hltv")
			return
		}

		err = writeJSON(w, http.StatusOK, record)
		if err != nil {
			s.tel.ReportWarning(report_service_write, err)
		}
	}
}
