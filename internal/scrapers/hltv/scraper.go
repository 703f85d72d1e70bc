package hltv

import (
	"context"
	"fmt"
	"hltvapi-backend/internal/components/assert"
	"hltvapi-backend/internal/components/telemetry"
	"hltvapi-backend/lib/htmlutil"
	"net/url"
	"strings"
)

const (
	report_scraper_team           = "scraper.team"
	report_scraper_upcoming_match = "scraper.upcoming-match"
	report_scraper_event          = "scraper.event"
	report_scraper_result         = "scraper.result"
)

const DefaultBaseUrl = "https://www.hltv.org"

// Scraper assembles records out of hltv pages. It holds no state between calls,
// every record is built from the pages fetched during that call.
type Scraper struct {
	fetcher Fetcher
	origin  *url.URL
	tel     telemetry.API
}

func NewScraper(fetcher Fetcher, baseUrl string, tel telemetry.API) (Scraper, error) {
	assert.NotNil(fetcher, "fetcher")
	assert.NotNil(tel, "tel")

	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	origin, err := url.Parse(strings.TrimRight(baseUrl, "/"))
	if err != nil {
		return Scraper{}, fmt.Errorf("parse base url: %w", err)
	}
	if !origin.IsAbs() || origin.Host == "" {
		return Scraper{}, fmt.Errorf("base url '%s' must be absolute", baseUrl)
	}

	return Scraper{
		fetcher: fetcher,
		origin:  origin,
		tel:     telemetry.NewScopedAPI("hltv_scraper", tel),
	}, nil
}

func (s Scraper) pageUrl(entity string, id int, name string) string {
	return fmt.Sprintf("%s/%s/%d/%s", s.origin.String(), entity, id, url.PathEscape(name))
}

func (s Scraper) TeamUrl(id int, name string) string {
	return s.pageUrl("team", id, name)
}

func (s Scraper) TeamMatchesUrl(id int, name string) string {
	return s.TeamUrl(id, name) + "#tab-matchesBox"
}

func (s Scraper) EventUrl(id int, name string) string {
	return s.pageUrl("events", id, name)
}

func (s Scraper) MatchUrl(id int, name string) string {
	return s.pageUrl("matches", id, name)
}

// Team scrapes the team page, ErrNotFound is returned if the page has no team name.
func (s Scraper) Team(ctx context.Context, id int, name string) (Team, error) {
	link := s.TeamUrl(id, name)
	doc, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		return Team{}, fmt.Errorf("team %d: %w", id, err)
	}

	team, ok := ParseTeam(doc.Selection, s.origin)
	if !ok {
		s.tel.ReportWarning(report_scraper_team, "could not find team name", link)
		return Team{}, ErrNotFound
	}
	s.tel.ReportDebug("scraped team", link, len(team.Players), len(team.Trophies))
	return team, nil
}

// UpcomingMatch finds the first upcoming match on the team page and scrapes the
// details of that match from the match page.
func (s Scraper) UpcomingMatch(ctx context.Context, teamId int, teamName string) (UpcomingMatch, error) {
	link := s.TeamMatchesUrl(teamId, teamName)
	doc, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		return UpcomingMatch{}, fmt.Errorf("team matches %d: %w", teamId, err)
	}

	ref, ok := FindUpcomingMatch(doc.Selection)
	if !ok {
		s.tel.ReportDebug("no upcoming match", link)
		return UpcomingMatch{}, ErrNotFound
	}

	matchUrl := htmlutil.AbsoluteUrl(s.origin, ref.MatchHref)
	matchDoc, err := s.fetcher.Fetch(ctx, matchUrl)
	if err != nil {
		s.tel.ReportWarning(report_scraper_upcoming_match, err, matchUrl)
		return UpcomingMatch{}, fmt.Errorf("match page: %w", err)
	}

	return UpcomingMatch{
		MatchUrl: matchUrl,
		Details:  ParseMatchDetails(matchDoc.Selection, s.origin, ref.Team1Href, ref.Team2Href),
	}, nil
}

// Event scrapes the event page, it never returns ErrNotFound as every field
// of an event has a default.
func (s Scraper) Event(ctx context.Context, id int, name string) (Event, error) {
	link := s.EventUrl(id, name)
	doc, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		return Event{}, fmt.Errorf("event %d: %w", id, err)
	}

	event := ParseEvent(doc.Selection, s.origin)
	if event.Title == Unknown {
		s.tel.ReportWarning(report_scraper_event, "could not find event title", link)
	}
	return event, nil
}

// Result scrapes the result of a played match, ErrNotFound is returned if the
// page has neither of the team anchors.
func (s Scraper) Result(ctx context.Context, id int, name string) (Result, error) {
	link := s.MatchUrl(id, name)
	doc, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		return Result{}, fmt.Errorf("result %d: %w", id, err)
	}

	result, ok := ParseResult(doc.Selection, s.origin)
	if !ok {
		s.tel.ReportWarning(report_scraper_result, "could not find team anchors", link)
		return Result{}, ErrNotFound
	}
	return result, nil
}
