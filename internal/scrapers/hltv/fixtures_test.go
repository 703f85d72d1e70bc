package hltv

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

var testOrigin, _ = url.Parse("https://www.hltv.org")

func parseHtml(t testing.TB, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func ptr[T any](value T) *T {
	return &value
}

// pageFetcher serves pages out of a map, urls it doesn't know return err
// or a 404 FetchError.
type pageFetcher struct {
	pages   map[string]string
	err     error
	fetched []string
}

func (f *pageFetcher) Fetch(ctx context.Context, link string) (*goquery.Document, error) {
	f.fetched = append(f.fetched, link)
	if f.err != nil {
		return nil, f.err
	}
	page, ok := f.pages[link]
	if !ok {
		return nil, &FetchError{Url: link, StatusCode: 404}
	}
	return goquery.NewDocumentFromReader(strings.NewReader(page))
}

const teamPage = `<html><body>
<div class="profile-team-container">
	<img class="teamlogo" src="/img/static/team/logo/4608" alt="Natus Vincere">
	<h1 class="profile-team-name text-ellipsis"> Natus Vincere </h1>
</div>
<div class="profile-team-stats-container">
	<div class="profile-team-stat"><b>Valve ranking</b><span class="right"><a href="/valve-ranking/teams">#2</a></span></div>
	<div class="profile-team-stat"><b>World ranking</b><span class="right"><a href="/ranking/teams">#3</a></span></div>
	<div class="profile-team-stat"><b>Coach</b>
		<a class="a-reset right" href="/coach/1/b1ad3">
			<img class="flag" src="/img/static/flags/30x20/UA.gif" alt="Ukraine">
			<span class="bold a-default">'B1ad3'</span>
		</a>
	</div>
</div>
<div class="bodyshot-team g-grid">
	<a class="col-custom" href="/player/1/aleksib">
		<img class="bodyshot-team-img" src="https://img-cdn.hltv.org/playerbodyshot/aleksib.png" title="Aleksi 'Aleksib' Virolainen">
		<div class="playerFlagName"><img class="flag" src="/img/static/flags/30x20/FI.gif"><span class="text-ellipsis bold">Aleksib</span></div>
	</a>
	<a class="col-custom" href="/player/2/b1t">
		<img class="bodyshot-team-img" src="/img/static/player/b1t.png" title="Valerii 'b1t' Vakhovskyi">
		<div class="playerFlagName"><img class="flag" src="/img/static/flags/30x20/UA.gif"><span class="text-ellipsis bold">b1t</span></div>
	</a>
	<a class="col-custom" href="/player/3/broken">
		<div class="playerFlagName"><img class="flag" src="/img/static/flags/30x20/UA.gif"><span class="text-ellipsis bold">nophoto</span></div>
	</a>
</div>
<div class="bodyshot-team g-grid mobile">
	<a class="col-custom" href="/player/1/aleksib">
		<img class="bodyshot-team-img" src="/img/static/player/aleksib.png" title="duplicate">
		<div class="playerFlagName"><img class="flag" src="/img/static/flags/30x20/FI.gif"><span class="bold">Aleksib</span></div>
	</a>
</div>
<div class="trophySection">
	<div class="trophyRow">
		<a class="trophy" href="/events/7148/pgl-major-copenhagen-2024">
			<img class="trophyIcon" src="/img/static/event/trophy/major.png">
			<span class="trophyDescription" title="PGL Major Copenhagen 2024"></span>
		</a>
		<a class="trophy" href="/events/1/no-icon">
			<span class="trophyDescription" title="No icon"></span>
		</a>
	</div>
	<div class="trophyRow">
		<a class="trophy" href="/events/2/other-section">
			<img class="trophyIcon" src="/img/static/event/trophy/other.png">
			<span class="trophyDescription" title="Other section"></span>
		</a>
	</div>
</div>
</body></html>`

const teamMatchesPage = `<html><body>
<div id="matchesBox">
	<table class="match-table">
		<tbody>
			<tr class="team-row">
				<td class="date-cell"><span>12/10</span></td>
				<td class="team-center-cell">
					<a class="team-name team-1" href="/team/4608/natus-vincere">Natus Vincere</a>
					<span class="score-cell">-:-</span>
				</td>
				<td class="matchpage-button-cell"></td>
			</tr>
			<tr class="team-row">
				<td class="date-cell"><span>12/10</span></td>
				<td class="team-center-cell">
					<a class="team-name team-1" href="/team/4608/natus-vincere">Natus Vincere</a>
					<a class="team-name team-2" href="/team/9565/vitality">Vitality</a>
				</td>
				<td class="matchpage-button-cell">
					<a class="matchpage-button" href="/matches/2376543/natus-vincere-vs-vitality-iem">Match</a>
				</td>
			</tr>
			<tr class="team-row">
				<td class="team-center-cell">
					<a class="team-name team-1" href="/team/4608/natus-vincere">Natus Vincere</a>
					<a class="team-name team-2" href="/team/6667/faze">FaZe</a>
				</td>
				<td class="matchpage-button-cell">
					<a class="matchpage-button" href="/matches/2376544/natus-vincere-vs-faze-iem">Match</a>
				</td>
			</tr>
		</tbody>
	</table>
</div>
</body></html>`

const matchPage = `<html><body>
<div class="teamsBox">
	<div class="team">
		<div class="team1-gradient">
			<a href="/team/4608/natus-vincere">
				<img class="logo" src="https://img-cdn.hltv.org/teamlogo/navi.svg" alt="Natus Vincere">
				<div class="teamName">Natus Vincere</div>
			</a>
		</div>
	</div>
	<div class="timeAndEvent">
		<div class="time" data-unix="1728741600000">14:00</div>
		<div class="date" data-unix="1728741600000">Oct 12</div>
		<div class="event text-ellipsis"><a href="/events/7437/iem">IEM</a></div>
	</div>
	<div class="team">
		<div class="team2-gradient">
			<a href="/team/9565/vitality">
				<img class="logo" src="/img/static/team/logo/9565" alt="Vitality">
				<div class="teamName">Vitality</div>
			</a>
		</div>
	</div>
</div>
<div class="standard-box veto-box">
	<div class="padding preformatted-text">Best of 3 (LAN)
* Group stage upper bracket semi-final</div>
</div>
</body></html>`

const eventPage = `<html><body>
<div class="event-hub-top">
	<h1 class="event-hub-title">IEM Katowice 2025</h1>
</div>
<table class="info">
	<tbody>
		<tr>
			<td class="eventdate"><span data-unix="1">Jan 29th</span><span>- <span data-unix="2">Feb 9th 2025</span></span></td>
			<td class="teamsNumber">24</td>
			<td class="prizepool text-ellipsis">$1,000,000</td>
			<td class="location">
				<div class="flag-align">
					<img class="flag" src="/img/static/flags/30x20/PL.gif" alt="Poland">
					<span class="text-ellipsis">Katowice, Poland (LAN)</span>
				</div>
			</td>
		</tr>
	</tbody>
</table>
<div class="placements-holder">
	<div class="placement">
		<div class="team"><a href="/team/9565/vitality">Vitality</a></div>
		<div>1st</div>
		<div class="team-logo"><img src="/img/static/team/logo/9565"></div>
		<div class="prize">$400,000</div>
		<div class="prize"> </div>
		<div class="prize">BLAST Premier spot</div>
	</div>
	<div class="placement">
		<div class="team"><a href="/team/4494/mouz">MOUZ</a></div>
		<div>2nd</div>
		<div class="team-logo"><img src="https://img-cdn.hltv.org/teamlogo/mouz.svg"></div>
		<div class="prize">$170,000</div>
	</div>
	<div class="placement">
		<div class="team"><a href="/team/6667/faze">FaZe</a></div>
		<div>3-4th</div>
		<div class="prize">$80,000</div>
	</div>
	<div class="placement">
		<div class="team"></div>
		<div>3-4th</div>
		<div class="prize">$80,000</div>
	</div>
</div>
</body></html>`

const resultPage = `<html><body>
<div class="teamsBox">
	<div class="team">
		<div class="team1-gradient">
			<a class="team1" href="/team/4608/natus-vincere">
				<img class="logo" src="/img/static/team/logo/4608" alt="Natus Vincere">
				<div class="teamName">Natus Vincere</div>
			</a>
		</div>
	</div>
	<div class="timeAndEvent">
		<div class="time">17:30</div>
		<div class="date">24th of March 2024</div>
	</div>
	<div class="team">
		<div class="team2-gradient">
			<a class="team2" href="/team/4869/ence">
				<img class="logo" src="/img/static/team/logo/4869" alt="ENCE">
				<div class="teamName">ENCE</div>
			</a>
		</div>
	</div>
</div>
<div class="padding preformatted-text">Best of 3 (Online)</div>
<div class="mapholder">
	<div class="mapname">Nuke</div>
	<div class="results">
		<div class="results-left won"><div class="results-team-score">13</div></div>
		<span class="results-right lost"><div class="results-team-score">7</div></span>
	</div>
</div>
<div class="mapholder">
	<div class="mapname">Mirage</div>
	<div class="results">
		<div class="results-left"><div class="results-team-score">16</div></div>
	</div>
</div>
<div class="mapholder">
	<div class="mapname">Inferno</div>
</div>
</body></html>`
