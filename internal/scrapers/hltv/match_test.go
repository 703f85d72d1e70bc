package hltv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFindUpcomingMatch(t *testing.T) {
	doc := parseHtml(t, teamMatchesPage)

	ref, ok := FindUpcomingMatch(doc.Selection)
	require.True(t, ok)
	require.Equal(t, MatchRef{
		MatchHref: "/matches/2376543/natus-vincere-vs-vitality-iem",
		Team1Href: "/team/4608/natus-vincere",
		Team2Href: "/team/9565/vitality",
	}, ref)
}

func TestFindUpcomingMatchNone(t *testing.T) {
	testCases := []struct {
		name   string
		markup string
	}{
		{
			name:   "no matches box",
			markup: `<table><tr class="team-row"><td><a class="matchpage-button" href="/m"></a><a class="team-name team-1" href="/a"></a><a class="team-name team-2" href="/b"></a></td></tr></table>`,
		},
		{
			name:   "empty matches box",
			markup: `<div id="matchesBox"></div>`,
		},
		{
			name:   "row without opponent",
			markup: `<div id="matchesBox"><table><tr class="team-row"><td><a class="matchpage-button" href="/m"></a><a class="team-name team-1" href="/a"></a></td></tr></table></div>`,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			doc := parseHtml(t, test.markup)
			_, ok := FindUpcomingMatch(doc.Selection)
			require.False(t, ok)
		})
	}
}

func TestParseMatchDetails(t *testing.T) {
	doc := parseHtml(t, matchPage)

	details := ParseMatchDetails(doc.Selection, testOrigin, "/team/4608/natus-vincere", "/team/9565/vitality")
	expected := Match{
		Date: "Oct 12",
		Time: "14:00",
		Team1: TeamRef{
			Name: "Natus Vincere",
			Logo: ptr("https://img-cdn.hltv.org/teamlogo/navi.svg"),
		},
		Team2: TeamRef{
			Name: "Vitality",
			Logo: ptr("https://www.hltv.org/img/static/team/logo/9565"),
		},
		MatchFormat: ptr("Best of 3 (LAN)"),
	}
	if diff := cmp.Diff(expected, details); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseMatchDetailsCorrelatesByHref(t *testing.T) {
	doc := parseHtml(t, matchPage)

	// swapped hrefs swap the slots, position on the page does not matter
	details := ParseMatchDetails(doc.Selection, testOrigin, "/team/9565/vitality", "/team/4608/natus-vincere")
	require.Equal(t, "Vitality", details.Team1.Name)
	require.Equal(t, "Natus Vincere", details.Team2.Name)

	details = ParseMatchDetails(doc.Selection, testOrigin, "/team/1/unknown", "")
	require.Equal(t, TeamRef{Name: Unknown}, details.Team1)
	require.Equal(t, TeamRef{Name: Unknown}, details.Team2)
}

func TestParseMatchDetailsDefaults(t *testing.T) {
	doc := parseHtml(t, `<html><body><a href="/team/1/a"></a></body></html>`)

	details := ParseMatchDetails(doc.Selection, testOrigin, "/team/1/a", "/team/2/b")
	expected := Match{
		Date:  Unknown,
		Time:  Unknown,
		Team1: TeamRef{Name: Unknown},
		Team2: TeamRef{Name: Unknown},
	}
	if diff := cmp.Diff(expected, details); diff != "" {
		t.Fatal(diff)
	}
}

func TestMatchFormat(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
	}{
		{text: "Best of 1 (Online)", expected: "Best of 1 (Online)"},
		{text: "Best of 3 (LAN) * Playoffs", expected: "Best of 3 (LAN)"},
		{text: "Best of 3 (LAN)\n* Grand final (LAN)", expected: "Best of 3 (LAN)"},
		{text: "Best of 5", expected: "Best of 5"},
		{text: "  * Showmatch  ", expected: "* Showmatch"},
	}

	for _, test := range testCases {
		doc := parseHtml(t, `<div class="padding preformatted-text">`+test.text+`</div>`)
		format := matchFormat(doc.Selection)
		require.NotNil(t, format, test.text)
		require.Equal(t, test.expected, *format, test.text)
	}

	doc := parseHtml(t, `<div class="preformatted-text">Best of 3 (LAN)</div>`)
	require.Nil(t, matchFormat(doc.Selection))
}
