package hltv

import (
	"hltvapi-backend/lib/htmlutil"
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// MatchRef is a match row on a team's matches tab, hrefs are kept as they
// appear on the page so they can be correlated with the anchors of the
// match page.
type MatchRef struct {
	MatchHref string
	Team1Href string
	Team2Href string
}

// FindUpcomingMatch returns the first row of the matches box that links to a
// match page and has both team anchors.
func FindUpcomingMatch(doc *goquery.Selection) (ref MatchRef, ok bool) {
	doc.Find("div#matchesBox").First().
		Find("tr.team-row").
		EachWithBreak(func(_ int, row *goquery.Selection) bool {
			matchHref, hasMatch := htmlutil.Attr(row.Find("a.matchpage-button").First(), "href")
			team1Href, hasTeam1 := htmlutil.Attr(row.Find("a.team-name.team-1").First(), "href")
			team2Href, hasTeam2 := htmlutil.Attr(row.Find("a.team-name.team-2").First(), "href")
			if !hasMatch || !hasTeam1 || !hasTeam2 {
				return true
			}

			ref = MatchRef{
				MatchHref: matchHref,
				Team1Href: team1Href,
				Team2Href: team2Href,
			}
			ok = true
			return false
		})
	return ref, ok
}

// ParseMatchDetails extracts the details of a match page, each team slot is
// resolved by looking for the anchor whose href equals the given team href.
func ParseMatchDetails(doc *goquery.Selection, origin *url.URL, team1Href, team2Href string) Match {
	return Match{
		Date:        matchDate(doc),
		Time:        matchTime(doc),
		Team1:       matchTeam(doc, origin, team1Href),
		Team2:       matchTeam(doc, origin, team2Href),
		MatchFormat: matchFormat(doc),
	}
}

func matchDate(doc *goquery.Selection) string {
	return htmlutil.TextOr(doc.Find("div.date").First(), Unknown)
}

func matchTime(doc *goquery.Selection) string {
	return htmlutil.TextOr(doc.Find("div.time").First(), Unknown)
}

func matchTeam(doc *goquery.Selection, origin *url.URL, href string) TeamRef {
	team := TeamRef{Name: Unknown}
	if href == "" {
		return team
	}

	anchor := htmlutil.FindByAttr(doc, "a", "href", href)
	if anchor.Length() == 0 {
		return team
	}
	team.Name = htmlutil.TextOr(anchor.Find("div.teamName").First(), Unknown)
	logo, ok := htmlutil.Attr(anchor.Find("img.logo").First(), "src")
	if ok {
		logo = htmlutil.AbsoluteUrl(origin, logo)
		team.Logo = &logo
	}
	return team
}

var matchFormatRegex = regexp.MustCompile(`^.*?\((LAN|Online)\)`)

// matchFormat is the leading line of the rules block ("Best of 3 (LAN)"), the
// rest of the block is free text written by the organizer.
func matchFormat(doc *goquery.Selection) *string {
	text, ok := htmlutil.Text(doc.Find("div.padding.preformatted-text").First())
	if !ok {
		return nil
	}
	if prefix := matchFormatRegex.FindString(text); prefix != "" {
		return &prefix
	}
	return &text
}
