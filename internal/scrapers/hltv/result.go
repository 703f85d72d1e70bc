package hltv

import (
	"hltvapi-backend/lib/htmlutil"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// ParseResult extracts the result of a played match, ok is false if the page
// has neither of the team anchors.
func ParseResult(doc *goquery.Selection, origin *url.URL) (result Result, ok bool) {
	team1Href, hasTeam1 := resultTeamHref(doc, "a.team1")
	team2Href, hasTeam2 := resultTeamHref(doc, "a.team2")
	if !hasTeam1 && !hasTeam2 {
		return Result{}, false
	}

	return Result{
		Details: ParseMatchDetails(doc, origin, team1Href, team2Href),
		Maps:    mapScores(doc),
	}, true
}

func resultTeamHref(doc *goquery.Selection, selector string) (string, bool) {
	return htmlutil.Attr(doc.Find(selector).First(), "href")
}

func mapScores(doc *goquery.Selection) []MapScore {
	maps := []MapScore{}
	doc.Find("div.mapholder").Each(func(_ int, holder *goquery.Selection) {
		maps = append(maps, MapScore{
			Map:        htmlutil.TextOr(holder.Find("div.mapname").First(), Unknown),
			Team1Score: htmlutil.TextOr(holder.Find(".results-left").First().Find("div.results-team-score").First(), NoScore),
			Team2Score: htmlutil.TextOr(holder.Find(".results-right").First().Find("div.results-team-score").First(), NoScore),
		})
	})
	return maps
}
