package hltv

import (
	"hltvapi-backend/lib/htmlutil"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseEvent extracts an event out of an event page, every missing field
// falls back to its default.
func ParseEvent(doc *goquery.Selection, origin *url.URL) Event {
	return Event{
		Title:             htmlutil.TextOr(doc.Find("h1.event-hub-title").First(), Unknown),
		Date:              eventDate(doc),
		PrizePool:         htmlutil.TextOr(doc.Find("td.prizepool.text-ellipsis").First(), Unknown),
		Teams:             htmlutil.TextOr(doc.Find("td.teamsNumber").First(), Unknown),
		Location:          eventLocation(doc, origin),
		PrizeDistribution: prizeDistribution(doc, origin),
	}
}

// eventDate joins the start and end date spans of the date cell.
func eventDate(doc *goquery.Selection) string {
	spans := doc.Find("td.eventdate").First().Find("span")
	if spans.Length() < 2 {
		return Unknown
	}
	start, _ := htmlutil.Text(spans.Eq(0))
	end, _ := htmlutil.Text(spans.Eq(1))
	return start + " " + end
}

func eventLocation(doc *goquery.Selection, origin *url.URL) Location {
	holder := doc.Find("div.flag-align").First()
	text, ok := htmlutil.Text(holder.Find("span.text-ellipsis").First())
	if !ok {
		return Location{
			Flag:     Unknown,
			Location: Unknown,
			Type:     EVENT_UNKNOWN,
		}
	}

	location := parseLocation(text)
	flag, ok := htmlutil.Attr(holder.Find("img.flag").First(), "src")
	if ok {
		location.Flag = htmlutil.AbsoluteUrl(origin, flag)
	}
	return location
}

var locationRegex = regexp.MustCompile(`^(.*) \((LAN|Online)\)$`)

// parseLocation splits "Katowice, Poland (LAN)" into its location and event
// type, text without a type suffix is kept whole with an unknown type.
func parseLocation(text string) Location {
	location := Location{
		Flag:     Unknown,
		Location: text,
		Type:     EVENT_UNKNOWN,
	}
	groups := locationRegex.FindStringSubmatch(text)
	if groups == nil {
		return location
	}
	location.Location = groups[1]
	location.Type = EventType(groups[2])
	return location
}

func prizeDistribution(doc *goquery.Selection, origin *url.URL) PrizeDistribution {
	var distribution PrizeDistribution
	doc.Find("div.placements-holder").First().
		Find("div.placement").
		Each(func(_ int, placement *goquery.Selection) {
			distribution.Add(placementLabel(placement), prizeEntry(placement, origin))
		})
	return distribution
}

// placementLabel is the text of the second div inside a placement, the
// first one holds the team.
func placementLabel(placement *goquery.Selection) string {
	divs := placement.Find("div")
	if divs.Length() < 2 {
		return Unknown
	}
	label, _ := htmlutil.Text(divs.Eq(1))
	return label
}

func prizeEntry(placement *goquery.Selection, origin *url.URL) PrizeEntry {
	entry := PrizeEntry{Prizes: []string{}}
	placement.Find("div.prize").Each(func(_ int, prize *goquery.Selection) {
		text := strings.TrimSpace(prize.Text())
		if text != "" {
			entry.Prizes = append(entry.Prizes, text)
		}
	})

	anchor := placement.Find("div.team").First().Find("a").First()
	name, ok := htmlutil.Text(anchor)
	if !ok {
		return entry
	}
	logo := Unknown
	src, ok := htmlutil.Attr(placement.Find("div.team-logo").First().Find("img").First(), "src")
	if ok {
		logo = htmlutil.AbsoluteUrl(origin, src)
	}
	entry.TeamName = &name
	entry.TeamLogo = &logo
	return entry
}
