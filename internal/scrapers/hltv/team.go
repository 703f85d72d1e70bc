package hltv

import (
	"hltvapi-backend/lib/htmlutil"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseTeam extracts a team out of a team page, ok is false if the page has no
// team name.
func ParseTeam(doc *goquery.Selection, origin *url.URL) (team Team, ok bool) {
	name, ok := htmlutil.Text(doc.Find("h1.profile-team-name").First())
	if !ok {
		return Team{}, false
	}

	return Team{
		Name:     name,
		Image:    teamLogo(doc, origin),
		Players:  teamPlayers(doc, origin),
		Ranking:  teamRanking(doc),
		Coach:    teamCoach(doc, origin),
		Trophies: teamTrophies(doc, origin),
	}, true
}

func teamLogo(doc *goquery.Selection, origin *url.URL) string {
	src, ok := htmlutil.Attr(doc.Find("img.teamlogo").First(), "src")
	if !ok {
		return Unknown
	}
	return htmlutil.AbsoluteUrl(origin, src)
}

// only the first roster container is read, the page repeats it for the
// mobile layout.
func teamPlayers(doc *goquery.Selection, origin *url.URL) []Player {
	players := []Player{}
	doc.Find("div.bodyshot-team").First().
		Find("a.col-custom").
		Each(func(_ int, container *goquery.Selection) {
			players = append(players, teamPlayer(container, origin))
		})
	return players
}

func teamPlayer(container *goquery.Selection, origin *url.URL) Player {
	nickname, ok := htmlutil.Text(
		container.Find("div.playerFlagName").First().Find("span.bold").First(),
	)
	if !ok {
		return unknownPlayer
	}
	flag, ok := htmlutil.Attr(container.Find("img.flag").First(), "src")
	if !ok {
		return unknownPlayer
	}
	bodyshot := container.Find("img.bodyshot-team-img").First()
	image, ok := htmlutil.Attr(bodyshot, "src")
	if !ok {
		return unknownPlayer
	}
	title, ok := htmlutil.Attr(bodyshot, "title")
	if !ok {
		return unknownPlayer
	}

	return Player{
		Nickname: nickname,
		Flag:     htmlutil.AbsoluteUrl(origin, flag),
		Image:    htmlutil.AbsoluteUrl(origin, image),
		Title:    title,
	}
}

func teamRanking(doc *goquery.Selection) Ranking {
	stats := doc.Find("div.profile-team-stat")
	return Ranking{
		ValveRanking: rankingAt(stats, 0),
		HltvRanking:  rankingAt(stats, 1),
	}
}

func rankingAt(stats *goquery.Selection, idx int) *string {
	if stats.Length() <= idx {
		return nil
	}
	text, ok := htmlutil.Text(stats.Eq(idx).Find("a[href]").First())
	if !ok {
		return nil
	}
	return &text
}

func teamCoach(doc *goquery.Selection, origin *url.URL) Coach {
	anchor := doc.Find("div.profile-team-stats-container").First().
		Find("a.a-reset").First()

	nickname, ok := htmlutil.Text(anchor.Find("span.bold.a-default").First())
	if !ok {
		return unknownCoach
	}
	flag, ok := htmlutil.Attr(anchor.Find("img.flag").First(), "src")
	if !ok {
		return unknownCoach
	}

	return Coach{
		Nickname: strings.TrimSpace(strings.Trim(nickname, `'"`)),
		Flag:     htmlutil.AbsoluteUrl(origin, flag),
	}
}

// trophies are read from the first trophy row only, later rows belong to
// other sections of the page.
func teamTrophies(doc *goquery.Selection, origin *url.URL) []Trophy {
	trophies := []Trophy{}
	doc.Find("div.trophyRow").First().
		Find("a.trophy").
		Each(func(_ int, anchor *goquery.Selection) {
			trophies = append(trophies, teamTrophy(anchor, origin))
		})
	return trophies
}

func teamTrophy(anchor *goquery.Selection, origin *url.URL) Trophy {
	href, ok := htmlutil.Attr(anchor, "href")
	if !ok {
		return unknownTrophy
	}
	title, _ := htmlutil.Attr(anchor.Find("span.trophyDescription").First(), "title")
	image, _ := htmlutil.Attr(anchor.Find("img.trophyIcon").First(), "src")
	if title == "" || image == "" {
		return unknownTrophy
	}

	return Trophy{
		Title: title,
		Image: htmlutil.AbsoluteUrl(origin, image),
		Url:   htmlutil.AbsoluteUrl(origin, href),
	}
}
