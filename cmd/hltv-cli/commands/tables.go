package commands

import (
	"hltvapi-backend/internal/scrapers/hltv"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func orNull(value *string) string {
	if value == nil {
		return "null"
	}
	return *value
}

func renderTeam(out io.Writer, team hltv.Team) {
	t := newTable(out)
	t.SetTitle(team.Name)
	t.AppendRow(table.Row{"Image", team.Image})
	t.AppendRow(table.Row{"Valve ranking", orNull(team.Ranking.ValveRanking)})
	t.AppendRow(table.Row{"HLTV ranking", orNull(team.Ranking.HltvRanking)})
	t.AppendRow(table.Row{"Coach", team.Coach.Nickname})
	t.Render()

	players := newTable(out)
	players.SetTitle("Players")
	players.AppendHeader(table.Row{"Nickname", "Title", "Flag"})
	for _, p := range team.Players {
		players.AppendRow(table.Row{p.Nickname, p.Title, p.Flag})
	}
	players.Render()

	trophies := newTable(out)
	trophies.SetTitle("Trophies")
	trophies.AppendHeader(table.Row{"Title", "Url"})
	for _, trophy := range team.Trophies {
		trophies.AppendRow(table.Row{trophy.Title, trophy.Url})
	}
	trophies.Render()
}

func renderMatch(t table.Writer, match hltv.Match) {
	t.AppendRow(table.Row{"Date", match.Date})
	t.AppendRow(table.Row{"Time", match.Time})
	t.AppendRow(table.Row{"Team 1", match.Team1.Name})
	t.AppendRow(table.Row{"Team 2", match.Team2.Name})
	t.AppendRow(table.Row{"Format", orNull(match.MatchFormat)})
}

func renderUpcomingMatch(out io.Writer, match hltv.UpcomingMatch) {
	t := newTable(out)
	t.SetTitle(match.MatchUrl)
	renderMatch(t, match.Details)
	t.Render()
}

func renderEvent(out io.Writer, event hltv.Event) {
	t := newTable(out)
	t.SetTitle(event.Title)
	t.AppendRow(table.Row{"Date", event.Date})
	t.AppendRow(table.Row{"Prize pool", event.PrizePool})
	t.AppendRow(table.Row{"Teams", event.Teams})
	t.AppendRow(table.Row{"Location", event.Location.Location})
	t.AppendRow(table.Row{"Type", event.Location.Type})
	t.Render()

	prizes := newTable(out)
	prizes.SetTitle("Prize distribution")
	prizes.AppendHeader(table.Row{"Placement", "Team", "Prizes"})
	for _, label := range event.PrizeDistribution.Labels() {
		for _, entry := range event.PrizeDistribution.Entries(label) {
			prizes.AppendRow(table.Row{label, orNull(entry.TeamName), strings.Join(entry.Prizes, ", ")})
		}
	}
	prizes.Render()
}

func renderResult(out io.Writer, result hltv.Result) {
	t := newTable(out)
	renderMatch(t, result.Details)
	t.Render()

	maps := newTable(out)
	maps.SetTitle("Maps")
	maps.AppendHeader(table.Row{"Map", result.Details.Team1.Name, result.Details.Team2.Name})
	for _, m := range result.Maps {
		maps.AppendRow(table.Row{m.Map, m.Team1Score, m.Team2Score})
	}
	maps.Render()
}
