package hltv

import (
	"bytes"
	"encoding/json"
	"io"
)

// Unknown is the sentinel for a value that could not be extracted.
const Unknown = "Unknown"

// NoScore is the sentinel for a map score that could not be extracted.
const NoScore = "-"

type Team struct {
	Name     string   `json:"name"`
	Image    string   `json:"image"`
	Players  []Player `json:"players"`
	Ranking  Ranking  `json:"ranking"`
	Coach    Coach    `json:"coach"`
	Trophies []Trophy `json:"trophies"`
}

// Player is either fully populated or entirely Unknown, see unknownPlayer.
type Player struct {
	Nickname string `json:"nickname"`
	Flag     string `json:"flag"`
	Image    string `json:"image"`
	Title    string `json:"title"`
}

var unknownPlayer = Player{
	Nickname: Unknown,
	Flag:     Unknown,
	Image:    Unknown,
	Title:    Unknown,
}

type Ranking struct {
	ValveRanking *string `json:"valve_ranking"`
	HltvRanking  *string `json:"hltv_ranking"`
}

type Coach struct {
	Nickname string `json:"nickname"`
	Flag     string `json:"flag"`
}

var unknownCoach = Coach{
	Nickname: Unknown,
	Flag:     Unknown,
}

type Trophy struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Url   string `json:"url"`
}

var unknownTrophy = Trophy{
	Title: Unknown,
	Image: Unknown,
	Url:   Unknown,
}

type TeamRef struct {
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

type Match struct {
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Team1       TeamRef `json:"team1"`
	Team2       TeamRef `json:"team2"`
	MatchFormat *string `json:"match_format"`
}

// UpcomingMatch is the next match listed on a team's page along with the
// details scraped from the match page.
type UpcomingMatch struct {
	MatchUrl string `json:"match_url"`
	Details  Match  `json:"details"`
}

type EventType string

const (
	EVENT_LAN     EventType = "LAN"
	EVENT_ONLINE  EventType = "Online"
	EVENT_UNKNOWN EventType = Unknown
)

type Location struct {
	Flag     string    `json:"flag"`
	Location string    `json:"location"`
	Type     EventType `json:"type"`
}

type Event struct {
	Title             string            `json:"title"`
	Date              string            `json:"date"`
	PrizePool         string            `json:"prize_pool"`
	Teams             string            `json:"teams"`
	Location          Location          `json:"location"`
	PrizeDistribution PrizeDistribution `json:"prize_distribution"`
}

// PrizeEntry is one placement slot, TeamName and TeamLogo are nil when the slot
// has no team anchor (ex. a placement that hasn't been decided yet).
type PrizeEntry struct {
	TeamName *string  `json:"team_name,omitempty"`
	TeamLogo *string  `json:"team_logo,omitempty"`
	Prizes   []string `json:"prizes"`
}

// PrizeDistribution groups prize entries by their placement label ("1st", "3-4th", ...),
// a label can hold several entries. It marshals into a json object whose keys keep
// the order in which labels were first added.
type PrizeDistribution struct {
	labels  []string
	entries map[string][]PrizeEntry
}

func (d *PrizeDistribution) Add(label string, entry PrizeEntry) {
	if d.entries == nil {
		d.entries = map[string][]PrizeEntry{}
	}
	if _, exists := d.entries[label]; !exists {
		d.labels = append(d.labels, label)
	}
	d.entries[label] = append(d.entries[label], entry)
}

// Labels returns the placement labels in the order they first appeared.
func (d PrizeDistribution) Labels() []string {
	return d.labels
}

func (d PrizeDistribution) Entries(label string) []PrizeEntry {
	return d.entries[label]
}

func (d PrizeDistribution) Len() int {
	return len(d.labels)
}

func (d PrizeDistribution) MarshalJSON() ([]byte, error) {
	var buff bytes.Buffer
	buff.WriteByte('{')
	for i, label := range d.labels {
		if i > 0 {
			buff.WriteByte(',')
		}
		key, err := marshalUnescaped(label)
		if err != nil {
			return nil, err
		}
		value, err := marshalUnescaped(d.entries[label])
		if err != nil {
			return nil, err
		}
		buff.Write(key)
		buff.WriteByte(':')
		buff.Write(value)
	}
	buff.WriteByte('}')
	return buff.Bytes(), nil
}

// EncodeJSON writes a record the way it is served, indented by four spaces
// with non-ascii and html characters left as they are.
func EncodeJSON(w io.Writer, record any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(record)
}

// marshalUnescaped marshals v without escaping <, > and &, the encoder that
// receives MarshalJSON output keeps escapes that are already present.
func marshalUnescaped(v any) ([]byte, error) {
	var buff bytes.Buffer
	enc := json.NewEncoder(&buff)
	enc.SetEscapeHTML(false)
	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(buff.Bytes(), "\n"), nil
}

type MapScore struct {
	Map        string `json:"map"`
	Team1Score string `json:"team1_score"`
	Team2Score string `json:"team2_score"`
}

type Result struct {
	Details Match      `json:"details"`
	Maps    []MapScore `json:"maps"`
}
