package commands

import (
	"context"
	"errors"
	"fmt"
	"hltvapi-backend/internal/scrapers/hltv"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		recordCommand(
			"team <id> <name>",
			"Scrape a team's roster, rankings, coach and trophies.",
			func(ctx context.Context, id int, name string) (hltv.Team, error) {
				return scraper.Team(ctx, id, name)
			},
			renderTeam,
		),
		recordCommand(
			"matches <team id> <team name>",
			"Scrape the next upcoming match of a team.",
			func(ctx context.Context, id int, name string) (hltv.UpcomingMatch, error) {
				return scraper.UpcomingMatch(ctx, id, name)
			},
			renderUpcomingMatch,
		),
		recordCommand(
			"event <id> <name>",
			"Scrape an event's details and prize distribution.",
			func(ctx context.Context, id int, name string) (hltv.Event, error) {
				return scraper.Event(ctx, id, name)
			},
			renderEvent,
		),
		recordCommand(
			"result <match id> <match name>",
			"Scrape the map scores of a played match.",
			func(ctx context.Context, id int, name string) (hltv.Result, error) {
				return scraper.Result(ctx, id, name)
			},
			renderResult,
		),
	)
}

// parseTarget reads the <id> <name> arguments every record command takes.
func parseTarget(args []string) (int, string, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 0 {
		return 0, "", fmt.Errorf("id must be a non-negative integer, got '%s'", args[0])
	}
	return id, args[1], nil
}

func recordCommand[T any](
	use, short string,
	scrape func(ctx context.Context, id int, name string) (T, error),
	render func(out io.Writer, record T),
) *cobra.Command {
	return &cobra.Command{
		Use:          use,
		Short:        short,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, name, err := parseTarget(args)
			if err != nil {
				return err
			}

			record, err := scrape(cmd.Context(), id, name)
			if errors.Is(err, hltv.ErrNotFound) {
				return fmt.Errorf("nothing found for %d/%s", id, name)
			}
			if err != nil {
				return err
			}

			if printTable {
				render(cmd.OutOrStdout(), record)
				return nil
			}
			return hltv.EncodeJSON(cmd.OutOrStdout(), record)
		},
	}
}
