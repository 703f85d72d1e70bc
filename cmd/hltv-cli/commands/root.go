package commands

import (
	"context"
	"fmt"
	"hltvapi-backend/internal/components/telemetry"
	"hltvapi-backend/internal/scrapers/hltv"
	"os"

	"github.com/spf13/cobra"
)

var (
	baseUrl    string
	userAgent  string
	verbose    bool
	printTable bool
)

var scraper hltv.Scraper

var rootCmd = &cobra.Command{
	Use:   "hltv-cli",
	Short: "hltv-cli scrapes hltv pages and prints the records the api would serve.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		tel := telemetry.SlogAPI{}
		fetcher := hltv.NewHttpFetcher(hltv.HttpFetcherOptions{UserAgent: userAgent}, tel)
		s, err := hltv.NewScraper(fetcher, baseUrl, tel)
		if err != nil {
			return err
		}
		scraper = s
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&baseUrl, "base-url", hltv.DefaultBaseUrl, "The site origin to scrape.")
	flags.StringVar(&userAgent, "user-agent", hltv.DefaultUserAgent, "The user agent sent with every request.")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging of every fetch.")
	flags.BoolVar(&printTable, "table", false, "Print the record as tables instead of json.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
