package main

import (
	"context"
	"log"
	"os"

	"github.com/TfGMEnterprise/departures-board/dlog"
	"github.com/TfGMEnterprise/departures-board/nationalrail"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	accessTokenEnv = "NRE_OPENLDBWS_ACCESS_TOKEN"
	urlEnv         = "NRE_OPENLDBWS_URL"

	defaultOrigin      = "SWT"
	defaultDestination = "MAN"
)

// Config is read once at startup and handed to the board
type Config struct {
	AccessToken string
	URL         string
	Origin      nationalrail.CRSType
	Destination nationalrail.CRSType
}

// LoadConfig reads the access token and endpoint through lookup and
// validates the station codes given on the command line.
func LoadConfig(lookup func(string) (string, bool), origin string, destination string) (*Config, error) {
	accessToken, exists := lookup(accessTokenEnv)
	if !exists || accessToken == "" {
		return nil, errors.Errorf("%s not set in environment", accessTokenEnv)
	}

	url, exists := lookup(urlEnv)
	if !exists || url == "" {
		url = nationalrail.DefaultURL
	}

	originCRS, err := nationalrail.ParseCRS(origin)
	if err != nil {
		return nil, errors.Wrap(err, "invalid origin")
	}

	destinationCRS, err := nationalrail.ParseCRS(destination)
	if err != nil {
		return nil, errors.Wrap(err, "invalid destination")
	}

	return &Config{
		AccessToken: accessToken,
		URL:         url,
		Origin:      originCRS,
		Destination: destinationCRS,
	}, nil
}

func main() {
	loggerOptions := []dlog.LoggerOption{
		dlog.LoggerSetOutput(os.Stderr),
		dlog.LoggerSetPrefix("departure-board: "),
		dlog.LoggerSetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile),
	}

	logger := dlog.NewLogger(loggerOptions...)

	logger.Debug("main")

	// Values already in the environment take precedence over the file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Fatalf("cannot load .env file: %v", err)
	}

	if err := newRootCommand(logger).ExecuteContext(context.Background()); err != nil {
		logger.Fatal(err)
	}
}

func newRootCommand(logger *dlog.Logger) *cobra.Command {
	var origin string
	var destination string

	cmd := &cobra.Command{
		Use:   "departure-board",
		Short: "Live two-way departure board between two stations",
		Long: "Shows trains from the origin to the destination and back, refreshed every\n" +
			"30 seconds at peak times (07:00-09:00, 16:00-19:00) and every 5 minutes otherwise.\n\n" +
			"Requires a National Rail OpenLDBWS token in " + accessTokenEnv + ".\n" +
			"The endpoint can be overridden with " + urlEnv + ".\n" +
			"Both may also be set in a .env file in the working directory.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(os.LookupEnv, origin, destination)
			if err != nil {
				logger.Fatal(err)
			}

			return NewDepartureBoard(logger, cfg, os.Stdout).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&origin, "origin", "o", defaultOrigin, "CRS code of the origin station")
	cmd.Flags().StringVarP(&destination, "destination", "d", defaultDestination, "CRS code of the destination station")

	return cmd
}
