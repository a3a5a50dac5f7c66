package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/TfGMEnterprise/departures-board/board"
	"github.com/TfGMEnterprise/departures-board/dlog"
	"github.com/TfGMEnterprise/departures-board/nationalrail"
	"github.com/TfGMEnterprise/departures-board/schedule"
	"github.com/pkg/errors"
)

// Moves the cursor home and clears the screen on ANSI terminals
const clearScreen = "\033[H\033[2J"

const generatedAtFormat = "2006-01-02 15:04:05"

// DepartureBoard renders both directions of a station pair on each cycle
type DepartureBoard struct {
	Logger  *dlog.Logger
	Querier *board.Querier
	Query   board.DepartureQuery
	Out     io.Writer
	Now     func() time.Time
	Sleep   func(time.Duration)
}

func NewDepartureBoard(logger *dlog.Logger, cfg *Config, out io.Writer) *DepartureBoard {
	client := nationalrail.NewClient(cfg.URL, cfg.AccessToken)

	return &DepartureBoard{
		Logger: logger,
		Querier: &board.Querier{
			Logger:  logger,
			Service: nationalrail.NewLDBServiceSoap(client),
		},
		Query: board.NewDepartureQuery(cfg.Origin, cfg.Destination),
		Out:   out,
		Now:   time.Now,
		Sleep: time.Sleep,
	}
}

// Run repeats Cycle until an error occurs or ctx is cancelled
func (d *DepartureBoard) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		wait, err := d.Cycle(ctx)
		if err != nil {
			return err
		}

		d.Sleep(wait)
	}
}

// Cycle clears the display, renders the outbound and return boards and the
// footer, then returns how long to wait before the next cycle.
func (d *DepartureBoard) Cycle(ctx context.Context) (time.Duration, error) {
	d.Logger.Debug("Cycle")

	if _, err := io.WriteString(d.Out, clearScreen); err != nil {
		return 0, errors.Wrap(err, "cannot clear display")
	}

	if _, err := d.show(ctx, d.Query); err != nil {
		return 0, err
	}

	inbound, err := d.show(ctx, d.Query.Reverse())
	if err != nil {
		return 0, err
	}

	refresh := schedule.NextRefresh(d.Now())

	d.Logger.Debugf("next update in %s", refresh.Interval)

	if _, err := fmt.Fprintf(d.Out, "Last updated: %s - Next update in %s\n", inbound.GeneratedAt.Format(generatedAtFormat), refresh.Label); err != nil {
		return 0, errors.Wrap(err, "cannot write footer")
	}

	return refresh.Interval, nil
}

func (d *DepartureBoard) show(ctx context.Context, query board.DepartureQuery) (*board.Result, error) {
	result, err := d.Querier.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := board.Render(d.Out, result, query.Destination); err != nil {
		return nil, errors.Wrapf(err, "cannot render board for %s to %s", query.Origin, query.Destination)
	}

	return result, nil
}
