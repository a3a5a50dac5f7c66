package board

import (
	"io"
	"strings"

	"github.com/TfGMEnterprise/departures-board/nationalrail"
	"github.com/fatih/color"
)

const (
	Separator      = "==============================================================================="
	NoTrainsNotice = "No trains"
)

var (
	cancelColour = color.New(color.FgRed)
	noticeColour = color.New(color.FgYellow)
)

// Render writes the board for result to w. Services calling at destination
// show their arrival estimate there.
func Render(w io.Writer, result *Result, destination nationalrail.CRSType) error {
	var b strings.Builder

	b.WriteString("Trains from " + result.OriginName + " to " + result.DestinationName + "\n")
	b.WriteString(Separator + "\n")

	if len(result.Services) == 0 {
		b.WriteString(noticeColour.Sprint(NoTrainsNotice) + "\n")
		b.WriteString(Separator + "\n")

		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, service := range result.Services {
		b.WriteString(FormatService(service, destination) + "\n")
	}

	b.WriteString(Separator + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatService renders one service. Optional fields that are absent or
// empty add nothing to the line.
func FormatService(service ServiceEntry, destination nationalrail.CRSType) string {
	line := service.ScheduledDeparture + " to " + service.DestinationName + " - " + service.EstimatedDeparture

	if service.Platform != nil && *service.Platform != "" {
		line += " - pl." + *service.Platform
	}

	if point, ok := findCallingPoint(service.CallingPoints, destination); ok {
		line += " - dest " + point.ScheduledTime + " ETA " + point.EstimatedTime
	}

	if service.CancelReason != nil && *service.CancelReason != "" {
		line += "\n  " + cancelColour.Sprint(*service.CancelReason)
	}

	return line
}

func findCallingPoint(points []CallingPoint, crs nationalrail.CRSType) (CallingPoint, bool) {
	if crs == "" {
		return CallingPoint{}, false
	}

	for _, point := range points {
		if point.Crs == crs {
			return point, true
		}
	}

	return CallingPoint{}, false
}
