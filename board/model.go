package board

import (
	"strings"
	"time"

	"github.com/TfGMEnterprise/departures-board/nationalrail"
	"github.com/pkg/errors"
)

// CallingPoint is a stop made by a service after leaving the board location
type CallingPoint struct {
	Crs           nationalrail.CRSType
	ScheduledTime string
	EstimatedTime string
}

// ServiceEntry is one departure on a board. Platform and CancelReason are
// nil when the service does not report them; CallingPoints is nil when the
// response carries no subsequent calling points.
type ServiceEntry struct {
	ScheduledDeparture string
	EstimatedDeparture string
	DestinationName    string
	Platform           *string
	CancelReason       *string
	CallingPoints      []CallingPoint
}

// Result is a departure board for one direction of travel
type Result struct {
	OriginName      string
	DestinationName string
	GeneratedAt     time.Time
	Services        []ServiceEntry
}

// NewResult converts a station board from OpenLDBWS into a Result. A board
// without train services converts to a Result with no services.
func NewResult(stationBoard *nationalrail.StationBoardWithDetails) (*Result, error) {
	if stationBoard == nil {
		return nil, errors.New("station board is missing from response")
	}

	result := &Result{
		OriginName:      locationName(stationBoard.LocationName),
		DestinationName: locationName(stationBoard.FilterLocationName),
		GeneratedAt:     stationBoard.GeneratedAt,
	}

	if stationBoard.TrainServices == nil {
		return result, nil
	}

	for _, service := range stationBoard.TrainServices.Service {
		if service == nil {
			continue
		}

		entry := ServiceEntry{
			ScheduledDeparture: timeValue(service.Std),
			EstimatedDeparture: timeValue(service.Etd),
			DestinationName:    convertDestination(service.Destination),
			CancelReason:       service.CancelReason,
			CallingPoints:      convertCallingPoints(service.SubsequentCallingPoints),
		}

		if service.Platform != nil {
			platform := string(*service.Platform)
			entry.Platform = &platform
		}

		result.Services = append(result.Services, entry)
	}

	return result, nil
}

func convertDestination(locations *nationalrail.ArrayOfServiceLocations) string {
	if locations == nil {
		return ""
	}

	var destinations []string

	for _, location := range locations.Location {
		if location == nil || location.LocationName == nil {
			continue
		}

		destination := string(*location.LocationName)

		if location.Via != "" {
			destination += " " + location.Via
		}

		destinations = append(destinations, destination)
	}

	return strings.Join(destinations, " + ")
}

// Calling point lists after the first belong to services that split from
// this one; they are searched in order after the through service.
func convertCallingPoints(lists *nationalrail.ArrayOfArrayOfCallingPoints) []CallingPoint {
	if lists == nil {
		return nil
	}

	points := []CallingPoint{}

	for _, list := range lists.CallingPointList {
		if list == nil {
			continue
		}

		for _, cp := range list.CallingPoint {
			if cp == nil {
				continue
			}

			point := CallingPoint{
				ScheduledTime: timeValue(cp.St),
				EstimatedTime: timeValue(cp.Et),
			}

			if cp.Crs != nil {
				point.Crs = *cp.Crs
			}

			points = append(points, point)
		}
	}

	return points
}

func locationName(name *nationalrail.LocationNameType) string {
	if name == nil {
		return ""
	}
	return string(*name)
}

func timeValue(t *nationalrail.TimeType) string {
	if t == nil {
		return ""
	}
	return string(*t)
}
