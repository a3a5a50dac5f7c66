package board

import (
	"context"

	"github.com/TfGMEnterprise/departures-board/dlog"
	"github.com/TfGMEnterprise/departures-board/nationalrail"
	"github.com/pkg/errors"
)

const (
	NumRows    = 10
	TimeWindow = 119
	TimeOffset = 0
)

// DepartureQuery asks for services leaving Origin that call at Destination
type DepartureQuery struct {
	Origin      nationalrail.CRSType
	Destination nationalrail.CRSType
	NumRows     uint16
	TimeWindow  int32
	TimeOffset  int32
}

func NewDepartureQuery(origin nationalrail.CRSType, destination nationalrail.CRSType) DepartureQuery {
	return DepartureQuery{
		Origin:      origin,
		Destination: destination,
		NumRows:     NumRows,
		TimeWindow:  TimeWindow,
		TimeOffset:  TimeOffset,
	}
}

// Reverse swaps origin and destination
func (q DepartureQuery) Reverse() DepartureQuery {
	q.Origin, q.Destination = q.Destination, q.Origin
	return q
}

func (q DepartureQuery) request() *nationalrail.GetDepBoardWithDetailsRequest {
	origin := q.Origin
	destination := q.Destination
	filterType := nationalrail.FilterTypeTo

	return &nationalrail.GetDepBoardWithDetailsRequest{
		GetBoardRequestParams: nationalrail.GetBoardRequestParams{
			NumRows:    q.NumRows,
			Crs:        &origin,
			FilterCrs:  &destination,
			FilterType: &filterType,
			TimeOffset: q.TimeOffset,
			TimeWindow: q.TimeWindow,
		},
	}
}

// Querier fetches departure boards from OpenLDBWS
type Querier struct {
	Logger  *dlog.Logger
	Service nationalrail.LDBServiceSoap
}

// Query makes a single GetDepBoardWithDetails call. Failures are returned
// as-is with context; there is no retry.
func (q *Querier) Query(ctx context.Context, query DepartureQuery) (*Result, error) {
	q.Logger.Debugf("Query %s to %s", query.Origin, query.Destination)

	res, err := q.Service.GetDepBoardWithDetailsContext(ctx, query.request())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot get departure board for %s to %s", query.Origin, query.Destination)
	}

	if res == nil {
		return nil, errors.Errorf("empty response for %s to %s", query.Origin, query.Destination)
	}

	result, err := NewResult(res.GetStationBoardResult)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read departure board for %s to %s", query.Origin, query.Destination)
	}

	q.Logger.Debugf("received %d service(s) for %s to %s", len(result.Services), query.Origin, query.Destination)

	return result, nil
}
