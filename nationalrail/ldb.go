package nationalrail

import (
	"context"
	"encoding/xml"
	"time"

	"github.com/hooklift/gowsdl/soap"
)

const (
	// DefaultURL is the OpenLDBWS endpoint matching the 2017-10-01 schema
	DefaultURL = "https://lite.realtime.nationalrail.co.uk/OpenLDBWS/ldb11.asmx"

	getDepBoardWithDetailsAction = "http://thalesgroup.com/RTTI/2015-05-14/ldb/GetDepBoardWithDetails"
)

// AccessToken is sent as a SOAP header on every request
type AccessToken struct {
	XMLName xml.Name `xml:"http://thalesgroup.com/RTTI/2013-11-28/Token/types AccessToken"`

	TokenValue string `xml:"TokenValue"`
}

// CRS code used to represent a Station location
type CRSType string

// The display name of a Station location
type LocationNameType string

// The display name of a Train Operating Company
type TOCName string

// A Platform number
type PlatformType string

// Represents an individual service in a departure board
type ServiceIDType string

// Represents a time displayed in a departure board. This will often be a
// true time in the format HH:MM (possibly with appended characters, such
// as "*"), but may also be a string, such as "No report" or "Cancelled"
type TimeType string

// Type used to specify which type of service filter to use
type FilterType string

const (
	FilterTypeTo FilterType = "to"

	FilterTypeFrom FilterType = "from"
)

// GetBoardRequestParams are shared by the station board requests. The
// enclosing element name is supplied by the request type for each action.
type GetBoardRequestParams struct {
	// The maximum number of services that are required to be returned.
	NumRows uint16 `xml:"numRows,omitempty"`

	// The CRS code for the station departure board that is required.
	Crs *CRSType `xml:"crs,omitempty"`

	// An optional CRS code that will filter the returned departure board.
	FilterCrs *CRSType `xml:"filterCrs,omitempty"`

	// Either "from" or "to". Ignored unless FilterCrs is also present.
	FilterType *FilterType `xml:"filterType,omitempty"`

	// A time offset that may be applied to the current time to give the base
	// time for the departure board.
	TimeOffset int32 `xml:"timeOffset"`

	// The number of minutes added to the request start time to give the end
	// time. Values over 120 are treated as 120 by the server.
	TimeWindow int32 `xml:"timeWindow,omitempty"`
}

type GetDepBoardWithDetailsRequest struct {
	XMLName xml.Name `xml:"http://thalesgroup.com/RTTI/2017-10-01/ldb/ GetDepBoardWithDetailsRequest"`

	GetBoardRequestParams
}

type StationBoardWithDetailsResponseType struct {
	XMLName xml.Name `xml:"http://thalesgroup.com/RTTI/2017-10-01/ldb/ GetDepBoardWithDetailsResponse"`

	GetStationBoardResult *StationBoardWithDetails `xml:"GetStationBoardResult,omitempty"`
}

type BaseStationBoard struct {
	GeneratedAt time.Time `xml:"generatedAt,omitempty" json:"generatedAt,omitempty"`

	LocationName *LocationNameType `xml:"locationName,omitempty" json:"locationName,omitempty"`

	Crs *CRSType `xml:"crs,omitempty" json:"crs,omitempty"`

	FilterLocationName *LocationNameType `xml:"filterLocationName,omitempty" json:"filterLocationName,omitempty"`

	Filtercrs *CRSType `xml:"filtercrs,omitempty" json:"filtercrs,omitempty"`

	FilterType *FilterType `xml:"filterType,omitempty" json:"filterType,omitempty"`

	PlatformAvailable bool `xml:"platformAvailable,omitempty" json:"platformAvailable,omitempty"`

	AreServicesAvailable bool `xml:"areServicesAvailable,omitempty" json:"areServicesAvailable,omitempty"`
}

type StationBoardWithDetails struct {
	BaseStationBoard

	TrainServices *ArrayOfServiceItemsWithCallingPoints `xml:"trainServices,omitempty" json:"trainServices,omitempty"`
}

type ServiceItem struct {
	Std *TimeType `xml:"std,omitempty" json:"std,omitempty"`

	Etd *TimeType `xml:"etd,omitempty" json:"etd,omitempty"`

	Platform *PlatformType `xml:"platform,omitempty" json:"platform,omitempty"`

	Operator *TOCName `xml:"operator,omitempty" json:"operator,omitempty"`

	IsCancelled bool `xml:"isCancelled,omitempty" json:"isCancelled,omitempty"`

	// A cancellation reason for this service. Absent when not cancelled.
	CancelReason *string `xml:"cancelReason,omitempty" json:"cancelReason,omitempty"`

	DelayReason *string `xml:"delayReason,omitempty" json:"delayReason,omitempty"`

	ServiceID *ServiceIDType `xml:"serviceID,omitempty" json:"serviceID,omitempty"`

	Origin *ArrayOfServiceLocations `xml:"origin,omitempty" json:"origin,omitempty"`

	Destination *ArrayOfServiceLocations `xml:"destination,omitempty" json:"destination,omitempty"`
}

type ServiceItemWithCallingPoints struct {
	ServiceItem

	// Lists of calling points after the board location. The first list is
	// the through service; further lists are associated (split) services.
	SubsequentCallingPoints *ArrayOfArrayOfCallingPoints `xml:"subsequentCallingPoints,omitempty" json:"subsequentCallingPoints,omitempty"`
}

type ServiceLocation struct {
	LocationName *LocationNameType `xml:"locationName,omitempty" json:"locationName,omitempty"`

	Crs *CRSType `xml:"crs,omitempty" json:"crs,omitempty"`

	Via string `xml:"via,omitempty" json:"via,omitempty"`
}

type CallingPoint struct {
	LocationName *LocationNameType `xml:"locationName,omitempty" json:"locationName,omitempty"`

	Crs *CRSType `xml:"crs,omitempty" json:"crs,omitempty"`

	St *TimeType `xml:"st,omitempty" json:"st,omitempty"`

	Et *TimeType `xml:"et,omitempty" json:"et,omitempty"`

	At *TimeType `xml:"at,omitempty" json:"at,omitempty"`

	IsCancelled bool `xml:"isCancelled,omitempty" json:"isCancelled,omitempty"`
}

type ArrayOfServiceItemsWithCallingPoints struct {
	Service []*ServiceItemWithCallingPoints `xml:"service,omitempty" json:"service,omitempty"`
}

type ArrayOfServiceLocations struct {
	Location []*ServiceLocation `xml:"location,omitempty" json:"location,omitempty"`
}

type ArrayOfCallingPoints struct {
	CallingPoint []*CallingPoint `xml:"callingPoint,omitempty" json:"callingPoint,omitempty"`
}

type ArrayOfArrayOfCallingPoints struct {
	CallingPointList []*ArrayOfCallingPoints `xml:"callingPointList,omitempty" json:"callingPointList,omitempty"`
}

// LDBServiceSoap is the subset of the OpenLDBWS interface used by the board
type LDBServiceSoap interface {
	GetDepBoardWithDetails(request *GetDepBoardWithDetailsRequest) (*StationBoardWithDetailsResponseType, error)
	GetDepBoardWithDetailsContext(ctx context.Context, request *GetDepBoardWithDetailsRequest) (*StationBoardWithDetailsResponseType, error)
}

type lDBServiceSoap struct {
	client *soap.Client
}

func NewLDBServiceSoap(client *soap.Client) LDBServiceSoap {
	return &lDBServiceSoap{
		client: client,
	}
}

// NewClient returns a SOAP client for url that authenticates every call
// with accessToken.
func NewClient(url string, accessToken string, opts ...soap.Option) *soap.Client {
	client := soap.NewClient(url, opts...)
	client.AddHeader(AccessToken{
		TokenValue: accessToken,
	})

	return client
}

func (service *lDBServiceSoap) GetDepBoardWithDetailsContext(ctx context.Context, request *GetDepBoardWithDetailsRequest) (*StationBoardWithDetailsResponseType, error) {
	response := new(StationBoardWithDetailsResponseType)
	err := service.client.CallContext(ctx, getDepBoardWithDetailsAction, request, response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (service *lDBServiceSoap) GetDepBoardWithDetails(request *GetDepBoardWithDetailsRequest) (*StationBoardWithDetailsResponseType, error) {
	return service.GetDepBoardWithDetailsContext(
		context.Background(),
		request,
	)
}
