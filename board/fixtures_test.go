package board

import (
	"time"

	"github.com/TfGMEnterprise/departures-board/nationalrail"
)

func createLocationNameType(locationNameStr string) *nationalrail.LocationNameType {
	locationName := nationalrail.LocationNameType(locationNameStr)

	return &locationName
}

func createCRSType(crsStr string) *nationalrail.CRSType {
	crs := nationalrail.CRSType(crsStr)

	return &crs
}

func createTimeType(timeStr string) *nationalrail.TimeType {
	timeType := nationalrail.TimeType(timeStr)

	return &timeType
}

func createPlatformType(platformStr string) *nationalrail.PlatformType {
	platform := nationalrail.PlatformType(platformStr)

	return &platform
}

func createString(s string) *string {
	return &s
}

var (
	generatedAt = time.Date(2024, 3, 4, 8, 15, 42, 0, time.UTC)

	hobbitonToBreeBoard = &nationalrail.StationBoardWithDetails{
		BaseStationBoard: nationalrail.BaseStationBoard{
			GeneratedAt:        generatedAt,
			LocationName:       createLocationNameType("Hobbiton"),
			Crs:                createCRSType("HOB"),
			FilterLocationName: createLocationNameType("Bree"),
			Filtercrs:          createCRSType("BRE"),
			PlatformAvailable:  true,
		},
		TrainServices: &nationalrail.ArrayOfServiceItemsWithCallingPoints{
			Service: []*nationalrail.ServiceItemWithCallingPoints{
				{
					ServiceItem: nationalrail.ServiceItem{
						Std:      createTimeType("08:21"),
						Etd:      createTimeType("On time"),
						Platform: createPlatformType("1"),
						Destination: &nationalrail.ArrayOfServiceLocations{
							Location: []*nationalrail.ServiceLocation{
								{
									LocationName: createLocationNameType("Mordor"),
									Crs:          createCRSType("MDR"),
									Via:          "via Bree",
								},
							},
						},
					},
					SubsequentCallingPoints: &nationalrail.ArrayOfArrayOfCallingPoints{
						CallingPointList: []*nationalrail.ArrayOfCallingPoints{
							{
								CallingPoint: []*nationalrail.CallingPoint{
									{
										LocationName: createLocationNameType("Bywater"),
										Crs:          createCRSType("BYW"),
										St:           createTimeType("08:25"),
										Et:           createTimeType("On time"),
									},
									{
										LocationName: createLocationNameType("Bree"),
										Crs:          createCRSType("BRE"),
										St:           createTimeType("08:40"),
										Et:           createTimeType("08:43"),
									},
								},
							},
						},
					},
				},
				{
					ServiceItem: nationalrail.ServiceItem{
						Std:          createTimeType("08:51"),
						Etd:          createTimeType("Cancelled"),
						IsCancelled:  true,
						CancelReason: createString("This train has been cancelled because of a dragon on the line"),
						Destination: &nationalrail.ArrayOfServiceLocations{
							Location: []*nationalrail.ServiceLocation{
								{
									LocationName: createLocationNameType("Angmar"),
									Crs:          createCRSType("ANG"),
								},
								{
									LocationName: createLocationNameType("Isengard"),
									Crs:          createCRSType("ISN"),
								},
							},
						},
					},
				},
			},
		},
	}
)
