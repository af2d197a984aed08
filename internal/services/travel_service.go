package services

import (
	"math"
	"time"

	"dayplanner/internal/models/response_models"
	"dayplanner/pkg/utils"
)

const (
	earthRadiusKm        = 6371.0
	assumedSpeedKmh      = 20.0
	minTravelMinutes     = 5
	maxTravelMinutes     = 120
	defaultTravelMinutes = 30
)

type TravelServiceInterface interface {
	EstimateMinutes(from, to *response_models.Coordinates) int
	BuildSegments(date time.Time, stops []response_models.ScheduledStop) []response_models.TravelSegment
}

type TravelService struct{}

func NewTravelService() TravelServiceInterface {
	return &TravelService{}
}

// EstimateMinutes converts the great-circle distance between two stops
// into minutes at an assumed city speed, clamped to [5, 120]. Missing
// coordinates cost a flat 30 minutes instead of failing the build.
func (s *TravelService) EstimateMinutes(from, to *response_models.Coordinates) int {
	if from == nil || to == nil {
		return defaultTravelMinutes
	}
	if anyNaN(from.Latitude, from.Longitude, to.Latitude, to.Longitude) {
		return defaultTravelMinutes
	}

	km := haversineKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	minutes := int(math.Round(km / assumedSpeedKmh * 60))
	if minutes < minTravelMinutes {
		return minTravelMinutes
	}
	if minutes > maxTravelMinutes {
		return maxTravelMinutes
	}
	return minutes
}

// BuildSegments derives one travel segment per consecutive pair of stops.
// Departure assumes the default stop duration at the current venue.
func (s *TravelService) BuildSegments(date time.Time, stops []response_models.ScheduledStop) []response_models.TravelSegment {
	if len(stops) < 2 {
		return nil
	}

	segments := make([]response_models.TravelSegment, 0, len(stops)-1)
	for i := 0; i < len(stops)-1; i++ {
		cur, next := stops[i], stops[i+1]
		minutes := s.EstimateMinutes(cur.Venue.Coordinates, next.Venue.Coordinates)
		seg := response_models.TravelSegment{
			From:            cur.Venue.Name,
			To:              next.Venue.Name,
			DurationMinutes: minutes,
		}
		if departAt, err := utils.CombineDateTime(date, cur.Time); err == nil {
			arrive := departAt.Add(DefaultStopDuration + time.Duration(minutes)*time.Minute)
			seg.ArrivalTime = arrive.Format("15:04")
		}
		segments = append(segments, seg)
	}
	return segments
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180

	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func anyNaN(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
