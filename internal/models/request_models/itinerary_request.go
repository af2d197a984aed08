package request_models

type BuildItineraryRequest struct {
	Query     string `json:"query" binding:"required"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}
