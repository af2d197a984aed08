package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/models/request_models"
	"dayplanner/internal/services"
	"dayplanner/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

func (i *ItineraryController) BuildItineraryHandler(c *gin.Context) {
	var req request_models.BuildItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "query is required")
		return
	}

	itinerary, err := i.itineraryService.Build(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary built successfully")
}
