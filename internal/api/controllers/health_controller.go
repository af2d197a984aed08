package controllers

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/gazetteer"
	"dayplanner/pkg/utils"
)

type HealthController struct {
	cfg *gazetteer.CityConfig
}

func NewHealthController(cfg *gazetteer.CityConfig) *HealthController {
	return &HealthController{cfg: cfg}
}

func (h *HealthController) HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "ok", "city": h.cfg.Name}, "Service healthy")
}
