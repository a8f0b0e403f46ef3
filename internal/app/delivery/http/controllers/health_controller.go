package controllers

import (
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/responses"
	"arogyanetra-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	Version string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{Version: version}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseHealthy, responses.Health{
		Status:  constvars.ResponseSuccess,
		Version: ctrl.Version,
	})
}
