package handler

import (
	"context"
	"net/http"
	"time"
)

const version = "1.0.0"

// healthResponse documents the body of GET /v1/healthcheck.
type healthResponse struct {
	Status     string            `json:"status"`
	SystemInfo map[string]string `json:"system_info"`
	API        map[string]string `json:"api"`
}

// Healthcheck godoc
// @Summary Show service health
// @Description This endpoint reports the service status together with the books API's. An unreachable API does not make this service unavailable
// @Tags health
// @Produce json
// @Success 200 {object} handler.healthResponse
// @Failure 500
// @Router /v1/healthcheck [get]
func (h *Handler) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	api := map[string]string{}
	health, err := h.service.APIHealth(ctx)
	if err != nil {
		api["status"] = "unavailable"
		api["error"] = err.Error()
	} else {
		api["status"] = health.Status
		api["message"] = health.Message
	}
	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": h.config.Server.Env,
			"version":     version,
		},
		"api": api,
	}
	err = h.encodeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
