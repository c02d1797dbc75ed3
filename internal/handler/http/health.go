// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// health answers 200 when every backing store responds and 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	w.Header().Set("Cache-Control", "no-store")

	resp := healthResponse{
		Status:  healthStatusOK,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}
	status := http.StatusOK

	if err := h.services.HealthService.CheckHealth(r.Context()); err != nil {
		log.Err(err).Msg("health check failed")
		resp.Status = healthStatusUnavailable
		status = http.StatusServiceUnavailable
	}

	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		log.Err(err).Msg("error writing health response")
	}
}
