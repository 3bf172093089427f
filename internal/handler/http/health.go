package http

import (
	"net/http"

	"github.com/MKhiriev/go-counters/internal/app"
	"github.com/MKhiriev/go-counters/internal/utils"
	"github.com/MKhiriev/go-counters/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgNotFound}, http.StatusNotFound)
}
