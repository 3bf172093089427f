package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-counters/internal/app"
	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/internal/service"
	"github.com/MKhiriev/go-counters/internal/store"
	"github.com/MKhiriev/go-counters/internal/utils"
	"github.com/MKhiriev/go-counters/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCounterName: http.StatusBadRequest,

	store.ErrCounterAlreadyExists: http.StatusConflict,
	store.ErrCounterNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

// statusMessages holds the public error text per status. Internal error
// details never leave the server.
var statusMessages = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidCounterName,
	http.StatusNotFound:            app.MsgCounterNotFound,
	http.StatusConflict:            app.MsgCounterAlreadyExists,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status and writes {"error": "..."}.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("unexpected error")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.ErrorResponse{Error: statusMessages[status]}, status); wErr != nil {
		log.Err(wErr).Str("func", fn).Msg("error writing error response")
	}
}
