package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createCounter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	counter, err := h.services.CounterService.Create(r.Context(), counterName(r))
	if err != nil {
		h.writeError(w, r, err, "*Handler.createCounter")
		return
	}

	if _, err = utils.WriteJSON(w, counter, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createCounter").Msg("error writing response")
	}
}

func (h *Handler) getCounter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	counter, err := h.services.CounterService.Get(r.Context(), counterName(r))
	if err != nil {
		h.writeError(w, r, err, "*Handler.getCounter")
		return
	}

	if _, err = utils.WriteJSON(w, counter, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getCounter").Msg("error writing response")
	}
}

func (h *Handler) incrementCounter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	counter, err := h.services.CounterService.Increment(r.Context(), counterName(r))
	if err != nil {
		h.writeError(w, r, err, "*Handler.incrementCounter")
		return
	}

	if _, err = utils.WriteJSON(w, counter, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.incrementCounter").Msg("error writing response")
	}
}

func (h *Handler) deleteCounter(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CounterService.Delete(r.Context(), counterName(r)); err != nil {
		h.writeError(w, r, err, "*Handler.deleteCounter")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// counterName returns the decoded {name} path segment. chi matches against
// URL.RawPath when it is set, so only then is the segment still encoded.
func counterName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return raw
	}
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
