// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-counters/internal/app"
	"github.com/MKhiriev/go-counters/internal/utils"
	"github.com/MKhiriev/go-counters/models"
	"github.com/go-chi/chi/v5"
)

// probedMethods are checked, in this order, when building the Allow header.
var probedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi calls it when the request path matches a registered route but the
// method does not. The handler responds with HTTP 405 and a JSON error body,
// and lists the methods that the path does accept in the Allow header.
//
// Allowed methods are discovered by asking router to match the raw request
// path ([http.Request.URL.Path]) for each method in probedMethods, so
// parameterised patterns such as "/counters/{name}" are expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	allowed := make([]string, 0, len(probedMethods))
	for _, method := range probedMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
