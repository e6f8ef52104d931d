package main

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/tecu23/piece-color/pkg/binding"
	"github.com/tecu23/piece-color/pkg/messages"
)

// handleColorCode handles GET /v1/colors/{discriminant}. An unknown
// discriminant is a normal answer with a null code, not an error.
func (app *application) handleColorCode(w http.ResponseWriter, r *http.Request) {
	res, err := binding.ParseLookup(r.PathValue("discriminant"))
	if err != nil {
		app.writeJSON(w, http.StatusBadRequest, messages.ErrorPayload{Message: err.Error()})
		return
	}

	app.writeJSON(w, http.StatusOK, res)
}

// handleListColors handles GET /v1/colors
func (app *application) handleListColors(w http.ResponseWriter, _ *http.Request) {
	app.writeJSON(w, http.StatusOK, binding.Table())
}

func (app *application) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.Logger.Error("Error writing JSON response", zap.Error(err))
	}
}
