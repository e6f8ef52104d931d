package main

import (
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", app.handleHealth)
	mux.HandleFunc("GET /v1/colors", app.handleListColors)
	mux.HandleFunc("GET /v1/colors/{discriminant}", app.handleColorCode)
	mux.HandleFunc("/ws", app.authenticate(app.handleWebSocket))

	return mux
}
