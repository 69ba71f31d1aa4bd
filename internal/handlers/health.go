package handlers

import (
	"net/http"
)

// Health always reports ok.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

// Ready returns 200 while running() is true and 503 afterwards.
func Ready(running func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !running() {
			JSONError(w, "renderer stopped", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}
}
