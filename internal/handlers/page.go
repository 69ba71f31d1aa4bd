package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/crucial707/habit-countdown/internal/page"
)

// PageHandler serves the hosted page as last rendered.
type PageHandler struct {
	Doc *page.Document
}

// ServePage writes the current document.
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Doc.Render(&buf); err != nil {
		slog.Error("render page", "error", err)
		http.Error(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
