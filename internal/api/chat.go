// Package api exposes the assistant over HTTP and MCP. The chat surface is
// public; the interaction log endpoints sit behind optional bearer auth.
package api

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const maxRequestBodySize = 1 << 20 // 1MB

//go:embed web/index.html
var webFS embed.FS

// QueryProcessor answers a single chat message.
type QueryProcessor interface {
	ProcessQuery(ctx context.Context, message string) string
}

// ChatRequest is the POST /chat body.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply envelope for POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

// NewChatHandler returns the public HTTP surface: the chat endpoint, a health
// check, and the embedded demo page.
func NewChatHandler(processor QueryProcessor) http.Handler {
	r := chi.NewRouter()

	r.Get("/", handleIndex)
	r.Get("/health", handleHealth)
	r.Post("/chat", handleChat(processor))

	return r
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		httpError(w, http.StatusInternalServerError, "api_error", "demo page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleChat(processor QueryProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			chatError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Message == "" {
			chatError(w, http.StatusBadRequest, "message is required")
			return
		}

		reply := processor.ProcessQuery(r.Context(), req.Message)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ChatResponse{
			Response: reply,
			Status:   "success",
		})
	}
}

// chatError writes the chat envelope with status "error" so the demo page can
// render failures in the same shape as replies.
func chatError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ChatResponse{
		Response: msg,
		Status:   "error",
	})
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
