package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/instaboost/apiserver/internal/services"
)

// ChatHandler provides HTTP handlers for the support chat log.
type ChatHandler struct {
	supportService *services.SupportService
}

// NewChatHandler constructs a handler with the provided service.
func NewChatHandler(supportService *services.SupportService) *ChatHandler {
	return &ChatHandler{supportService: supportService}
}

// ChatRouter registers chat routes on the given router.
func ChatRouter(r chi.Router, supportService *services.SupportService) {
	handler := NewChatHandler(supportService)

	r.Post("/send", handler.SendMessage)
	r.Get("/messages", handler.ListMessages)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "name and message required")
		return
	}

	if _, err := h.supportService.Send(r.Context(), req.Name, req.Message); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to send message")
		return
	}

	writeJSON(w, http.StatusCreated, SendMessageResponse{Status: "sent"})
}

// ListMessages returns the whole chat log in the order messages were sent.
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.supportService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list messages")
		return
	}

	items := make([]ChatMessageItem, 0, len(messages))
	for _, msg := range messages {
		items = append(items, ChatMessageItem{
			Name:    msg.Name,
			Message: msg.Message,
			IsAdmin: msg.IsAdmin,
		})
	}

	writeJSON(w, http.StatusOK, items)
}

type SendMessageRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type SendMessageResponse struct {
	Status string `json:"status"`
}

type ChatMessageItem struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	IsAdmin bool   `json:"is_admin"`
}
