package server

import (
	"encoding/json"
	goerrors "errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dukapos-web/internal/common/errors"
	"dukapos-web/internal/notify"
)

type chatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeStandardError(w http.ResponseWriter, err error) {
	var stdErr *errors.StandardError
	if goerrors.As(err, &stdErr) {
		status := http.StatusBadRequest
		switch stdErr.Code {
		case errors.ErrCodeChatBusy:
			status = http.StatusConflict
		case errors.ErrCodeChatStoreFailed, errors.ErrCodeChatLLMFailed, errors.ErrCodeChatLLMTimeout:
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, errorResponse{Error: stdErr.Message, Code: string(stdErr.Code)})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	result, err := s.chat.Send(r.Context(), req.SessionID, req.Message)
	if err != nil {
		writeStandardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	conv, err := s.chat.History(r.Context(), sessionID)
	if err != nil {
		writeStandardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

type leadResponse struct {
	LeadID     string `json:"lead_id"`
	ReceivedAt string `json:"received_at"`
}

func (s *Server) handleLead(w http.ResponseWriter, r *http.Request) {
	var lead notify.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	leadID, err := s.notifier.Alert(&lead)
	if err != nil {
		writeStandardError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, leadResponse{
		LeadID:     leadID,
		ReceivedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
