package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"campusfaq/internal/model"
	"campusfaq/internal/service"

	"github.com/gorilla/mux"
)

// FAQHandler handles admin FAQ management endpoints
type FAQHandler struct {
	faqSvc *service.FAQService
}

// NewFAQHandler creates a new FAQ handler
func NewFAQHandler(faqSvc *service.FAQService) *FAQHandler {
	return &FAQHandler{faqSvc: faqSvc}
}

// FAQRequest is the request body for creating or updating an FAQ entry
type FAQRequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
	Category string   `json:"category"`
	Priority int      `json:"priority"`
	IsActive *bool    `json:"isActive"`
}

func (req *FAQRequest) toEntry() *model.FAQEntry {
	entry := &model.FAQEntry{
		Question: req.Question,
		Answer:   req.Answer,
		Keywords: req.Keywords,
		Category: model.Category(req.Category),
		Priority: req.Priority,
		IsActive: true, // new entries are matchable unless explicitly disabled
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}
	return entry
}

// Create handles POST /v1/faqs
func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req FAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.faqSvc.Create(r.Context(), req.toEntry())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"faqId": id})
}

// List handles GET /v1/faqs, optionally filtered by ?category=
func (h *FAQHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		entries []*model.FAQEntry
		err     error
	)

	if raw := r.URL.Query().Get("category"); raw != "" {
		category, perr := model.ParseCategory(raw)
		if perr != nil {
			writeError(w, http.StatusBadRequest, perr.Error())
			return
		}
		entries, err = h.faqSvc.GetByCategory(r.Context(), category)
	} else {
		entries, err = h.faqSvc.GetAll(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"faqs": entries})
}

// Get handles GET /v1/faqs/{faqId}
func (h *FAQHandler) Get(w http.ResponseWriter, r *http.Request) {
	faqID := mux.Vars(r)["faqId"]

	entry, err := h.faqSvc.GetByID(r.Context(), faqID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entry == nil {
		writeError(w, http.StatusNotFound, "faq not found")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Update handles PUT /v1/faqs/{faqId}
func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	faqID := mux.Vars(r)["faqId"]

	var req FAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, err := h.faqSvc.GetByID(r.Context(), faqID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "faq not found")
		return
	}

	entry := req.toEntry()
	entry.ID = faqID
	entry.CreatedAt = existing.CreatedAt

	if err := h.faqSvc.Update(r.Context(), entry); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /v1/faqs/{faqId}
func (h *FAQHandler) Delete(w http.ResponseWriter, r *http.Request) {
	faqID := mux.Vars(r)["faqId"]

	if err := h.faqSvc.Delete(r.Context(), faqID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrQuestionRequired) ||
		errors.Is(err, service.ErrAnswerRequired) ||
		errors.Is(err, model.ErrUnknownCategory) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
