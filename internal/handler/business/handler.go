package business

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	businessModel "github.com/frontdeskhq/frontdesk/backend/internal/model/business"
	"github.com/frontdeskhq/frontdesk/backend/pkg/utils"
)

// Handler exposes business and knowledge-document management.
type Handler struct {
	store businessModel.Store
}

// New creates the business handler.
func New(store businessModel.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the business routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/businesses", h.handleCreate)
	r.Get("/businesses/{businessID}", h.handleGet)
	r.Post("/businesses/{businessID}/documents", h.handleAddDocument)
}

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	BrandColor  string `json:"brandColor"`

	// Legacy widget builds sent these aliases; normalized once here.
	LegacyName        string `json:"businessName"`
	LegacyDescription string `json:"businessDescription"`
}

// normalize maps legacy field aliases onto the canonical schema.
func (p createRequest) normalize() businessModel.Business {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = strings.TrimSpace(p.LegacyName)
	}
	description := strings.TrimSpace(p.Description)
	if description == "" {
		description = strings.TrimSpace(p.LegacyDescription)
	}

	return businessModel.Business{
		Name:        name,
		Description: description,
		Industry:    strings.TrimSpace(p.Industry),
		BrandColor:  strings.TrimSpace(p.BrandColor),
	}
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	biz := payload.normalize()
	if biz.Name == "" {
		utils.RespondError(w, http.StatusBadRequest, "Business name is required")
		return
	}

	created := h.store.Create(biz)
	utils.RespondJSON(w, http.StatusCreated, map[string]any{"business": created})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	biz, ok := h.store.FindByID(chi.URLParam(r, "businessID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Business not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"business": biz})
}

func (h *Handler) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Title) == "" && strings.TrimSpace(payload.Content) == "" {
		utils.RespondError(w, http.StatusBadRequest, "document needs a title or content")
		return
	}

	doc, ok := h.store.AddDocument(chi.URLParam(r, "businessID"), businessModel.Document{
		Title:   payload.Title,
		Content: payload.Content,
	})
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Business not found")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{"document": doc})
}
