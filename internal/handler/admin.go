package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/ItemDrop_Go/internal/catalog"
	"github.com/osse101/ItemDrop_Go/internal/domain"
)

// CreateTemplateRequest is the body of POST /api/admin/createitems
type CreateTemplateRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Type        string `json:"type" validate:"required,itemtype"`
	Rarity      string `json:"rarity" validate:"required,rarity"`
	Description string `json:"description" validate:"max=1000"`
	ItemLevel   int    `json:"itemLevel" validate:"required,min=1,max=2147483647"`
	Price       *int   `json:"price" validate:"required,min=0,max=2147483647"`
	Equippable  bool   `json:"equippable"`
}

// DeleteTemplateResponse is returned by DELETE /api/admin/deleteitems/{itemListId}
type DeleteTemplateResponse struct {
	Message          string `json:"message"`
	InstancesRemoved int    `json:"instancesRemoved"`
}

// CatalogHandler serves the admin item catalog endpoints
type CatalogHandler struct {
	svc catalog.Service
}

// NewCatalogHandler creates a CatalogHandler
func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// HandleListTemplates lists the whole catalog
// @Summary List item templates
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/admin/allitems [get]
func (h *CatalogHandler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.ListTemplates(r.Context())
	if err != nil {
		respondServiceError(w, r, OpListTemplates, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: templates})
}

// HandleCreateTemplate adds an item template
// @Summary Create item template
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CreateTemplateRequest true "Template"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/admin/createitems [post]
func (h *CatalogHandler) HandleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req CreateTemplateRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateTemplate); err != nil {
		return
	}

	created, err := h.svc.CreateTemplate(r.Context(), domain.ItemTemplate{
		Name:        req.Name,
		Type:        req.Type,
		Rarity:      req.Rarity,
		Description: req.Description,
		ItemLevel:   req.ItemLevel,
		Price:       *req.Price,
		Equippable:  req.Equippable,
	})
	if err != nil {
		respondServiceError(w, r, OpCreateTemplate, err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgTemplateCreated, Data: created})
}

// HandleDeleteTemplate removes a template and every unequipped copy of it
// @Summary Delete item template
// @Tags admin
// @Produce json
// @Param itemListId path int true "Template ID"
// @Success 200 {object} DeleteTemplateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/deleteitems/{itemListId} [delete]
func (h *CatalogHandler) HandleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ParamItemListID)
	if !ok {
		return
	}

	removed, err := h.svc.DeleteTemplate(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpDeleteTemplate, err)
		return
	}

	respondJSON(w, http.StatusOK, DeleteTemplateResponse{
		Message:          fmt.Sprintf(MsgTemplateDeletedFormat, removed),
		InstancesRemoved: removed,
	})
}
