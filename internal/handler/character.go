package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ItemDrop_Go/internal/character"
)

// CreateCharacterRequest is the body of POST /api/characters
type CreateCharacterRequest struct {
	Nickname string `json:"nickname" validate:"required,max=40"`
}

// CharacterHandler serves character creation and lookups
type CharacterHandler struct {
	svc character.Service
}

// NewCharacterHandler creates a CharacterHandler
func NewCharacterHandler(svc character.Service) *CharacterHandler {
	return &CharacterHandler{svc: svc}
}

// HandleCreate creates a character for the caller
// @Summary Create character
// @Description Creates a character with default stats, 10000 gold and 20 slots
// @Tags character
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Nickname"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/characters [post]
func (h *CharacterHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreateCharacterRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateChar); err != nil {
		return
	}

	detail, err := h.svc.Create(r.Context(), caller.AccountID, req.Nickname)
	if err != nil {
		respondServiceError(w, r, OpCreateChar, err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgCharacterCreated, Data: detail})
}

// HandleGetByNickname returns the public profile of a character
// @Summary Character profile
// @Tags character
// @Produce json
// @Param nickname path string true "Nickname"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/characters/{nickname} [get]
func (h *CharacterHandler) HandleGetByNickname(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetByNickname(r.Context(), chi.URLParam(r, ParamNickname))
	if err != nil {
		respondServiceError(w, r, OpGetProfile, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: profile})
}

// HandleGetDetail returns the full view of one of the caller's characters
// @Summary Character detail
// @Tags character
// @Produce json
// @Param characterId path int true "Character ID"
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/characters/by-id/{characterId} [get]
func (h *CharacterHandler) HandleGetDetail(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	characterID, ok := pathID(w, r, ParamCharID)
	if !ok {
		return
	}

	detail, err := h.svc.GetDetail(r.Context(), characterID, caller.AccountID)
	if err != nil {
		respondServiceError(w, r, OpGetDetail, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: detail})
}

// HandleListAll lists every character
// @Summary List characters
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/admin/characters [get]
func (h *CharacterHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	chars, err := h.svc.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, r, OpListChars, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: chars})
}
