package handler

import (
	"net/http"

	"github.com/osse101/ItemDrop_Go/internal/inventory"
)

// SellAllResponse is returned by POST /api/sell-all/{characterId}
type SellAllResponse struct {
	Message    string `json:"message"`
	SoldAmount int    `json:"soldAmount"`
	ItemsSold  int    `json:"itemsSold"`
	Gold       int    `json:"gold"`
}

// InventoryHandler serves the draw and sell endpoints
type InventoryHandler struct {
	svc inventory.Service
}

// NewInventoryHandler creates an InventoryHandler
func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// HandleDrawRandomItem spends gold on a random catalog item
// @Summary Draw a random item
// @Description Charges 100 gold and adds a uniformly chosen catalog item to the inventory
// @Tags inventory
// @Produce json
// @Param characterId path int true "Character ID"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/random-item/{characterId} [post]
func (h *InventoryHandler) HandleDrawRandomItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	characterID, ok := pathID(w, r, ParamCharID)
	if !ok {
		return
	}

	res, err := h.svc.DrawRandomItem(r.Context(), characterID, caller.AccountID)
	if err != nil {
		respondServiceError(w, r, OpDrawItem, err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgItemDrawnSuccess, Data: res})
}

// HandleSellItem sells one item for its price
// @Summary Sell an item
// @Tags inventory
// @Produce json
// @Param characterId path int true "Character ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/sell-item/{characterId}/{itemId} [post]
func (h *InventoryHandler) HandleSellItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	characterID, ok := pathID(w, r, ParamCharID)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, ParamItemID)
	if !ok {
		return
	}

	res, err := h.svc.SellItem(r.Context(), characterID, itemID, caller.AccountID)
	if err != nil {
		respondServiceError(w, r, OpSellItem, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemSoldSuccess, Data: res})
}

// HandleSellAll sells every unequipped item
// @Summary Sell all items
// @Tags inventory
// @Produce json
// @Param characterId path int true "Character ID"
// @Success 200 {object} SellAllResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/sell-all/{characterId} [post]
func (h *InventoryHandler) HandleSellAll(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	characterID, ok := pathID(w, r, ParamCharID)
	if !ok {
		return
	}

	res, err := h.svc.SellAllItems(r.Context(), characterID, caller.AccountID)
	if err != nil {
		respondServiceError(w, r, OpSellAll, err)
		return
	}

	respondJSON(w, http.StatusOK, SellAllResponse{
		Message:    MsgAllItemsSoldSuccess,
		SoldAmount: res.SoldAmount,
		ItemsSold:  res.ItemsSold,
		Gold:       res.Gold,
	})
}
