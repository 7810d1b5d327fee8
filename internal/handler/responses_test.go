package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ItemDrop_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.ErrInventoryNotFound, http.StatusNotFound, ErrMsgInventoryNotFoundError},
		{domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
		{domain.ErrCharacterNotFound, http.StatusNotFound, ErrMsgCharacterNotFoundError},
		{domain.ErrAccountNotFound, http.StatusNotFound, ErrMsgAccountNotFoundError},
		{domain.ErrTemplateNotFound, http.StatusNotFound, ErrMsgTemplateNotFoundError},
		{domain.ErrInventoryFull, http.StatusBadRequest, ErrMsgInventoryFullError},
		{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughGoldError},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, ErrMsgInvalidCredentialsError},
		{domain.ErrUnauthorized, http.StatusUnauthorized, ErrMsgAuthRequiredError},
		{domain.ErrForbidden, http.StatusForbidden, ErrMsgForbiddenError},
		{domain.ErrAccountExists, http.StatusConflict, ErrMsgAccountExistsError},
		{domain.ErrNicknameTaken, http.StatusConflict, ErrMsgNicknameTakenError},
		{domain.ErrTemplateExists, http.StatusConflict, ErrMsgTemplateExistsError},
		{domain.ErrCharacterLimit, http.StatusBadRequest, ErrMsgCharacterLimitError},
		{domain.ErrItemEquipped, http.StatusBadRequest, ErrMsgItemEquippedError},
		{domain.ErrTemplateEquipped, http.StatusBadRequest, ErrMsgTemplateEquippedError},
		{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
		{domain.ErrCatalogEmpty, http.StatusServiceUnavailable, ErrMsgCatalogEmptyError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", tt.err))
			status, msg := mapServiceErrorToUserMessage(wrapped)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestMapServiceErrorToUserMessage_StoreFailureIsGeneric(t *testing.T) {
	status, msg := mapServiceErrorToUserMessage(errors.New("pq: relation \"items\" does not exist"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, ErrMsgGenericServerError, msg)

	status, msg = mapServiceErrorToUserMessage(nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, ErrMsgUnknownError, msg)
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}
