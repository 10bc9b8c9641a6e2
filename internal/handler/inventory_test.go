package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/mocks"
)

func boolPtr(b bool) *bool { return &b }

func TestHandleGetInventory(t *testing.T) {
	view := domain.InventoryView{Items: []domain.Item{{ID: "1", Name: "Pikachu"}}, Shown: 1, Total: 3}

	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockCollectionService)
		expectedStatus int
		expectedField  string
	}{
		{
			name:  "No filter",
			query: "",
			setupMock: func(m *mocks.MockCollectionService) {
				m.On("Inventory", mock.Anything, domain.InventoryFilter{}).Return(view)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "All filters",
			query: "?name=pika&type=electric&rarity=rare&shiny=true",
			setupMock: func(m *mocks.MockCollectionService) {
				m.On("Inventory", mock.Anything, domain.InventoryFilter{
					Name: "pika", Type: "electric", Rarity: domain.RarityRare, Shiny: boolPtr(true),
				}).Return(view)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown rarity",
			query:          "?rarity=mythic",
			setupMock:      func(m *mocks.MockCollectionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "rarity",
		},
		{
			name:           "Bad shiny flag",
			query:          "?shiny=sometimes",
			setupMock:      func(m *mocks.MockCollectionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "shiny",
		},
		{
			name:           "Name too long",
			query:          "?name=" + strings.Repeat("a", 65),
			setupMock:      func(m *mocks.MockCollectionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockCollectionService(t)
			tt.setupMock(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory"+tt.query, nil)
			w := httptest.NewRecorder()

			HandleGetInventory(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedField != "" {
				var resp ValidationErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Contains(t, resp.Fields, tt.expectedField)
				return
			}

			var got domain.InventoryView
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, 1, got.Shown)
			assert.Equal(t, 3, got.Total)
		})
	}
}

func TestHandleGetDuplicates_EmptyIsArray(t *testing.T) {
	mockSvc := mocks.NewMockCollectionService(t)
	mockSvc.On("Duplicates", mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	HandleGetDuplicates(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/inventory/duplicates", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"count":0}`, w.Body.String())
}

func TestHandleSellItem(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockCollectionService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "Sold",
			body: `{"id":"abc"}`,
			setupMock: func(m *mocks.MockCollectionService) {
				m.On("Sell", mock.Anything, "abc").Return(&domain.SellResult{Sold: true, Copies: 1, Value: 42}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    MsgItemSold,
		},
		{
			name: "Unknown id is a no-op",
			body: `{"id":"missing"}`,
			setupMock: func(m *mocks.MockCollectionService) {
				m.On("Sell", mock.Anything, "missing").Return(&domain.SellResult{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    MsgItemNotOwned,
		},
		{
			name:           "Missing id",
			body:           `{}`,
			setupMock:      func(m *mocks.MockCollectionService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed body",
			body:           `{"id":`,
			setupMock:      func(m *mocks.MockCollectionService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown field",
			body:           `{"id":"abc","quantity":2}`,
			setupMock:      func(m *mocks.MockCollectionService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Store failure",
			body: `{"id":"abc"}`,
			setupMock: func(m *mocks.MockCollectionService) {
				m.On("Sell", mock.Anything, "abc").Return(nil, domain.ErrStoreWrite)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockCollectionService(t)
			tt.setupMock(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/sell", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			HandleSellItem(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg != "" {
				var resp SellResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
		})
	}
}

func TestHandleSellDuplicates(t *testing.T) {
	t.Run("Sells duplicates", func(t *testing.T) {
		mockSvc := mocks.NewMockCollectionService(t)
		mockSvc.On("SellAllDuplicates", mock.Anything).
			Return(&domain.SellResult{Sold: true, Copies: 3, Value: 399, Stats: domain.UserStats{Coins: 1399}}, nil)

		w := httptest.NewRecorder()
		HandleSellDuplicates(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/inventory/sell-duplicates", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp SellResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, MsgDuplicatesSold, resp.Message)
		assert.Equal(t, 399, resp.Result.Value)
		assert.Equal(t, 1399, resp.Result.Stats.Coins)
	})

	t.Run("Nothing to sell", func(t *testing.T) {
		mockSvc := mocks.NewMockCollectionService(t)
		mockSvc.On("SellAllDuplicates", mock.Anything).Return(&domain.SellResult{}, nil)

		w := httptest.NewRecorder()
		HandleSellDuplicates(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/inventory/sell-duplicates", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgNoDuplicates)
	})
}
