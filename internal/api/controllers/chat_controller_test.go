package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/api/controllers"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

type mockChatService struct {
	handleMessageFn  func(request request_models.ChatRequest, ctx context.Context) (response_models.ChatResponse, error)
	getChatHistoryFn func(ctx context.Context) ([]response_models.ChatHistoryEntry, error)
}

func (m *mockChatService) HandleMessage(request request_models.ChatRequest, ctx context.Context) (response_models.ChatResponse, error) {
	return m.handleMessageFn(request, ctx)
}

func (m *mockChatService) GetChatHistory(ctx context.Context) ([]response_models.ChatHistoryEntry, error) {
	return m.getChatHistoryFn(ctx)
}

func chatRouter(svc *mockChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := controllers.NewChatController(svc)
	router.POST("/api/chat", controller.ChatHandler)
	router.GET("/api/chat/history", controller.ChatHistoryHandler)
	return router
}

func TestChatHandler_Success(t *testing.T) {
	svc := &mockChatService{
		handleMessageFn: func(request request_models.ChatRequest, ctx context.Context) (response_models.ChatResponse, error) {
			assert.Equal(t, "I want to visit Kerala", request.Message)
			return response_models.ChatResponse{
				ID:      "msg-1",
				Message: "You're exploring **Kerala**! Here are some must-visit places:",
				IsBot:   true,
			}, nil
		},
	}
	router := chatRouter(svc)

	body, _ := json.Marshal(request_models.ChatRequest{Message: "I want to visit Kerala"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestChatHandler_MissingMessage(t *testing.T) {
	svc := &mockChatService{
		handleMessageFn: func(request request_models.ChatRequest, ctx context.Context) (response_models.ChatResponse, error) {
			t.Fatal("service should not be called")
			return response_models.ChatResponse{}, nil
		},
	}
	router := chatRouter(svc)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "not json"},
		{"missing field", `{}`},
		{"blank message", `{"message": "   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestChatHandler_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid input", utils.ErrInvalidInput, http.StatusBadRequest},
		{"database error", utils.ErrDatabaseError, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockChatService{
				handleMessageFn: func(request request_models.ChatRequest, ctx context.Context) (response_models.ChatResponse, error) {
					return response_models.ChatResponse{}, tt.err
				},
			}
			router := chatRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"message": "hello"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestChatHistoryHandler(t *testing.T) {
	location := "kerala"
	svc := &mockChatService{
		getChatHistoryFn: func(ctx context.Context) ([]response_models.ChatHistoryEntry, error) {
			return []response_models.ChatHistoryEntry{
				{ID: "m1", Message: "I want to visit Kerala", IsBot: "false"},
				{ID: "m2", Message: "You're exploring **Kerala**! Here are some must-visit places:", IsBot: "true", Location: &location},
			}, nil
		},
	}
	router := chatRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	entries, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, entries, 2)
}

func TestChatHistoryHandler_Failure(t *testing.T) {
	svc := &mockChatService{
		getChatHistoryFn: func(ctx context.Context) ([]response_models.ChatHistoryEntry, error) {
			return nil, utils.ErrDatabaseError
		},
	}
	router := chatRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
