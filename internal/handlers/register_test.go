package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sgrigorev/shop-api/internal/models"
	"github.com/sgrigorev/shop-api/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: RegisterRequest{
				Username: "admin",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "admin", "secret123").
					Return(&models.UserDB{ID: 1, Username: "admin"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &RegisterResponse{
				ID:       1,
				Username: "admin",
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "invalid request body",
			},
		},
		{
			name: "missing username",
			inputBody: RegisterRequest{
				Password: "secret123",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "username and password are required",
			},
		},
		{
			name: "username already exists",
			inputBody: RegisterRequest{
				Username: "admin",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "admin", "secret123").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "Username already exists",
			},
		},
		{
			name: "internal error",
			inputBody: RegisterRequest{
				Username: "admin",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "admin", "secret123").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewRegisterHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &RegisterResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
