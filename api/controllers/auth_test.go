package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/agrisense-io/agrisense-backend/internal/auth"
	"github.com/agrisense-io/agrisense-backend/internal/users"
	"github.com/agrisense-io/agrisense-backend/pkg/enums"
	pkgerrors "github.com/agrisense-io/agrisense-backend/pkg/errors"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error)
	loginFn    func(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error)
}

func (s stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, req)
	}
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "not implemented")
}

func (s stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, req)
	}
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "not implemented")
}

func TestAuthRegisterCreated(t *testing.T) {
	userID := uuid.New()
	svc := stubAuthService{
		registerFn: func(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
			if req.Email != "farmer@agrisense.com" {
				t.Fatalf("unexpected email %q", req.Email)
			}
			return &auth.AuthResponse{
				Message: "User registered successfully",
				Token:   "signed-token",
				User: &users.UserDTO{
					ID:    userID,
					Name:  "Farmer John",
					Email: "farmer@agrisense.com",
					Role:  enums.UserRoleFarmer,
				},
			}, nil
		},
	}

	handler := AuthRegister(svc, nil, nil)
	body := `{"name":"Farmer John","email":"farmer@agrisense.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", resp.Code, resp.Body.String())
	}

	var payload auth.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Message != "User registered successfully" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
	if payload.Token != "signed-token" {
		t.Fatalf("unexpected token %q", payload.Token)
	}
	if payload.User == nil || payload.User.ID != userID {
		t.Fatalf("unexpected user %+v", payload.User)
	}
}

func TestAuthRegisterServiceError(t *testing.T) {
	svc := stubAuthService{
		registerFn: func(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "User already exists with this email")
		},
	}

	handler := AuthRegister(svc, nil, nil)
	body := `{"name":"Farmer John","email":"farmer@agrisense.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["message"] != "User already exists with this email" {
		t.Fatalf("unexpected message %v", payload["message"])
	}
}

func TestAuthRegisterMalformedBody(t *testing.T) {
	handler := AuthRegister(stubAuthService{}, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthLoginOK(t *testing.T) {
	svc := stubAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
			if req.Password != "password123" {
				t.Fatalf("unexpected password %q", req.Password)
			}
			return &auth.AuthResponse{
				Message: "Login successful",
				Token:   "signed-token",
				User:    &users.UserDTO{Email: req.Email},
			}, nil
		},
	}

	handler := AuthLogin(svc, nil, nil)
	body := `{"email":"farmer@agrisense.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", resp.Code, resp.Body.String())
	}

	var payload auth.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Message != "Login successful" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	svc := stubAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials. Please check your email and password.")
		},
	}

	handler := AuthLogin(svc, nil, nil)
	body := `{"email":"farmer@agrisense.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["message"] != "Invalid credentials. Please check your email and password." {
		t.Fatalf("unexpected message %v", payload["message"])
	}
}
