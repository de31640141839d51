package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisterAndLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"login":     "sakura",
		"password":  "secret-pass",
		"full_name": "Sakura Dental",
		"email":     "clinic@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Повторная регистрация с тем же логином запрещена
	w = doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"login":     "sakura",
		"password":  "secret-pass",
		"full_name": "Sakura Dental",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate login, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"login":    "sakura",
		"password": "secret-pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("expected JWT token in login response")
	}

	// Профиль доступен с токеном
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"login":     "sakura",
		"password":  "secret-pass",
		"full_name": "Sakura Dental",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"login":    "sakura",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
