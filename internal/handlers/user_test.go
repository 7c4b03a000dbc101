package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo_backend/internal/models"
	"todo_backend/internal/service"
)

func TestUserHandlers_SignUpAndLogin(t *testing.T) {
	auth := &mockAuth{
		signUpView: &models.UserView{ID: "u-42", Name: "Ahmed Hamdy", Email: "ahmed@example.com"},
		token:      "tok123",
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	// signup success: created user under "data"
	body := bytes.NewBufferString(`{"name":"Ahmed Hamdy","email":"ahmed@example.com","password":"Password123"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/signup", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("signup status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Data models.UserView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Data.ID != "u-42" || out.Data.Email != "ahmed@example.com" {
		t.Fatalf("unexpected signup data: %+v", out.Data)
	}

	// login success: token string under "data"
	body = bytes.NewBufferString(`{"email":"ahmed@example.com","password":"Password123"}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/user/login", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	var loginOut struct {
		Data string `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &loginOut)
	if loginOut.Data != "tok123" {
		t.Fatalf("expected token tok123, got %q", loginOut.Data)
	}

	// signup with missing field → 400 message
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/user/signup", bytes.NewBufferString(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete signup, got %d", w.Code)
	}
}

func TestUserHandlers_SignUpFailures(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "duplicate email", err: service.ErrEmailTaken, wantCode: http.StatusBadRequest},
		{name: "missing fields", err: service.ErrMissingFields, wantCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{signUpErr: tc.err}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/user/signup",
				bytes.NewBufferString(`{"name":"n","email":"e@x.c","password":"p"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d", w.Code, tc.wantCode)
			}
			var out struct {
				Message string `json:"message"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Message != tc.err.Error() {
				t.Fatalf("message: got %q, want %q", out.Message, tc.err.Error())
			}
		})
	}
}

func TestUserHandlers_LoginFailures(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "unknown email", err: service.ErrUserNotFound, wantCode: http.StatusNotFound},
		{name: "wrong password", err: service.ErrInvalidPassword, wantCode: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{genTokenErr: tc.err}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/user/login",
				bytes.NewBufferString(`{"email":"e@x.c","password":"p"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
		})
	}
}

func TestUserHandlers_Search(t *testing.T) {
	t.Run("hit returns the matching view", func(t *testing.T) {
		auth := &mockAuth{
			searchView: &models.UserView{ID: "u-1", Name: "Ahmed Hamdy", Email: "ahmed@example.com"},
		}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/search?name=Ahmed+Hamdy", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var out struct {
			Data models.UserView `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.Data.Name != "Ahmed Hamdy" {
			t.Fatalf("expected name to echo the query, got %q", out.Data.Name)
		}
		if auth.lastSearchName != "Ahmed Hamdy" {
			t.Fatalf("search got %q", auth.lastSearchName)
		}
	})

	t.Run("miss is 200 with the literal name interpolated", func(t *testing.T) {
		auth := &mockAuth{searchErr: service.ErrUserNotFound}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/search?name=NonExistent", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, want 200 (search misses are soft failures)", w.Code)
		}
		var out struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.Message != "There is no user with name: NonExistent" {
			t.Fatalf("message: got %q", out.Message)
		}
	})
}
