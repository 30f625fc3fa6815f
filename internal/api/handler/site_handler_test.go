package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

func TestSiteHandler_Home(t *testing.T) {
	e := echo.New()
	h := NewSiteHandler("Wanderlust", domain.Catalogue)

	t.Run("anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		if err := h.Home(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		var resp homeResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp.User != nil || resp.Links["login"] != "/login" || len(resp.Services) != 3 {
			t.Fatalf("unexpected home: %+v", resp)
		}
	})

	t.Run("admin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.Set("session", &domain.Session{Identity: "root", Role: domain.RoleAdmin})
		if err := h.Home(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		var resp homeResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp.User == nil || resp.User.Username != "root" || resp.Links["admin"] != "/admin" {
			t.Fatalf("unexpected home: %+v", resp)
		}
		if _, ok := resp.Links["login"]; ok {
			t.Fatalf("logged-in users should not see the login link")
		}
	})
}

func TestSiteHandler_Destinations(t *testing.T) {
	e := echo.New()
	h := NewSiteHandler("Wanderlust", domain.Catalogue)

	rec := httptest.NewRecorder()
	if err := h.Destinations(e.NewContext(httptest.NewRequest(http.MethodGet, "/destinations", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp destinationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Destinations) != len(domain.Catalogue()) {
		t.Fatalf("expected full catalogue, got %d", len(resp.Destinations))
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	e := echo.New()

	t.Run("no dependencies", func(t *testing.T) {
		rec := httptest.NewRecorder()
		if err := NewHealthHandler(nil).Readiness(e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("one dependency down", func(t *testing.T) {
		h := NewHealthHandler(map[string]Pinger{
			"mongodb": func(context.Context) error { return nil },
			"redis":   func(context.Context) error { return errors.New("connection refused") },
		})
		rec := httptest.NewRecorder()
		if err := h.Readiness(e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		var resp readinessResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp.Dependencies["mongodb"].Status != "ok" || resp.Dependencies["redis"].Error != "connection refused" {
			t.Fatalf("unexpected readiness: %+v", resp)
		}
	})
}
