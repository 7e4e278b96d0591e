package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func readiness(t *testing.T, store StorePinger, rdb *redis.Client) (int, readinessResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

	if err := NewHealthDependenciesHandler(store, rdb).Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_AllHealthy(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	code, resp := readiness(t, stubPinger{}, rdb)
	if code != http.StatusOK || resp.Status != "ok" {
		t.Fatalf("expected ok, got %d %+v", code, resp)
	}
	if resp.Dependencies["redis"].Status != "ok" || resp.Dependencies["mongodb"].Status != "ok" {
		t.Fatalf("unexpected dependencies: %+v", resp.Dependencies)
	}
}

func TestReadiness_RedisDisabled(t *testing.T) {
	code, resp := readiness(t, stubPinger{}, nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.Dependencies["redis"].Status != "disabled" {
		t.Fatalf("expected redis disabled, got %+v", resp.Dependencies["redis"])
	}
}

func TestReadiness_StoreDown(t *testing.T) {
	code, resp := readiness(t, stubPinger{err: errors.New("no reachable servers")}, nil)
	if code != http.StatusServiceUnavailable || resp.Status != "degraded" {
		t.Fatalf("expected degraded 503, got %d %+v", code, resp)
	}
	if resp.Dependencies["mongodb"].Error != "no reachable servers" {
		t.Fatalf("unexpected mongodb status: %+v", resp.Dependencies["mongodb"])
	}
}
