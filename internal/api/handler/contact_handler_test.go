package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

type stubContactService struct {
	listedType domain.ContactType
	grouped    bool
	update     ports.ContactUpdateInput
	deleted    [2]string
}

func (s *stubContactService) List(_ context.Context, _ *domain.Claims, _ string, ctype domain.ContactType) ([]domain.Contact, error) {
	s.listedType = ctype
	return []domain.Contact{{ID: "c1", Type: ctype, Name: "Gym", Visits: []domain.Visit{}}}, nil
}

func (s *stubContactService) Grouped(_ context.Context, _ *domain.Claims, _ string) (*domain.ContactGroups, error) {
	s.grouped = true
	return &domain.ContactGroups{General: []domain.Contact{}, Partnerships: []domain.Contact{}, Departments: []domain.Contact{}}, nil
}

func (s *stubContactService) Create(_ context.Context, _ *domain.Claims, _ ports.ContactInput) (string, error) {
	return "c2", nil
}

func (s *stubContactService) Update(_ context.Context, _ *domain.Claims, _ string, in ports.ContactUpdateInput) error {
	s.update = in
	return nil
}

func (s *stubContactService) Delete(_ context.Context, _ *domain.Claims, id, property string) error {
	s.deleted = [2]string{id, property}
	return nil
}

var aliceClaims = &domain.Claims{Subject: "alice", Role: domain.RoleUser, Properties: domain.Properties("A")}

func TestContactHandler_ListGroupedByDefault(t *testing.T) {
	svc := &stubContactService{}
	h := NewContactHandler(svc)
	c, rec := newTestContext(http.MethodGet, "/api/contacts?property=A", "", aliceClaims)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !svc.grouped {
		t.Fatalf("expected grouped listing")
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, key := range []string{"general", "partnerships", "departments"} {
		if _, ok := resp[key]; !ok {
			t.Fatalf("missing group %q in %s", key, rec.Body.String())
		}
	}
}

func TestContactHandler_ListFiltered(t *testing.T) {
	svc := &stubContactService{}
	h := NewContactHandler(svc)
	c, rec := newTestContext(http.MethodGet, "/api/contacts?property=A&type=partnership", "", aliceClaims)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.grouped || svc.listedType != domain.ContactPartnership {
		t.Fatalf("expected filtered listing, got type %q grouped=%v", svc.listedType, svc.grouped)
	}
	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || len(resp) != 1 {
		t.Fatalf("expected a one-element array, got %s", rec.Body.String())
	}
}

func TestContactHandler_Create(t *testing.T) {
	h := NewContactHandler(&stubContactService{})

	c, rec := newTestContext(http.MethodPost, "/api/contacts", `{"property":"A","type":"general","name":"Cafe"}`, aliceClaims)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	c, _ = newTestContext(http.MethodPost, "/api/contacts", `{"property":"A","type":"vendor"}`, aliceClaims)
	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestContactHandler_UpdatePushVisit(t *testing.T) {
	svc := &stubContactService{}
	h := NewContactHandler(svc)
	c, rec := newTestContext(http.MethodPut, "/api/contacts/c1", `{"property":"A","pushVisit":{"date":"2026-03-01","notes":"tour"}}`, aliceClaims)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.update.PushVisit == nil || svc.update.PushVisit.Date != "2026-03-01" || svc.update.Property != "A" {
		t.Fatalf("unexpected update input: %+v", svc.update)
	}
}

func TestContactHandler_Delete(t *testing.T) {
	svc := &stubContactService{}
	h := NewContactHandler(svc)
	c, rec := newTestContext(http.MethodDelete, "/api/contacts/c1?property=A", "", aliceClaims)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.deleted != [2]string{"c1", "A"} {
		t.Fatalf("unexpected delete args: %v", svc.deleted)
	}
}

func TestParseTimestamp(t *testing.T) {
	for _, in := range []string{"2026-05-01T10:00:00Z", "2026-05-01T10:00:00.123+02:00", "2026-05-01T10:00", "2026-05-01"} {
		if _, err := parseTimestamp(in); err != nil {
			t.Fatalf("parseTimestamp(%q): %v", in, err)
		}
	}
	if _, err := parseTimestamp("yesterday"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
