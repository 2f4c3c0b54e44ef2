package diagnostics_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/flamescrm/agent-platform/internal/diagnostics"
	"github.com/flamescrm/agent-platform/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeStore struct {
	available   bool
	collections []string
	listErr     error
}

func (f *fakeStore) Available() bool      { return f.available }
func (f *fakeStore) DatabaseName() string { return "crm" }

func (f *fakeStore) Insert(context.Context, string, any) (string, error) {
	return "", store.ErrUnavailable
}

func (f *fakeStore) Find(context.Context, string, bson.M, int64) ([]bson.M, error) {
	return nil, store.ErrUnavailable
}

func (f *fakeStore) FindByID(context.Context, string, string) (bson.M, error) {
	return nil, store.ErrUnavailable
}

func (f *fakeStore) Collections(context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.collections, nil
}

func (f *fakeStore) Ping(context.Context) error  { return nil }
func (f *fakeStore) Close(context.Context) error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func getTest(t *testing.T, h *diagnostics.Handler) (*httptest.ResponseRecorder, diagnostics.Report) {
	t.Helper()
	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	h.Test(rec, req)

	var report diagnostics.Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	return rec, report
}

func TestRoot(t *testing.T) {
	h := diagnostics.NewHandler(&fakeStore{}, testLogger())

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "CRM AI Agent Platform Backend running" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestTest_StoreUnavailable(t *testing.T) {
	h := diagnostics.NewHandler(&fakeStore{available: false}, testLogger())

	rec, report := getTest(t, h)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d even when store is down", rec.Code, http.StatusOK)
	}
	if report.Database != "❌ Not Available" {
		t.Errorf("database = %q", report.Database)
	}
	if report.ConnectionStatus != "Not Connected" {
		t.Errorf("connection_status = %q", report.ConnectionStatus)
	}
	if report.DatabaseURL != nil {
		t.Errorf("database_url = %v, want null", *report.DatabaseURL)
	}
	if len(report.Collections) != 0 {
		t.Errorf("collections = %v, want empty", report.Collections)
	}
}

func TestTest_StoreWorking(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")

	st := &fakeStore{available: true, collections: []string{"agent", "contact"}}
	h := diagnostics.NewHandler(st, testLogger())

	rec, report := getTest(t, h)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if report.Database != "✅ Connected & Working" {
		t.Errorf("database = %q", report.Database)
	}
	if report.DatabaseURL == nil || *report.DatabaseURL != "✅ Set" {
		t.Errorf("database_url = %v, want set marker", report.DatabaseURL)
	}
	if report.DatabaseName == nil || *report.DatabaseName != "crm" {
		t.Errorf("database_name = %v, want crm", report.DatabaseName)
	}
	if report.ConnectionStatus != "Connected" {
		t.Errorf("connection_status = %q", report.ConnectionStatus)
	}
	if len(report.Collections) != 2 {
		t.Errorf("collections = %v", report.Collections)
	}
}

func TestTest_URLNotSet(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	st := &fakeStore{available: true}
	h := diagnostics.NewHandler(st, testLogger())

	_, report := getTest(t, h)

	if report.DatabaseURL == nil || *report.DatabaseURL != "❌ Not Set" {
		t.Errorf("database_url = %v, want not-set marker", report.DatabaseURL)
	}
}

func TestTest_CollectionsCappedAtTen(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = fmt.Sprintf("collection-%d", i)
	}
	st := &fakeStore{available: true, collections: names}
	h := diagnostics.NewHandler(st, testLogger())

	_, report := getTest(t, h)

	if len(report.Collections) != 10 {
		t.Errorf("collections = %d, want 10", len(report.Collections))
	}
}

func TestTest_ListFailureDowngrades(t *testing.T) {
	st := &fakeStore{available: true, listErr: errors.New("cursor timeout while scanning collection catalog beyond limits")}
	h := diagnostics.NewHandler(st, testLogger())

	rec, report := getTest(t, h)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d on list failure", rec.Code, http.StatusOK)
	}
	if !strings.HasPrefix(report.Database, "⚠️ Connected but Error: ") {
		t.Errorf("database = %q, want downgraded warning", report.Database)
	}

	detail := strings.TrimPrefix(report.Database, "⚠️ Connected but Error: ")
	if len([]rune(detail)) > 50 {
		t.Errorf("error detail %q exceeds 50 characters", detail)
	}
}
