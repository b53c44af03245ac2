package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wbdimsync/internal/wildberries/business/models"
)

func TestSupabaseClientDeleteAll(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/rest/v1/wb_cards_dimensions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		// фильтр должен накрывать все строки
		if r.URL.RawQuery != "nm_id=gt.0" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if r.Header.Get("apikey") != "service-key" {
			t.Errorf("missing apikey header")
		}
		if r.Header.Get("Authorization") != "Bearer service-key" {
			t.Errorf("missing bearer header")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewSupabaseClient(server.URL, "service-key", nil)
	if err := client.DeleteAll(context.Background()); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	if !called {
		t.Fatal("no request issued")
	}
}

func TestSupabaseClientDeleteAllError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewSupabaseClient(server.URL, "service-key", nil)
	if err := client.DeleteAll(context.Background()); err == nil {
		t.Fatal("expected error on 403")
	}
}

func TestSupabaseClientInsertBatch(t *testing.T) {
	weight := 1.5
	rows := []models.DimensionsRow{
		{NmID: 1, LengthCm: 10, WidthCm: 10, HeightCm: 10, VolumeLiters: 1, WeightBruttoKg: &weight},
		{NmID: 2, LengthCm: 5, WidthCm: 4, HeightCm: 3, VolumeLiters: 0.06},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/rest/v1/wb_cards_dimensions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Prefer") != "return=minimal" {
			t.Errorf("expected Prefer: return=minimal, got %q", r.Header.Get("Prefer"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type: %q", r.Header.Get("Content-Type"))
		}

		var got []map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode insert body: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 rows in body, got %d", len(got))
		}
		if got[0]["nm_id"].(float64) != 1 {
			t.Errorf("unexpected first row: %+v", got[0])
		}
		if _, ok := got[1]["weight_brutto_kg"]; ok {
			t.Errorf("absent weight must be omitted, got %+v", got[1])
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewSupabaseClient(server.URL, "service-key", nil)
	if err := client.InsertBatch(context.Background(), rows); err != nil {
		t.Fatalf("InsertBatch failed: %v", err)
	}
}

func TestSupabaseClientInsertBatchEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty batch")
	}))
	defer server.Close()

	client := NewSupabaseClient(server.URL, "service-key", nil)
	if err := client.InsertBatch(context.Background(), nil); err != nil {
		t.Fatalf("InsertBatch failed: %v", err)
	}
}
