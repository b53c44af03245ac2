package get

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"wbdimsync/internal/wildberries/business/dto/responses"
	"wbdimsync/internal/wildberries/business/models/dto/request"
	"wbdimsync/internal/wildberries/business/models/dto/response"
	"wbdimsync/internal/wildberries/business/services"
	"wbdimsync/metrics"
)

func testCard(nmID int) response.Card {
	return response.Card{
		NmID:       nmID,
		VendorCode: fmt.Sprintf("VC-%d", nmID),
		UpdatedAt:  fmt.Sprintf("2024-01-01T00:00:%02dZ", nmID%60),
	}
}

func decodeSettings(t *testing.T, r *http.Request) request.Settings {
	t.Helper()
	var wrapper request.SettingsRequestWrapper
	if err := json.NewDecoder(r.Body).Decode(&wrapper); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}
	return wrapper.Settings
}

func collectCards(t *testing.T, svc *CardsService, pageSize int) ([]response.Card, error) {
	t.Helper()
	out := make(chan response.Card, pageSize+1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.StreamCards(context.Background(), pageSize, out)
	}()
	var cards []response.Card
	for card := range out {
		cards = append(cards, card)
	}
	return cards, <-errCh
}

func newTestService(url string) *CardsService {
	return NewCardsService(url, "", services.NewBearerAuth("test-token"), nil, &metrics.SyncMetrics{})
}

func TestStreamCardsPaginatesUntilShortPage(t *testing.T) {
	var requests []request.Settings

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		settings := decodeSettings(t, r)
		requests = append(requests, settings)

		var page responses.CardsResponse
		switch len(requests) {
		case 1:
			page = responses.CardsResponse{
				Cards:  []response.Card{testCard(1), testCard(2)},
				Cursor: request.Cursor{UpdatedAt: "t1", NmID: 2, Limit: 2, Total: 2},
			}
		case 2:
			// короткая страница: total < limit, проход должен закончиться
			page = responses.CardsResponse{
				Cards:  []response.Card{testCard(3)},
				Cursor: request.Cursor{UpdatedAt: "t2", NmID: 3, Limit: 2, Total: 1},
			}
		default:
			t.Errorf("unexpected request #%d", len(requests))
		}
		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	cards, err := collectCards(t, newTestService(server.URL), 2)
	if err != nil {
		t.Fatalf("StreamCards failed: %v", err)
	}

	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	for i, want := range []int{1, 2, 3} {
		if cards[i].NmID != want {
			t.Errorf("card %d: expected nmID %d, got %d", i, want, cards[i].NmID)
		}
	}

	if len(requests) != 2 {
		t.Fatalf("expected 2 page requests, got %d", len(requests))
	}
	first := requests[0].Cursor
	if first.Limit != 2 || first.UpdatedAt != "" || first.NmID != 0 {
		t.Errorf("first cursor should carry only limit: %+v", first)
	}
	second := requests[1].Cursor
	if second.UpdatedAt != "t1" || second.NmID != 2 || second.Limit != 2 {
		t.Errorf("second cursor not built from echo: %+v", second)
	}
	if requests[0].Filter.WithPhoto != -1 {
		t.Errorf("expected withPhoto -1, got %d", requests[0].Filter.WithPhoto)
	}
	if requests[0].Sort.Ascending {
		t.Errorf("expected descending sort")
	}
}

func TestStreamCardsStopsOnEmptyPage(t *testing.T) {
	var requestCount int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		var page responses.CardsResponse
		if requestCount == 1 {
			page = responses.CardsResponse{
				Cards:  []response.Card{testCard(1), testCard(2)},
				Cursor: request.Cursor{UpdatedAt: "t1", NmID: 2, Limit: 2, Total: 2},
			}
		}
		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	cards, err := collectCards(t, newTestService(server.URL), 2)
	if err != nil {
		t.Fatalf("StreamCards failed: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if requestCount != 2 {
		t.Fatalf("expected 2 requests, got %d", requestCount)
	}
}

func TestStreamCardsTerminatesWithoutCursorEcho(t *testing.T) {
	var requestCount int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		// деградировавший ответ: cards есть, cursor отсутствует
		fmt.Fprint(w, `{"cards":[{"nmID":7}]}`)
	}))
	defer server.Close()

	cards, err := collectCards(t, newTestService(server.URL), 2)
	if err != nil {
		t.Fatalf("StreamCards failed: %v", err)
	}
	if len(cards) != 1 || cards[0].NmID != 7 {
		t.Fatalf("expected the single card to be emitted, got %+v", cards)
	}
	if requestCount != 1 {
		t.Fatalf("expected exactly 1 request (no infinite loop), got %d", requestCount)
	}
}

func TestStreamCardsPropagatesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	cards, err := collectCards(t, newTestService(server.URL), 2)
	if err == nil {
		t.Fatal("expected error on non-200 status")
	}
	if len(cards) != 0 {
		t.Fatalf("expected no cards on failure, got %d", len(cards))
	}
}
