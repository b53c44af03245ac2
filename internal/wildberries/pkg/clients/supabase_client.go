package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wbdimsync/internal/wildberries/business/models"
	"wbdimsync/pkg/logger"
)

const dimensionsTable = "wb_cards_dimensions"

// SupabaseClient пишет в таблицу через PostgREST. У Supabase нет
// truncate в REST-интерфейсе, поэтому полная очистка -- это
// delete с фильтром, который матчит все строки (nm_id=gt.0).
type SupabaseClient struct {
	ApiURL     string
	serviceKey string
	client     *http.Client
	log        logger.Logger
}

func NewSupabaseClient(apiURL, serviceRoleKey string, writer io.Writer) *SupabaseClient {
	return &SupabaseClient{
		ApiURL:     strings.TrimRight(apiURL, "/"),
		serviceKey: serviceRoleKey,
		client:     &http.Client{Timeout: 60 * time.Second},
		log:        logger.NewLogger(writer, "[SupabaseClient]"),
	}
}

func (c *SupabaseClient) DeleteAll(ctx context.Context) error {
	url := fmt.Sprintf("%s/rest/v1/%s?nm_id=gt.0", c.ApiURL, dimensionsTable)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("failed to delete from %s, status code: %d", dimensionsTable, resp.StatusCode)
	}
	return nil
}

func (c *SupabaseClient) InsertBatch(ctx context.Context, rows []models.DimensionsRow) error {
	if len(rows) == 0 {
		return nil
	}

	bodyBytes, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}

	url := fmt.Sprintf("%s/rest/v1/%s", c.ApiURL, dimensionsTable)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	// вставленные строки обратно не нужны
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("failed to insert %d rows into %s, status code: %d", len(rows), dimensionsTable, resp.StatusCode)
	}
	return nil
}

// setHeaders -- PostgREST хочет пару apikey + bearer.
func (c *SupabaseClient) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
}
