package update

import (
	"context"
	"fmt"
	"io"
	"time"

	"wbdimsync/config/values"
	"wbdimsync/internal/wildberries/business/models"
	"wbdimsync/internal/wildberries/business/models/dto/response"
	"wbdimsync/internal/wildberries/business/services"
	"wbdimsync/internal/wildberries/business/services/build"
	"wbdimsync/internal/wildberries/storage"
	"wbdimsync/metrics"
	"wbdimsync/pkg/logger"
)

// RefreshService -- полное обновление таблицы габаритов:
// выгрузить весь каталог, очистить таблицу, залить заново батчами.
//
// Никакого восстановления после частичного фейла нет: упавшая вставка
// оставляет таблицу недолитой, следующий успешный прогон ее чинит.
type RefreshService struct {
	cards      services.CardStreamer
	store      storage.DimensionsStore
	pageSize   int
	batchSize  int
	batchPause time.Duration
	metrics    *metrics.SyncMetrics
	log        logger.Logger
}

func NewRefreshService(cards services.CardStreamer, store storage.DimensionsStore, vals values.SyncValues, writer io.Writer, m *metrics.SyncMetrics) *RefreshService {
	if m == nil {
		m = &metrics.SyncMetrics{}
	}
	return &RefreshService{
		cards:      cards,
		store:      store,
		pageSize:   vals.PageSize,
		batchSize:  vals.BatchSize,
		batchPause: time.Duration(vals.BatchPauseMs) * time.Millisecond,
		metrics:    m,
		log:        logger.NewLogger(writer, "[RefreshService]"),
	}
}

// Refresh возвращает число записанных строк.
func (s *RefreshService) Refresh(ctx context.Context) (int, error) {
	s.log.Log("Fetching cards from Wildberries...")

	cardsChan := make(chan response.Card, s.pageSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.cards.StreamCards(ctx, s.pageSize, cardsChan)
	}()

	// весь каталог буферизуется до первой записи: вставлять до удаления
	// нельзя, а удалять до того, как выгрузка точно удалась -- тем более
	var rows []models.DimensionsRow
	for card := range cardsChan {
		s.metrics.CardsSeen.Add(1)
		row, outcome := build.BuildRow(card)
		switch outcome {
		case build.Accepted:
			s.metrics.RowsAccepted.Add(1)
			rows = append(rows, *row)
		case build.SkippedMissingDimensions:
			s.metrics.SkippedMissingDimensions.Add(1)
		case build.SkippedMalformedNumeric:
			s.metrics.SkippedMalformedNumeric.Add(1)
		}
	}
	if err := <-errCh; err != nil {
		return 0, fmt.Errorf("fetching cards: %w", err)
	}

	s.log.Log("Total rows with dimensions: %d (skipped: %d without dimensions, %d malformed)",
		len(rows), s.metrics.SkippedMissingDimensions.Load(), s.metrics.SkippedMalformedNumeric.Load())

	s.log.Log("Deleting old data from wb_cards_dimensions...")
	if err := s.store.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("deleting old rows: %w", err)
	}

	s.log.Log("Inserting new data into wb_cards_dimensions...")
	for i := 0; i < len(rows); i += s.batchSize {
		end := i + s.batchSize
		if end > len(rows) {
			end = len(rows)
		}

		if err := s.store.InsertBatch(ctx, rows[i:end]); err != nil {
			return i, fmt.Errorf("inserting batch %d..%d: %w", i, end-1, err)
		}
		s.metrics.BatchesInserted.Add(1)
		s.log.Log("Inserted batch %d..%d", i, end-1)

		// пауза между батчами, чтобы не упереться в лимиты PostgREST
		if end < len(rows) && s.batchPause > 0 {
			select {
			case <-time.After(s.batchPause):
			case <-ctx.Done():
				return end, ctx.Err()
			}
		}
	}

	return len(rows), nil
}
