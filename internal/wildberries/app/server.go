package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"wbdimsync/config"
	"wbdimsync/internal/wildberries/business/services"
	"wbdimsync/internal/wildberries/business/services/get"
	"wbdimsync/internal/wildberries/business/services/update"
	"wbdimsync/internal/wildberries/pkg/clients"
	"wbdimsync/internal/wildberries/storage"
	"wbdimsync/metrics"
	"wbdimsync/migrations/infrastructure"
	"wbdimsync/migrations/marketplaces/wb"
	"wbdimsync/pkg/dbconnect"
	"wbdimsync/pkg/dbconnect/migration"
	"wbdimsync/pkg/dbconnect/postgres"
	"wbdimsync/pkg/logger"
)

// SyncServer собирает пайплайн из конфига и запускает full refresh --
// одиночный либо по cron-расписанию.
type SyncServer struct {
	cfg    *config.AppConfig
	log    logger.Logger
	writer io.Writer
}

func NewSyncServer(cfg *config.AppConfig, writer io.Writer) *SyncServer {
	_log := logger.NewLogger(writer, "[SyncServer]")
	return &SyncServer{cfg: cfg, log: _log, writer: writer}
}

// Run выполняет один полный прогон.
func (s *SyncServer) Run(ctx context.Context) error {
	runID := uuid.NewString()[:8]
	runLog := logger.NewLogger(s.writer, fmt.Sprintf("[Sync %s]", runID))
	runLog.Log("Starting full refresh (backend=%s)", s.cfg.Sync.Backend)

	authEngine := services.NewBearerAuth(s.cfg.Wildberries.ApiToken)
	if authEngine == nil {
		return fmt.Errorf("wildberries api token is empty")
	}

	store, closeStore, err := s.buildStore()
	if err != nil {
		return err
	}
	defer closeStore()

	syncMetrics := &metrics.SyncMetrics{}
	cardsService := get.NewCardsService(get.CardsListURL, s.cfg.Wildberries.Locale, authEngine, s.writer, syncMetrics)
	refreshService := update.NewRefreshService(cardsService, store, s.cfg.Sync.Values, s.writer, syncMetrics)

	started := time.Now()
	count, err := refreshService.Refresh(ctx)
	elapsed := time.Since(started)
	metrics.PublishRun(syncMetrics, elapsed)
	if err != nil {
		return err
	}

	runLog.Log("Done. %d rows written in %s", count, elapsed.Round(time.Millisecond))
	return nil
}

// RunScheduled гоняет Run по cron-расписанию до отмены контекста.
func (s *SyncServer) RunScheduled(ctx context.Context, schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := s.Run(ctx); err != nil {
			s.log.Log("Refresh failed: %s", err)
		}
	})
	if err != nil {
		return fmt.Errorf("parsing schedule %q: %w", schedule, err)
	}

	s.log.Log("Scheduled refresh: %q", schedule)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func (s *SyncServer) buildStore() (storage.DimensionsStore, func(), error) {
	switch s.cfg.Sync.Backend {
	case config.BackendPostgres:
		var connector dbconnect.Database = postgres.NewPgConnector(&s.cfg.Postgres)
		db, err := connector.Connect()
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}

		migrationApply := []migration.MigrationInterface{
			&infrastructure.MigrationsSchema{},
			&wb.CreateWBSchema{},
			&wb.CreateWBCardsDimensionsTable{},
		}
		for _, _migration := range migrationApply {
			if err := _migration.UpMigration(db); err != nil {
				db.Close()
				return nil, nil, fmt.Errorf("migration failed: %w", err)
			}
		}

		return storage.NewDimensionsRepository(db), func() { db.Close() }, nil
	default:
		client := clients.NewSupabaseClient(s.cfg.Supabase.URL, s.cfg.Supabase.ServiceRoleKey, s.writer)
		return client, func() {}, nil
	}
}
