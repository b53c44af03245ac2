package storage

import (
	"context"

	"wbdimsync/internal/wildberries/business/models"
)

// DimensionsStore -- все, что full refresh просит от хранилища.
// За интерфейсом живут два транспорта: PostgREST (Supabase) и прямой
// Postgres; пайплайну без разницы, куда писать.
type DimensionsStore interface {
	DeleteAll(ctx context.Context) error
	InsertBatch(ctx context.Context, rows []models.DimensionsRow) error
}
