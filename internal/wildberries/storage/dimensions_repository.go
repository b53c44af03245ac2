package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"wbdimsync/internal/wildberries/business/models"
)

const dimensionsTable = "wildberries.wb_cards_dimensions"

const dimensionsColumns = 10

type DimensionsRepository struct {
	db *sql.DB
}

func NewDimensionsRepository(db *sql.DB) *DimensionsRepository {
	return &DimensionsRepository{db: db}
}

// DeleteAll сносит снапшот целиком. nm_id всегда положительный,
// так что фильтр накрывает все строки.
func (r *DimensionsRepository) DeleteAll(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE nm_id > 0`, dimensionsTable)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("deleting rows from %s: %w", dimensionsTable, err)
	}
	return nil
}

func (r *DimensionsRepository) InsertBatch(ctx context.Context, rows []models.DimensionsRow) error {
	if len(rows) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s
		(nm_id, vendor_code, brand, object_name, length_cm, width_cm, height_cm, weight_brutto_kg, volume_liters, updated_at_wb)
		VALUES `, dimensionsTable)

	// Строим запрос со значениями
	valueStrings := make([]string, 0, len(rows))
	args := make([]interface{}, 0, len(rows)*dimensionsColumns)
	for i, row := range rows {
		placeholders := make([]string, dimensionsColumns)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", i*dimensionsColumns+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ", ")+")")
		args = append(args,
			row.NmID, nullableString(row.VendorCode), nullableString(row.Brand), nullableString(row.ObjectName),
			row.LengthCm, row.WidthCm, row.HeightCm, row.WeightBruttoKg,
			row.VolumeLiters, nullableString(row.UpdatedAtWb),
		)
	}
	query += strings.Join(valueStrings, ", ")

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting %d rows into %s: %w", len(rows), dimensionsTable, err)
	}
	return nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
