package wb

import (
	"database/sql"
	"fmt"
	"log"

	"wbdimsync/migrations/infrastructure"
)

type CreateWBSchema struct{}

func (m *CreateWBSchema) UpMigration(db *sql.DB) error {
	query := `
	CREATE SCHEMA IF NOT EXISTS wildberries;`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create schema wildberries: %w", err)
	}
	return nil
}

type CreateWBCardsDimensionsTable struct{}

func (m *CreateWBCardsDimensionsTable) UpMigration(db *sql.DB) error {
	if ok, err := infrastructure.CheckAndSkipMigration(db, "wildberries.wb_cards_dimensions"); err != nil {
		return err
	} else if ok {
		return nil
	}
	query := `
	CREATE TABLE IF NOT EXISTS wildberries.wb_cards_dimensions (
		id SERIAL PRIMARY KEY,
		nm_id INT NOT NULL, -- артикул WB
		vendor_code VARCHAR(255),
		brand VARCHAR(255),
		object_name VARCHAR(255),
		length_cm NUMERIC(10, 2) NOT NULL,
		width_cm NUMERIC(10, 2) NOT NULL,
		height_cm NUMERIC(10, 2) NOT NULL,
		weight_brutto_kg NUMERIC(10, 3),
		volume_liters NUMERIC(12, 3) NOT NULL,
		updated_at_wb TIMESTAMP WITH TIME ZONE,
		fetched_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS wb_cards_dimensions_nm_id_idx
	ON wildberries.wb_cards_dimensions(nm_id);`
	if err := infrastructure.ExecuteAndMarkMigration(db, query, "wildberries.wb_cards_dimensions"); err != nil {
		return err
	}
	log.Println("Migration 'wildberries.wb_cards_dimensions' completed successfully.")
	return nil
}
