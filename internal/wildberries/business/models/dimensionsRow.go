package models

// DimensionsRow -- строка таблицы wb_cards_dimensions.
// json-теги совпадают с колонками, чтобы та же структура уходила
// и в PostgREST, и в Postgres. fetched_at не отправляем: на стороне
// базы стоит default now().
type DimensionsRow struct {
	NmID           int      `json:"nm_id"`
	VendorCode     string   `json:"vendor_code,omitempty"`
	Brand          string   `json:"brand,omitempty"`
	ObjectName     string   `json:"object_name,omitempty"`
	LengthCm       float64  `json:"length_cm"`
	WidthCm        float64  `json:"width_cm"`
	HeightCm       float64  `json:"height_cm"`
	WeightBruttoKg *float64 `json:"weight_brutto_kg,omitempty"`
	VolumeLiters   float64  `json:"volume_liters"`
	UpdatedAtWb    string   `json:"updated_at_wb,omitempty"`
}
