package build

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"wbdimsync/internal/wildberries/business/models"
	"wbdimsync/internal/wildberries/business/models/dto/response"
)

// Outcome -- результат трансформации одной карточки. Пропуски считаются,
// а не глотаются молча, чтобы долю карточек без габаритов было видно.
type Outcome int

const (
	Accepted Outcome = iota
	SkippedMissingDimensions
	SkippedMalformedNumeric
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case SkippedMissingDimensions:
		return "missing_dimensions"
	case SkippedMalformedNumeric:
		return "malformed_numeric"
	}
	return "unknown"
}

// BuildRow собирает строку wb_cards_dimensions из карточки.
// Чистая функция: никакого I/O, одинаковый вход дает одинаковый выход.
//
// Строка существует только если все три габарита присутствуют, числовые
// и ненулевые. Кривой weightBrutto строку не убивает -- вес просто
// считается отсутствующим.
func BuildRow(card response.Card) (*models.DimensionsRow, Outcome) {
	dims := card.Dimensions

	length, lengthOk, lengthBad := coerceFloat(dims.Length)
	width, widthOk, widthBad := coerceFloat(dims.Width)
	height, heightOk, heightBad := coerceFloat(dims.Height)

	if lengthBad || widthBad || heightBad {
		return nil, SkippedMalformedNumeric
	}
	if !lengthOk || !widthOk || !heightOk || length == 0 || width == 0 || height == 0 {
		return nil, SkippedMissingDimensions
	}

	// см³ → литры, объем считаем до округления габаритов
	volume := (length * width * height) / 1000.0

	var weight *float64
	if w, ok, bad := coerceFloat(dims.WeightBrutto); ok && !bad {
		weight = &w
	}

	row := &models.DimensionsRow{
		NmID:           card.NmID,
		VendorCode:     card.VendorCode,
		Brand:          card.Brand,
		ObjectName:     card.ObjectTitle(),
		LengthCm:       round(length, 2),
		WidthCm:        round(width, 2),
		HeightCm:       round(height, 2),
		WeightBruttoKg: weight,
		VolumeLiters:   round(volume, 3),
		UpdatedAtWb:    card.UpdatedAt,
	}

	return row, Accepted
}

// coerceFloat приводит значение из JSON к float64.
// ok=false -- значения нет; malformed=true -- значение есть, но числом
// его сделать нельзя.
func coerceFloat(v interface{}) (f float64, ok bool, malformed bool) {
	switch value := v.(type) {
	case nil:
		return 0, false, false
	case float64:
		return value, true, false
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, false, true
		}
		return parsed, true, false
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, false, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false, true
		}
		return parsed, true, false
	default:
		return 0, false, true
	}
}

func round(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
