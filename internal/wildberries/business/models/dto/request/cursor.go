package request

// Cursor -- состояние пагинации, которым обмениваемся с WB.
// Живет один проход: создается только с Limit, после каждой страницы
// пересобирается из курсора, который вернул WB.
type Cursor struct {
	UpdatedAt string `json:"updatedAt,omitempty"`
	NmID      int    `json:"nmID,omitempty"`
	Limit     int    `json:"limit"`
	Total     int    `json:"total,omitempty"`
}

// Next собирает курсор следующей страницы из эха WB.
// Если WB не вернул limit, остается текущий.
func (c Cursor) Next(echo Cursor) Cursor {
	limit := echo.Limit
	if limit == 0 {
		limit = c.Limit
	}
	return Cursor{
		UpdatedAt: echo.UpdatedAt,
		NmID:      echo.NmID,
		Limit:     limit,
	}
}
