package request

type Filter struct {
	/*
		Фильтр по фото:
		0 — только карточки без фото
		1 — только карточки с фото
		-1 — все карточки товара
	*/
	WithPhoto int `json:"withPhoto"`

	/*
		Поиск по артикулу продавца, артикулу WB, баркоду
	*/
	TextSearch string `json:"textSearch,omitempty"`

	/*
		Поиск по брендам
	*/
	Brands []string `json:"brands,omitempty"`

	/*
		Поиск по id предметов
	*/
	ObjectIDs []int `json:"objectIDs,omitempty"`
}

// AllCards -- фильтр без ограничений, выбирает весь каталог.
func AllCards() Filter {
	return Filter{WithPhoto: -1}
}

type Sort struct {
	Ascending bool `json:"ascending"`
}
