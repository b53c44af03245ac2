package response

// Card -- одна карточка из content/v2/get/cards/list.
// Декодируем только то, что нужно пайплайну; остальные поля карточки
// (фото, размеры, характеристики) сюда сознательно не тащим.
type Card struct {
	NmID       int        `json:"nmID"`
	VendorCode string     `json:"vendorCode"`
	Brand      string     `json:"brand"`
	Object     string     `json:"object"`
	ObjectName string     `json:"objectName"`
	Dimensions Dimensions `json:"dimensions"`
	UpdatedAt  string     `json:"updatedAt"`
}

// ObjectTitle -- у WB поле называлось то object, то objectName,
// в зависимости от версии ответа. Берем первое непустое.
func (c *Card) ObjectTitle() string {
	if c.Object != "" {
		return c.Object
	}
	return c.ObjectName
}
