package response

// Dimensions -- габаритный блок карточки. WB отдает числа, но в выгрузках
// встречались и строки, и null, поэтому поля нетипизированные: приведение
// к float64 делает трансформер, а не декодер.
type Dimensions struct {
	Length       interface{} `json:"length"`
	Width        interface{} `json:"width"`
	Height       interface{} `json:"height"`
	WeightBrutto interface{} `json:"weightBrutto"`
	IsValid      bool        `json:"isValid"`
}
