package responses

import (
	"wbdimsync/internal/wildberries/business/models/dto/request"
	"wbdimsync/internal/wildberries/business/models/dto/response"
)

type CardsResponse struct {
	Cards  []response.Card `json:"cards"`
	Cursor request.Cursor  `json:"cursor"`
}
