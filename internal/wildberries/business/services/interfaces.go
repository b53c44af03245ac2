package services

import (
	"context"

	"wbdimsync/internal/wildberries/business/models/dto/response"
)

// CardStreamer -- ленивый источник карточек каталога.
// Реализация сама закрывает out по исчерпанию пагинации.
type CardStreamer interface {
	StreamCards(ctx context.Context, pageSize int, out chan<- response.Card) error
}
