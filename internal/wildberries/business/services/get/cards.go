package get

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"wbdimsync/internal/wildberries/business/dto/responses"
	"wbdimsync/internal/wildberries/business/models/dto/request"
	"wbdimsync/internal/wildberries/business/models/dto/response"
	"wbdimsync/internal/wildberries/business/services"
	"wbdimsync/metrics"
	"wbdimsync/pkg/logger"
)

const CardsListURL = "https://content-api.wildberries.ru/content/v2/get/cards/list"

const DefaultPageSize = 100

// держимся ниже лимита контентного API (100 запросов в минуту)
const requestsPerMinute = 60

const requestTimeout = 60 * time.Second

// CardsService ходит в content/v2/get/cards/list и гонит карточки
// через курсорную пагинацию.
type CardsService struct {
	apiURL  string
	locale  string
	auth    services.AuthEngine
	client  *http.Client
	limiter *rate.Limiter
	metrics *metrics.SyncMetrics
	log     logger.Logger
}

func NewCardsService(apiURL, locale string, auth services.AuthEngine, writer io.Writer, m *metrics.SyncMetrics) *CardsService {
	if m == nil {
		m = &metrics.SyncMetrics{}
	}
	return &CardsService{
		apiURL:  apiURL,
		locale:  locale,
		auth:    auth,
		client:  &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), 5),
		metrics: m,
		log:     logger.NewLogger(writer, "[WB CardsService]"),
	}
}

// GetCardsPage выполняет один запрос списка карточек.
func (s *CardsService) GetCardsPage(ctx context.Context, settings request.Settings) (*responses.CardsResponse, error) {
	url := s.apiURL
	if s.locale != "" {
		url = fmt.Sprintf("%s?locale=%s", url, s.locale)
	}

	requestBody, err := settings.CreateRequestBody()
	if err != nil {
		return nil, fmt.Errorf("creating request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, requestBody)
	if err != nil {
		return nil, err
	}

	s.auth.SetApiKey(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	var cardsResponse responses.CardsResponse
	if err := json.NewDecoder(resp.Body).Decode(&cardsResponse); err != nil {
		return nil, err
	}

	return &cardsResponse, nil
}

// StreamCards проходит весь каталог и пишет карточки в out в порядке
// получения. Канал закрывается самим методом; ошибка транспорта или
// не-200 статус обрывают проход без ретраев.
//
// Завершение: пустая страница, либо у вернувшегося курсора total < limit.
// Если WB не вернул курсор вовсе, total будет нулевым и проход тоже
// завершится -- иначе на кривом ответе можно зациклиться.
func (s *CardsService) StreamCards(ctx context.Context, pageSize int, out chan<- response.Card) error {
	defer close(out)

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	cursor := request.Cursor{Limit: pageSize}
	filter := request.AllCards()
	sort := request.Sort{Ascending: false}

	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		page, err := s.GetCardsPage(ctx, request.Settings{
			Sort:   sort,
			Filter: filter,
			Cursor: cursor,
		})
		if err != nil {
			return err
		}

		if len(page.Cards) == 0 {
			return nil
		}

		for _, card := range page.Cards {
			select {
			case out <- card:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		s.metrics.PagesFetched.Add(1)
		s.log.Log("Fetched page of %d cards (lastNmID=%d)", len(page.Cards), page.Cursor.NmID)

		// total < limit -- это была последняя страница
		if page.Cursor.Total < cursor.Limit {
			return nil
		}

		cursor = cursor.Next(page.Cursor)
	}
}
