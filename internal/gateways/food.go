package gateways

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"telegram-health-coach/internal/models"
)

// ErrFoodNotFound — в базе нет ни одного продукта по запросу.
var ErrFoodNotFound = errors.New("food not found")

const defaultFoodURL = "https://world.openfoodfacts.org/cgi/search.pl"

// FoodCacheStore позволяет переиспользовать результаты поиска. nil — без кэша.
type FoodCacheStore interface {
	Get(query string) (models.FoodInfo, bool, error)
	Put(query string, info models.FoodInfo) error
}

// FoodClient ищет продукт в OpenFoodFacts и берёт первый результат.
type FoodClient struct {
	baseURL    string
	cache      FoodCacheStore
	httpClient *http.Client
}

func NewFoodClient(cache FoodCacheStore) *FoodClient {
	return &FoodClient{
		baseURL:    defaultFoodURL,
		cache:      cache,
		httpClient: &http.Client{Timeout: gatewayTimeout},
	}
}

type foodSearchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			KcalPer100 *float64 `json:"energy-kcal_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

// Lookup возвращает первый найденный продукт. Отсутствие калорийности — не
// ошибка: KcalPer100 будет nil, решение за вызывающим.
func (c *FoodClient) Lookup(query string) (models.FoodInfo, error) {
	if c.cache != nil {
		if info, ok, err := c.cache.Get(query); err != nil {
			log.Printf("food cache read: %v", err)
		} else if ok {
			return info, nil
		}
	}

	q := url.Values{}
	q.Set("action", "process")
	q.Set("search_terms", query)
	q.Set("json", "true")

	resp, err := c.httpClient.Get(c.baseURL + "?" + q.Encode())
	if err != nil {
		return models.FoodInfo{}, fmt.Errorf("food request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.FoodInfo{}, fmt.Errorf("food request: status %d", resp.StatusCode)
	}

	var data foodSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.FoodInfo{}, fmt.Errorf("food response: %w", err)
	}
	if len(data.Products) == 0 {
		return models.FoodInfo{}, ErrFoodNotFound
	}

	first := data.Products[0]
	info := models.FoodInfo{
		Name:       first.ProductName,
		KcalPer100: first.Nutriments.KcalPer100,
	}

	if c.cache != nil {
		if err := c.cache.Put(query, info); err != nil {
			log.Printf("food cache write: %v", err)
		}
	}
	return info, nil
}
