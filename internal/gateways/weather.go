// Package gateways содержит тонкие HTTP-клиенты внешних справочников:
// погода (OpenWeatherMap), продукты (OpenFoodFacts), тренировки (API Ninjas).
// Каждый клиент делает один запрос с таймаутом и возвращает типизированную
// ошибку; сетевые детали наружу не выходят.
package gateways

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const gatewayTimeout = 10 * time.Second

var (
	// ErrCityNotFound — OpenWeatherMap не знает такого города.
	ErrCityNotFound = errors.New("city not found")
	// ErrBadAPIKey — ключ не принят (401).
	ErrBadAPIKey = errors.New("weather api key rejected")
)

const defaultWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// WeatherClient запрашивает текущую температуру по названию города.
type WeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewWeatherClient(apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:     apiKey,
		baseURL:    defaultWeatherURL,
		httpClient: &http.Client{Timeout: gatewayTimeout},
	}
}

type weatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// CurrentTemperature возвращает температуру в °C.
func (c *WeatherClient) CurrentTemperature(city string) (float64, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	resp, err := c.httpClient.Get(c.baseURL + "?" + q.Encode())
	if err != nil {
		return 0, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return 0, ErrBadAPIKey
	case http.StatusNotFound:
		return 0, ErrCityNotFound
	default:
		return 0, fmt.Errorf("weather request: status %d", resp.StatusCode)
	}

	var data weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("weather response: %w", err)
	}
	return data.Main.Temp, nil
}
