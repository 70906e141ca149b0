package gateways

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
)

const defaultExerciseURL = "https://api.api-ninjas.com/v1/caloriesburned"

// ExerciseClient оценивает расход калорий через API Ninjas.
type ExerciseClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewExerciseClient(apiKey string) *ExerciseClient {
	return &ExerciseClient{
		apiKey:     apiKey,
		baseURL:    defaultExerciseURL,
		httpClient: &http.Client{Timeout: gatewayTimeout},
	}
}

type exerciseItem struct {
	CaloriesPerHour float64 `json:"calories_per_hour"`
}

// CaloriesBurned возвращает оценку сожжённых калорий для активности
// (название — на английском). Справочник считает на эталонные 160 фунтов,
// поэтому результат масштабируется на вес пользователя. Любой отказ —
// неизвестная активность, нулевая ставка, сеть — это 0, не ошибка и не
// отрицательное число.
func (c *ExerciseClient) CaloriesBurned(activity string, minutes int, weightKg float64) float64 {
	q := url.Values{}
	q.Set("activity", activity)

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("exercise request: %v", err)
		return 0
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("exercise request: status %d", resp.StatusCode)
		return 0
	}

	var items []exerciseItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		log.Printf("exercise response: %v", err)
		return 0
	}
	if len(items) == 0 {
		return 0
	}

	cph := items[0].CaloriesPerHour
	if cph <= 0 {
		return 0
	}

	weightLbs := weightKg * 2.2
	return (weightLbs / 160.0) * (float64(minutes) / 60.0) * cph
}
