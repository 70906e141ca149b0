package gateways

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-health-coach/internal/models"
)

func TestWeatherClient(t *testing.T) {
	t.Run("успешный ответ", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "metric", r.URL.Query().Get("units"))
			assert.Equal(t, "Москва", r.URL.Query().Get("q"))
			w.Write([]byte(`{"main":{"temp":23.5}}`))
		}))
		defer srv.Close()

		c := NewWeatherClient("key")
		c.baseURL = srv.URL

		temp, err := c.CurrentTemperature("Москва")
		require.NoError(t, err)
		assert.InDelta(t, 23.5, temp, 1e-9)
	})

	t.Run("город не найден", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewWeatherClient("key")
		c.baseURL = srv.URL

		_, err := c.CurrentTemperature("Нарния")
		require.ErrorIs(t, err, ErrCityNotFound)
	})

	t.Run("плохой ключ", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := NewWeatherClient("bad")
		c.baseURL = srv.URL

		_, err := c.CurrentTemperature("Москва")
		require.ErrorIs(t, err, ErrBadAPIKey)
	})
}

type mapCache struct {
	m map[string]models.FoodInfo
}

func (c *mapCache) Get(q string) (models.FoodInfo, bool, error) {
	info, ok := c.m[q]
	return info, ok, nil
}

func (c *mapCache) Put(q string, info models.FoodInfo) error {
	c.m[q] = info
	return nil
}

func TestFoodClient(t *testing.T) {
	t.Run("первый продукт из выдачи", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"products":[
				{"product_name":"Banana","nutriments":{"energy-kcal_100g":89.5}},
				{"product_name":"Banana chips","nutriments":{"energy-kcal_100g":520}}
			]}`))
		}))
		defer srv.Close()

		c := NewFoodClient(nil)
		c.baseURL = srv.URL

		info, err := c.Lookup("банан")
		require.NoError(t, err)
		assert.Equal(t, "Banana", info.Name)
		require.NotNil(t, info.KcalPer100)
		assert.InDelta(t, 89.5, *info.KcalPer100, 1e-9)
	})

	t.Run("без калорийности — nil, не ошибка", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"products":[{"product_name":"Вода","nutriments":{}}]}`))
		}))
		defer srv.Close()

		c := NewFoodClient(nil)
		c.baseURL = srv.URL

		info, err := c.Lookup("вода")
		require.NoError(t, err)
		assert.Nil(t, info.KcalPer100)
	})

	t.Run("пустая выдача — ErrFoodNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"products":[]}`))
		}))
		defer srv.Close()

		c := NewFoodClient(nil)
		c.baseURL = srv.URL

		_, err := c.Lookup("абракадабра")
		require.ErrorIs(t, err, ErrFoodNotFound)
	})

	t.Run("попадание в кэш не ходит в сеть", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(`{"products":[{"product_name":"Banana","nutriments":{"energy-kcal_100g":89.5}}]}`))
		}))
		defer srv.Close()

		c := NewFoodClient(&mapCache{m: map[string]models.FoodInfo{}})
		c.baseURL = srv.URL

		_, err := c.Lookup("банан")
		require.NoError(t, err)
		_, err = c.Lookup("банан")
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestExerciseClient(t *testing.T) {
	t.Run("масштабирование по весу и времени", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
			w.Write([]byte(`[{"calories_per_hour":600}]`))
		}))
		defer srv.Close()

		c := NewExerciseClient("secret")
		c.baseURL = srv.URL

		// (70*2.2/160) * (30/60) * 600
		assert.InDelta(t, 288.75, c.CaloriesBurned("running", 30, 70), 1e-9)
	})

	t.Run("неизвестная активность — 0", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		c := NewExerciseClient("secret")
		c.baseURL = srv.URL

		assert.Zero(t, c.CaloriesBurned("левитация", 30, 70))
	})

	t.Run("неположительная ставка — 0, не отрицательное", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"calories_per_hour":-10}]`))
		}))
		defer srv.Close()

		c := NewExerciseClient("secret")
		c.baseURL = srv.URL

		assert.Zero(t, c.CaloriesBurned("running", 30, 70))
	})

	t.Run("сбой сети — 0", func(t *testing.T) {
		c := NewExerciseClient("secret")
		c.baseURL = "http://127.0.0.1:1"

		assert.Zero(t, c.CaloriesBurned("running", 30, 70))
	})
}
