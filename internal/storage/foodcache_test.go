package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-health-coach/internal/models"
)

func newTestCache(t *testing.T) *FoodCache {
	t.Helper()
	c, err := NewFoodCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestFoodCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)

	kcal := 89.5
	require.NoError(t, c.Put("Банан ", models.FoodInfo{Name: "Banana", KcalPer100: &kcal}))

	// запрос нормализуется: регистр и пробелы не важны
	info, ok, err := c.Get("банан")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Banana", info.Name)
	require.NotNil(t, info.KcalPer100)
	assert.InDelta(t, 89.5, *info.KcalPer100, 1e-9)
}

func TestFoodCacheMissingKcal(t *testing.T) {
	c := newTestCache(t)

	require.NoError(t, c.Put("вода", models.FoodInfo{Name: "Вода"}))

	info, ok, err := c.Get("вода")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, info.KcalPer100)
}

func TestFoodCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok, err := c.Get("нет такого")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFoodCacheExpiry(t *testing.T) {
	c := newTestCache(t)
	c.ttl = -time.Second // всё уже протухло

	kcal := 52.0
	require.NoError(t, c.Put("яблоко", models.FoodInfo{Name: "Apple", KcalPer100: &kcal}))

	_, ok, err := c.Get("яблоко")
	require.NoError(t, err)
	assert.False(t, ok)
}
