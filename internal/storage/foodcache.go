package storage

import (
	"database/sql"
	"embed"
	"errors"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"telegram-health-coach/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

// FoodCache хранит ответы поиска продуктов, чтобы не дёргать OpenFoodFacts
// на каждый повторный "банан". Пользовательских данных здесь нет.
type FoodCache struct {
	db  *sql.DB
	ttl time.Duration
}

const defaultFoodTTL = 24 * time.Hour

func NewFoodCache(path string) (*FoodCache, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &FoodCache{db: db, ttl: defaultFoodTTL}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

func (c *FoodCache) Close() error { return c.db.Close() }

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Get возвращает закэшированный результат, если он есть и не протух.
func (c *FoodCache) Get(query string) (models.FoodInfo, bool, error) {
	var (
		name     string
		kcal     sql.NullFloat64
		cachedAt int64
	)
	err := c.db.QueryRow(`
        SELECT name, kcal_per_100, cached_at
        FROM food_cache WHERE query=?`, normalizeQuery(query),
	).Scan(&name, &kcal, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FoodInfo{}, false, nil
	}
	if err != nil {
		return models.FoodInfo{}, false, err
	}
	if time.Since(time.Unix(cachedAt, 0)) > c.ttl {
		return models.FoodInfo{}, false, nil
	}

	info := models.FoodInfo{Name: name}
	if kcal.Valid {
		v := kcal.Float64
		info.KcalPer100 = &v
	}
	return info, true, nil
}

// Put сохраняет результат поиска. Повторный запрос перезаписывает запись.
func (c *FoodCache) Put(query string, info models.FoodInfo) error {
	var kcal sql.NullFloat64
	if info.KcalPer100 != nil {
		kcal = sql.NullFloat64{Float64: *info.KcalPer100, Valid: true}
	}
	_, err := c.db.Exec(`
        INSERT INTO food_cache(query, name, kcal_per_100, cached_at)
        VALUES (?,?,?,?)
        ON CONFLICT(query) DO UPDATE SET name=excluded.name,
            kcal_per_100=excluded.kcal_per_100,
            cached_at=excluded.cached_at
    `, normalizeQuery(query), info.Name, kcal, time.Now().Unix())
	return err
}
