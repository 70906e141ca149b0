// Package storage владеет записями пользователей. Профили живут только в
// памяти процесса; на диск уходит лишь кэш поиска продуктов (foodcache.go).
package storage

import (
	"errors"
	"sync"

	"telegram-health-coach/internal/models"
)

// ErrNoProfile — операция требует завершённый профиль, а его нет.
var ErrNoProfile = errors.New("profile not set up")

type entry struct {
	mu sync.Mutex
	p  models.Profile
}

// Store — потокобезопасная карта chat_id → профиль. Мутации одной записи
// сериализуются per-user мьютексом: пересекающиеся апдейты от платформы не
// теряют друг друга. Межпользовательских блокировок нет.
type Store struct {
	mu    sync.RWMutex
	users map[int64]*entry
}

func NewStore() *Store {
	return &Store{users: make(map[int64]*entry)}
}

func (s *Store) get(chatID int64) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[chatID]
}

// Save записывает завершённый профиль. Если запись уже была (повторный
// /set_profile), накопленные итоги сохраняются — пересчитываются только
// анкетные поля и нормы.
func (s *Store) Save(p models.Profile) {
	s.mu.Lock()
	e, ok := s.users[p.ChatID]
	if !ok {
		e = &entry{}
		s.users[p.ChatID] = e
	}
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	p.LoggedWaterML = e.p.LoggedWaterML
	p.LoggedCaloriesKcal = e.p.LoggedCaloriesKcal
	p.BurnedCaloriesKcal = e.p.BurnedCaloriesKcal
	e.p = p
}

// Get возвращает копию профиля.
func (s *Store) Get(chatID int64) (models.Profile, bool) {
	e := s.get(chatID)
	if e == nil {
		return models.Profile{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.p, true
}

// List возвращает копии всех профилей (для напоминаний).
func (s *Store) List() []models.Profile {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.users))
	for _, e := range s.users {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	res := make([]models.Profile, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		res = append(res, e.p)
		e.mu.Unlock()
	}
	return res
}

// update применяет fn под per-user мьютексом и возвращает копию результата.
func (s *Store) update(chatID int64, fn func(*models.Profile)) (models.Profile, error) {
	e := s.get(chatID)
	if e == nil {
		return models.Profile{}, ErrNoProfile
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.p)
	return e.p, nil
}

// AddWater прибавляет выпитую воду к итогу дня.
func (s *Store) AddWater(chatID int64, ml int) (models.Profile, error) {
	return s.update(chatID, func(p *models.Profile) {
		p.LoggedWaterML += ml
	})
}

// AddFood прибавляет съеденные калории.
func (s *Store) AddFood(chatID int64, kcal float64) (models.Profile, error) {
	return s.update(chatID, func(p *models.Profile) {
		p.LoggedCaloriesKcal += kcal
	})
}

// AddWorkout прибавляет сожжённые калории и поднимает норму воды:
// цель растёт вместе с нагрузкой, выпитое не трогаем.
func (s *Store) AddWorkout(chatID int64, burnedKcal float64, extraWaterML int) (models.Profile, error) {
	return s.update(chatID, func(p *models.Profile) {
		p.BurnedCaloriesKcal += burnedKcal
		p.WaterGoalML += extraWaterML
	})
}
