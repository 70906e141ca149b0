// Package goals содержит чистые функции расчёта дневных норм воды и калорий.
package goals

import (
	"errors"

	"telegram-health-coach/internal/models"
)

var (
	ErrInvalidGender        = errors.New("gender must be male or female")
	ErrInvalidActivityLevel = errors.New("activity level must be light, middle or high")
)

// activityKcalPerMinute — ккал за минуту активности по уровню.
var activityKcalPerMinute = map[models.ActivityLevel]float64{
	models.ActivityLight:  4,
	models.ActivityMiddle: 8,
	models.ActivityHigh:   12,
}

// DailyWaterML рассчитывает дневную норму воды в мл.
//
//  1. Базовая норма: вес (кг) × 30 мл.
//  2. +500 мл за каждые полные 30 минут активности.
//  3. Надбавка за температуру: до 25°C — ничего; от 25 до 30°C —
//     500 мл + 100 мл за каждый градус выше 25; выше 30°C — ровно 1000 мл.
func DailyWaterML(weightKg float64, activityMinutes int, temperatureC float64) float64 {
	water := weightKg * 30
	water += float64(activityMinutes/30) * 500

	switch {
	case temperatureC > 30:
		water += 1000
	case temperatureC > 25:
		water += 500 + (temperatureC-25)*100
	}

	return water
}

// DailyCaloriesKcal рассчитывает дневную норму калорий: BMR по формуле
// Миффлина-Сан Жеора плюс расход на заявленную активность.
//
// Неизвестный пол или уровень активности — ошибка, а не значение по
// умолчанию: до калькулятора такие значения доходить не должны.
func DailyCaloriesKcal(weightKg, heightCm float64, age, activityMinutes int, level models.ActivityLevel, gender models.Gender) (float64, error) {
	var bmr float64
	switch gender {
	case models.GenderMale:
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	case models.GenderFemale:
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
	default:
		return 0, ErrInvalidGender
	}

	rate, ok := activityKcalPerMinute[level]
	if !ok {
		return 0, ErrInvalidActivityLevel
	}

	return bmr + float64(activityMinutes)*rate, nil
}
