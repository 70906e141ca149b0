package goals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-health-coach/internal/models"
)

func TestDailyWaterML(t *testing.T) {
	tests := []struct {
		name            string
		weightKg        float64
		activityMinutes int
		temperatureC    float64
		want            float64
	}{
		{"база без активности и жары", 70, 0, 20, 2100},
		{"полные полчаса активности и 28°C", 70, 45, 28, 3400},
		{"неполные полчаса не считаются", 70, 29, 20, 2100},
		{"ровно 25°C — без надбавки", 70, 0, 25, 2100},
		{"ровно 30°C — верх диапазона", 70, 0, 30, 3100},
		{"выше 30°C — плоская 1000", 70, 0, 42, 3100},
		{"два слота активности", 80, 60, 10, 2400 + 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DailyWaterML(tt.weightKg, tt.activityMinutes, tt.temperatureC), 1e-9)
		})
	}
}

func TestDailyWaterMLMonotonic(t *testing.T) {
	// норма не убывает ни по одному из аргументов
	weights := []float64{50, 60, 70, 90, 120}
	minutes := []int{0, 15, 30, 60, 120}
	temps := []float64{0, 10, 25, 26, 28, 30, 31, 40}

	for i := 1; i < len(weights); i++ {
		assert.GreaterOrEqual(t,
			DailyWaterML(weights[i], 30, 20), DailyWaterML(weights[i-1], 30, 20))
	}
	for i := 1; i < len(minutes); i++ {
		assert.GreaterOrEqual(t,
			DailyWaterML(70, minutes[i], 20), DailyWaterML(70, minutes[i-1], 20))
	}
	for i := 1; i < len(temps); i++ {
		assert.GreaterOrEqual(t,
			DailyWaterML(70, 0, temps[i]), DailyWaterML(70, 0, temps[i-1]))
	}
}

func TestDailyCaloriesKcal(t *testing.T) {
	t.Run("мужчина, лёгкая активность", func(t *testing.T) {
		got, err := DailyCaloriesKcal(70, 175, 30, 60, models.ActivityLight, models.GenderMale)
		require.NoError(t, err)
		assert.InDelta(t, 1888.75, got, 1e-9)
	})

	t.Run("женщина, высокая активность", func(t *testing.T) {
		got, err := DailyCaloriesKcal(60, 165, 25, 30, models.ActivityHigh, models.GenderFemale)
		require.NoError(t, err)
		// 600 + 1031.25 - 125 - 161 = 1345.25; + 30*12 = 1705.25
		assert.InDelta(t, 1705.25, got, 1e-9)
	})

	t.Run("неизвестный пол — ошибка, не дефолт", func(t *testing.T) {
		_, err := DailyCaloriesKcal(70, 175, 30, 60, models.ActivityLight, models.Gender("other"))
		require.ErrorIs(t, err, ErrInvalidGender)
	})

	t.Run("неизвестный уровень активности — ошибка", func(t *testing.T) {
		_, err := DailyCaloriesKcal(70, 175, 30, 60, models.ActivityLevel("extreme"), models.GenderMale)
		require.ErrorIs(t, err, ErrInvalidActivityLevel)
	})
}
