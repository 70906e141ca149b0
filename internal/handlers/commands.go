package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"telegram-health-coach/internal/gateways"
	"telegram-health-coach/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) HandleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.reply(msg.Chat.ID, msgStart)
	case "help":
		h.replyHTML(msg.Chat.ID, msgHelp)
	case "set_profile":
		h.cmdSetProfile(msg)
	case "log_water":
		h.cmdLogWater(msg)
	case "log_food":
		h.cmdLogFood(msg)
	case "log_workout":
		h.cmdLogWorkout(msg)
	case "check_progress":
		h.cmdCheckProgress(msg)
	}
}

// ---------------- /set_profile --------------------

func (h *Handler) cmdSetProfile(msg *tgbotapi.Message) {
	h.startSession(msg.Chat.ID, &models.Session{State: models.StateAwaitingWeight})
	h.reply(msg.Chat.ID, promptWeight)
}

// ---------------- /log_water --------------------

func (h *Handler) cmdLogWater(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if _, ok := h.Store.Get(chatID); !ok {
		h.reply(chatID, msgNeedProfile)
		return
	}

	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		h.reply(chatID, errWaterUsage)
		return
	}
	amount, err := strconv.Atoi(args)
	if err != nil {
		h.reply(chatID, errWaterNotML)
		return
	}
	if amount <= 0 {
		h.reply(chatID, errWaterNotPos)
		return
	}

	p, err := h.Store.AddWater(chatID, amount)
	if err != nil {
		h.reply(chatID, msgNeedProfile)
		return
	}

	if delta := p.WaterGoalML - p.LoggedWaterML; delta > 0 {
		h.reply(chatID, fmt.Sprintf(
			"Вы добавили %d мл. воды.\nВсего выпито: %d мл.\nОсталось до нормы: %d мл.",
			amount, p.LoggedWaterML, delta))
	} else {
		h.reply(chatID, fmt.Sprintf(
			"Вы добавили %d мл. воды.\nВсего выпито: %d мл.\nПоздравляю!🎊 Вы достигли (или превысили) дневную норму воды.",
			amount, p.LoggedWaterML))
	}
}

// ---------------- /log_food --------------------

func (h *Handler) cmdLogFood(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if _, ok := h.Store.Get(chatID); !ok {
		h.reply(chatID, msgNeedProfile)
		return
	}

	query := strings.TrimSpace(msg.CommandArguments())
	if query == "" {
		h.reply(chatID, errFoodUsage)
		return
	}

	info, err := h.Food.Lookup(query)
	if err != nil {
		if !errors.Is(err, gateways.ErrFoodNotFound) {
			log.Printf("food lookup %q: %v", query, err)
		}
		h.reply(chatID, fmt.Sprintf("Не удалось найти продукт '%s' в базе OpenFoodFacts.", query))
		return
	}

	h.startSession(chatID, &models.Session{
		State: models.StateAwaitingFoodGrams,
		Food:  &models.PendingFood{Name: info.Name, KcalPer100: info.KcalPer100},
	})

	kcalText := "нет данных"
	if info.KcalPer100 != nil {
		kcalText = formatFloat(*info.KcalPer100)
	}
	h.reply(chatID, fmt.Sprintf(
		"Найдено: %s.\nКалорийность: %s ккал на 100 г.\nСколько грамм вы съели?",
		info.Name, kcalText))
}

// ---------------- /log_workout --------------------

func (h *Handler) cmdLogWorkout(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	p, ok := h.Store.Get(chatID)
	if !ok {
		h.reply(chatID, msgNeedProfile)
		return
	}

	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		h.reply(chatID, errWorkoutUsage)
		return
	}
	parts := strings.Fields(args)
	if len(parts) < 2 {
		h.reply(chatID, errWorkoutArgs)
		return
	}

	activity := parts[0]
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		h.reply(chatID, errWorkoutMin)
		return
	}
	if minutes <= 0 {
		h.reply(chatID, errWorkoutPos)
		return
	}

	burned := h.Exercise.CaloriesBurned(activity, minutes, p.WeightKg)
	if burned == 0 {
		h.reply(chatID, fmt.Sprintf("Не удалось найти/рассчитать калории для '%s'.", activity))
		return
	}

	extraWater := minutes / 30 * 200
	p, err = h.Store.AddWorkout(chatID, burned, extraWater)
	if err != nil {
		h.reply(chatID, msgNeedProfile)
		return
	}

	text := fmt.Sprintf(
		"Тренировка: %s, %d мин.\nСожжено (примерно): %.1f ккал.\nВсего сожжено за сегодня: %.1f ккал.\n\n",
		activity, minutes, burned, p.BurnedCaloriesKcal)

	if extraWater > 0 {
		text += fmt.Sprintf(
			"Дополнительно: +%d мл. воды (по 200 мл за каждые 30 минут).\nВсего выпито: %d мл.\nОсталось выпить: %d мл.",
			extraWater, p.LoggedWaterML, p.WaterGoalML-p.LoggedWaterML)
	} else {
		text += fmt.Sprintf(
			"До 30 минут — без добавки воды.\nВсего выпито: %d мл.\nОсталось выпить: %d мл.",
			p.LoggedWaterML, p.WaterGoalML-p.LoggedWaterML)
	}
	h.reply(chatID, text)
}

// ---------------- /check_progress --------------------

func (h *Handler) cmdCheckProgress(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	p, ok := h.Store.Get(chatID)
	if !ok {
		h.reply(chatID, msgNeedProfile)
		return
	}

	text := "<b>📊 Прогресс</b>\n\n" +
		"<u>💧 Вода</u>:\n" +
		fmt.Sprintf("- Выпито: %d мл из %d мл\n", p.LoggedWaterML, p.WaterGoalML) +
		fmt.Sprintf("- Осталось: %d мл\n\n", p.WaterRemainingML()) +
		"<u>🥗 Калории</u>:\n" +
		fmt.Sprintf("- Потреблено: %.1f ккал из %d ккал\n", p.LoggedCaloriesKcal, p.CalorieGoalKcal) +
		fmt.Sprintf("- Сожжено: %.1f ккал\n", p.BurnedCaloriesKcal) +
		fmt.Sprintf("- Баланс (потреблённые - сожжённые): %.1f ккал\n", p.NetCaloriesKcal())

	h.replyHTML(chatID, text)
}

// formatFloat печатает число без хвостовых нулей ("89.5", "250").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
