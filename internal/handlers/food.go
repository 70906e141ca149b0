package handlers

import (
	"fmt"

	"telegram-health-coach/internal/models"
)

// handleFoodGrams — второй шаг мастера еды: граммовка съеденного.
func (h *Handler) handleFoodGrams(chatID int64, s *models.Session, text string) {
	grams, err := parseFloat(text)
	if err != nil {
		h.reply(chatID, errGramsNumber)
		return
	}

	pending := s.Food
	if pending == nil {
		// граммовка без найденного продукта — битая сессия
		h.clearSession(chatID)
		return
	}

	// продукт найден, но калорийности в базе нет — отдельный отказ
	if pending.KcalPer100 == nil {
		h.clearSession(chatID)
		h.reply(chatID, fmt.Sprintf(
			"Не удалось получить данные о калорийности для продукта: %s.", pending.Name))
		return
	}

	totalKcal := *pending.KcalPer100 * grams / 100
	p, err := h.Store.AddFood(chatID, totalKcal)
	if err != nil {
		h.clearSession(chatID)
		h.reply(chatID, msgNeedProfile)
		return
	}

	h.clearSession(chatID)
	h.reply(chatID, fmt.Sprintf(
		"Записано: %s ~ %s г = %.1f ккал.\nВсего за сегодня: %.1f ккал.",
		pending.Name, formatFloat(grams), totalKcal, p.LoggedCaloriesKcal))
}
