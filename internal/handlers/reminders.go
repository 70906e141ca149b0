package handlers

import (
	"fmt"

	"telegram-health-coach/internal/models"
)

// SendWaterReminder шлёт напоминание пользователю, который ещё не добрал
// дневную норму воды. Вызывается планировщиком; итоги не трогает.
func (h *Handler) SendWaterReminder(p models.Profile) {
	remaining := p.WaterRemainingML()
	if remaining <= 0 {
		return
	}
	h.reply(p.ChatID, fmt.Sprintf(msgReminder, remaining))
}
