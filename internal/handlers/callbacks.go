package handlers

import (
	"fmt"

	"telegram-health-coach/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleCallback обрабатывает нажатия inline-кнопок мастера профиля.
// Кнопки из чужого состояния (старая клавиатура, повторный клик) молча
// подтверждаются и игнорируются.
func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	s := h.session(chatID)

	defer func() {
		// всегда отвечаем, чтобы убрать «часики»
		_, _ = h.Bot.Request(tgbotapi.NewCallback(cq.ID, ""))
	}()

	if s == nil {
		return
	}

	switch s.State {
	case models.StateAwaitingGender:
		h.handleGenderChoice(chatID, s, cq.Data)
	case models.StateAwaitingActivityLevel:
		h.handleActivityChoice(chatID, s, cq.Data)
	}
}

func (h *Handler) handleGenderChoice(chatID int64, s *models.Session, data string) {
	var g models.Gender
	switch data {
	case cbGenderMale:
		g = models.GenderMale
	case cbGenderFemale:
		g = models.GenderFemale
	default:
		h.reply(chatID, errBadChoice)
		return
	}

	s.Draft.Gender = &g
	s.State = models.StateAwaitingActivityMinutes

	h.reply(chatID, fmt.Sprintf("Вы выбрали: %s", genderText(g)))
	h.reply(chatID, promptActivityMinutes)
}

func (h *Handler) handleActivityChoice(chatID int64, s *models.Session, data string) {
	var lvl models.ActivityLevel
	switch data {
	case cbActivityLight:
		lvl = models.ActivityLight
	case cbActivityMiddle:
		lvl = models.ActivityMiddle
	case cbActivityHigh:
		lvl = models.ActivityHigh
	default:
		h.reply(chatID, errBadChoice)
		return
	}

	s.Draft.ActivityLevel = &lvl
	s.State = models.StateAwaitingCity

	h.reply(chatID, fmt.Sprintf("Вы выбрали уровень активности: %s", activityText(lvl)))
	h.reply(chatID, promptCity)
}
