package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"telegram-health-coach/internal/goals"
	"telegram-health-coach/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleText ведёт активный мастер. Текст вне мастера игнорируется.
func (h *Handler) HandleText(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	s := h.session(chatID)
	if s == nil {
		return
	}
	text := strings.TrimSpace(msg.Text)

	switch s.State {
	case models.StateAwaitingWeight:
		w, err := parseFloat(text)
		if err != nil {
			h.reply(chatID, errNotNumber)
			return
		}
		s.Draft.WeightKg = &w
		s.State = models.StateAwaitingHeight
		h.reply(chatID, promptHeight)

	case models.StateAwaitingHeight:
		v, err := parseFloat(text)
		if err != nil {
			h.reply(chatID, errNotNumber)
			return
		}
		s.Draft.HeightCm = &v
		s.State = models.StateAwaitingAge
		h.reply(chatID, promptAge)

	case models.StateAwaitingAge:
		age, err := strconv.Atoi(text)
		if err != nil {
			h.reply(chatID, errNotInteger)
			return
		}
		s.Draft.Age = &age
		s.State = models.StateAwaitingGender
		h.replyWithKeyboard(chatID, promptGender, genderKeyboard())

	case models.StateAwaitingGender:
		// выбор только кнопкой
		h.replyWithKeyboard(chatID, errUseButtons, genderKeyboard())

	case models.StateAwaitingActivityMinutes:
		minutes, err := strconv.Atoi(text)
		if err != nil {
			h.reply(chatID, errNotInteger)
			return
		}
		s.Draft.ActivityMinutes = &minutes
		s.State = models.StateAwaitingActivityLevel
		h.replyWithKeyboard(chatID, promptActivityLevel, activityKeyboard())

	case models.StateAwaitingActivityLevel:
		h.replyWithKeyboard(chatID, errUseButtons, activityKeyboard())

	case models.StateAwaitingCity:
		h.finishProfile(chatID, s, text)

	case models.StateAwaitingFoodGrams:
		h.handleFoodGrams(chatID, s, text)
	}
}

// finishProfile — терминальный шаг мастера: погода, расчёт норм, запись
// профиля в стор, сводка.
func (h *Handler) finishProfile(chatID int64, s *models.Session, city string) {
	temperature, err := h.Weather.CurrentTemperature(city)
	if err != nil {
		log.Printf("weather lookup %q: %v", city, err)
		h.reply(chatID, fmt.Sprintf(
			"Не удалось получить температуру для '%s'. Считаем, что на улице 20°C.", city))
		temperature = 20
	}

	d := s.Draft
	if !d.Complete() {
		// сюда можно попасть только при ошибке в переходах мастера
		log.Printf("profile draft incomplete for %d at city step", chatID)
		h.clearSession(chatID)
		h.reply(chatID, msgNeedProfile)
		return
	}

	waterGoal := goals.DailyWaterML(*d.WeightKg, *d.ActivityMinutes, temperature)
	calorieGoal, err := goals.DailyCaloriesKcal(
		*d.WeightKg, *d.HeightCm, *d.Age, *d.ActivityMinutes, *d.ActivityLevel, *d.Gender)
	if err != nil {
		// FSM пропускает только валидные значения, сюда доходить не должно
		log.Printf("goal calculation for %d: %v", chatID, err)
		h.clearSession(chatID)
		h.reply(chatID, msgNeedProfile)
		return
	}

	p := models.Profile{
		ChatID:          chatID,
		WeightKg:        *d.WeightKg,
		HeightCm:        *d.HeightCm,
		Age:             *d.Age,
		Gender:          *d.Gender,
		ActivityMinutes: *d.ActivityMinutes,
		ActivityLevel:   *d.ActivityLevel,
		City:            city,
		WaterGoalML:     int(waterGoal),
		CalorieGoalKcal: int(calorieGoal),
	}
	h.Store.Save(p)
	h.clearSession(chatID)

	summary := "<b>Ваш профиль успешно сохранён!</b>\n" +
		fmt.Sprintf("⚖️ <b>Вес:</b> %s кг\n", formatFloat(p.WeightKg)) +
		fmt.Sprintf("📏 <b>Рост:</b> %s см\n", formatFloat(p.HeightCm)) +
		fmt.Sprintf("🌟 <b>Возраст:</b> %d\n", p.Age) +
		fmt.Sprintf("👤 <b>Пол:</b> %s\n", genderText(p.Gender)) +
		fmt.Sprintf("💪️ <b>Активность:</b> %d мин/день (%s)\n", p.ActivityMinutes, activityText(p.ActivityLevel)) +
		fmt.Sprintf("🏙️ <b>Город:</b> %s (температура: %s°C)\n\n", p.City, formatFloat(temperature)) +
		"Рассчитанные нормы:\n" +
		fmt.Sprintf("💧 <b>Вода:</b> %d мл/день\n", p.WaterGoalML) +
		fmt.Sprintf("🥗 <b>Калории:</b> %d ккал/день\n", p.CalorieGoalKcal)

	h.replyHTML(chatID, summary)
}

func genderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnGenderMale, cbGenderMale),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnGenderFemale, cbGenderFemale),
		),
	)
}

func activityKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnActivityLight, cbActivityLight),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnActivityMiddle, cbActivityMiddle),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnActivityHigh, cbActivityHigh),
		),
	)
}

func genderText(g models.Gender) string {
	if g == models.GenderMale {
		return btnGenderMale
	}
	return btnGenderFemale
}

func activityText(l models.ActivityLevel) string {
	switch l {
	case models.ActivityLight:
		return btnActivityLight
	case models.ActivityMiddle:
		return btnActivityMiddle
	default:
		return btnActivityHigh
	}
}

// parseFloat принимает и запятую, и точку как десятичный разделитель.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
