// Package handlers — диалоговый контроллер бота: маршрутизация команд,
// пошаговые мастера (профиль, еда) и операции логирования.
package handlers

import (
	"log"
	"sync"

	"telegram-health-coach/internal/models"
	"telegram-health-coach/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender — то, что хендлерам нужно от *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// WeatherGateway отдаёт текущую температуру в городе, °C.
type WeatherGateway interface {
	CurrentTemperature(city string) (float64, error)
}

// FoodGateway ищет продукт по свободному тексту.
type FoodGateway interface {
	Lookup(query string) (models.FoodInfo, error)
}

// ExerciseGateway оценивает сожжённые калории; 0 — «не знаю такую активность».
type ExerciseGateway interface {
	CaloriesBurned(activity string, minutes int, weightKg float64) float64
}

type Handler struct {
	Bot      Sender
	Store    *storage.Store
	Weather  WeatherGateway
	Food     FoodGateway
	Exercise ExerciseGateway

	mu       sync.Mutex
	chatLock map[int64]*sync.Mutex
	sessions map[int64]*models.Session
}

func NewHandler(bot Sender, store *storage.Store, w WeatherGateway, f FoodGateway, e ExerciseGateway) *Handler {
	return &Handler{
		Bot:      bot,
		Store:    store,
		Weather:  w,
		Food:     f,
		Exercise: e,
		chatLock: make(map[int64]*sync.Mutex),
		sessions: make(map[int64]*models.Session),
	}
}

// HandleUpdate обрабатывает одно обновление. События одного чата
// сериализуются per-chat мьютексом, разные чаты идут параллельно.
func (h *Handler) HandleUpdate(upd tgbotapi.Update) {
	var chatID int64
	switch {
	case upd.Message != nil:
		chatID = upd.Message.Chat.ID
	case upd.CallbackQuery != nil && upd.CallbackQuery.Message != nil:
		chatID = upd.CallbackQuery.Message.Chat.ID
	default:
		return
	}

	unlock := h.lockChat(chatID)
	defer unlock()

	switch {
	case upd.Message != nil:
		if upd.Message.IsCommand() {
			h.HandleCommand(upd.Message)
		} else {
			h.HandleText(upd.Message)
		}
	case upd.CallbackQuery != nil:
		h.HandleCallback(upd.CallbackQuery)
	}
}

func (h *Handler) lockChat(chatID int64) func() {
	h.mu.Lock()
	m, ok := h.chatLock[chatID]
	if !ok {
		m = &sync.Mutex{}
		h.chatLock[chatID] = m
	}
	h.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// ---------------- сессии мастеров ----------------

func (h *Handler) session(chatID int64) *models.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessions[chatID]
}

// startSession заменяет любую текущую сессию: пользователь не может вести
// два мастера одновременно, новый старт молча бросает старый.
func (h *Handler) startSession(chatID int64, s *models.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[chatID] = s
}

func (h *Handler) clearSession(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, chatID)
}

// ---------------- отправка ----------------

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

func (h *Handler) replyHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := h.Bot.Send(msg); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

func (h *Handler) replyWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.Bot.Send(msg); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}
