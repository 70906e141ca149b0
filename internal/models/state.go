package models

// State stores transient FSM states (waiting text input)
type State int

const (
	StateNone State = iota

	// profile wizard, strict linear order
	StateAwaitingWeight
	StateAwaitingHeight
	StateAwaitingAge
	StateAwaitingGender
	StateAwaitingActivityMinutes
	StateAwaitingActivityLevel
	StateAwaitingCity

	// food wizard
	StateAwaitingFoodGrams
)

// Session — активный диалог одного пользователя. У пользователя не бывает
// двух мастеров одновременно: старт нового мастера сбрасывает сессию.
type Session struct {
	State State
	Draft ProfileDraft
	Food  *PendingFood
}
