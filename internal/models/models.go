package models

// Gender выбирается кнопкой в мастере профиля.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel определяет ккал/мин при расчёте дневной нормы калорий.
type ActivityLevel string

const (
	ActivityLight  ActivityLevel = "light"
	ActivityMiddle ActivityLevel = "middle"
	ActivityHigh   ActivityLevel = "high"
)

// Profile is a completed user profile with derived daily goals and running
// totals. A Profile exists in the store only after the setup wizard finished;
// there is no partially-filled store record.
type Profile struct {
	ChatID          int64
	WeightKg        float64
	HeightCm        float64
	Age             int
	Gender          Gender
	ActivityMinutes int
	ActivityLevel   ActivityLevel
	City            string

	WaterGoalML     int
	CalorieGoalKcal int

	// Totals accumulate for the lifetime of the record, no day rollover.
	LoggedWaterML      int
	LoggedCaloriesKcal float64
	BurnedCaloriesKcal float64
}

// WaterRemainingML — сколько осталось до нормы, не ниже нуля.
func (p Profile) WaterRemainingML() int {
	if rem := p.WaterGoalML - p.LoggedWaterML; rem > 0 {
		return rem
	}
	return 0
}

// NetCaloriesKcal — баланс «потреблено − сожжено», может быть отрицательным.
func (p Profile) NetCaloriesKcal() float64 {
	return p.LoggedCaloriesKcal - p.BurnedCaloriesKcal
}

// ProfileDraft accumulates wizard answers. Fields are pointers so that a
// zero value ("0 минут активности") is distinguishable from "not asked yet".
type ProfileDraft struct {
	WeightKg        *float64
	HeightCm        *float64
	Age             *int
	Gender          *Gender
	ActivityMinutes *int
	ActivityLevel   *ActivityLevel
}

// Complete reports whether all wizard steps up to the city question have
// been answered.
func (d *ProfileDraft) Complete() bool {
	return d.WeightKg != nil && d.HeightCm != nil && d.Age != nil &&
		d.Gender != nil && d.ActivityMinutes != nil && d.ActivityLevel != nil
}

// FoodInfo — результат поиска продукта. KcalPer100 равен nil, когда продукт
// найден, но калорийность в базе не заполнена.
type FoodInfo struct {
	Name       string
	KcalPer100 *float64
}

// PendingFood lives between a successful food lookup and the grams answer.
type PendingFood struct {
	Name       string
	KcalPer100 *float64
}
