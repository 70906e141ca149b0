package handlers

const (
	msgStart = "Добро пожаловать! Используйте /set_profile, чтобы ввести свои данные."

	msgHelp = "<b>Доступные команды:</b>\n\n" +
		"⚙️ <b>/set_profile</b> — настроить ваш профиль.\n" +
		"❓ <b>/help</b> — сообщение с командами.\n\n" +
		"📝 <b>Логирование:</b>\n" +
		"💧 <b>/log_water</b> — записать выпитую воду.\n" +
		"🥗 <b>/log_food</b> — записать съеденный продукт.\n" +
		"🔥 <b>/log_workout</b> — записать тренировку.\n\n" +
		"📊 <b>/check_progress</b> — проверить ваш текущий прогресс по воде и калориям."

	msgNeedProfile = "Сначала настройте профиль командой /set_profile."

	promptWeight          = "Введите ваш вес (в кг):"
	promptHeight          = "Введите ваш рост (в см):"
	promptAge             = "Введите ваш возраст:"
	promptGender          = "Выберите ваш пол:"
	promptActivityMinutes = "Сколько минут активности у вас в день?"
	promptActivityLevel   = "Выберите уровень активности:"
	promptCity            = "В каком городе вы находитесь?"

	errNotNumber    = "Пожалуйста, введите число."
	errNotInteger   = "Пожалуйста, введите целое число."
	errUseButtons   = "Пожалуйста, выберите один из вариантов кнопкой."
	errBadChoice    = "Некорректный выбор."
	errWaterUsage   = "Укажите количество воды в миллилитрах, например:\n/log_water 300"
	errWaterNotML   = "Пожалуйста, введите целое число мл."
	errWaterNotPos  = "Количество воды должно быть больше 0."
	errFoodUsage    = "Формат: /log_food <название продукта>\nНапример: /log_food банан"
	errGramsNumber  = "Введите число (количество граммов)."
	errWorkoutUsage = "Используйте: /log_workout <activity> <minutes>\nНапример: /log_workout running 30 (Только английский!)"
	errWorkoutArgs  = "Нужно указать 2 аргумента: /log_workout <activity> <minutes>"
	errWorkoutMin   = "Минуты должны быть числом."
	errWorkoutPos   = "Время тренировки должно быть > 0."

	msgReminder = "💧 Напоминание: до дневной нормы воды осталось %d мл."

	// подписи кнопок
	btnGenderMale     = "Мужской"
	btnGenderFemale   = "Женский"
	btnActivityLight  = "Лёгкая"
	btnActivityMiddle = "Умеренная"
	btnActivityHigh   = "Высокая"

	// callback data
	cbGenderMale     = "gender_male"
	cbGenderFemale   = "gender_female"
	cbActivityLight  = "activity_light"
	cbActivityMiddle = "activity_middle"
	cbActivityHigh   = "activity_high"
)
