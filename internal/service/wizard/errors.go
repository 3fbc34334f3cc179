package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("wizard session not found")

	// ErrSessionCompleted возвращается при попытке изменить сессию
	// после успешной отправки бронирования
	ErrSessionCompleted = errors.New("wizard session already completed")

	// ErrVehicleNotFound возвращается, когда регистрационный номер
	// отсутствует в справочнике
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrDateNotSelectable возвращается для даты в прошлом или выходного дня
	ErrDateNotSelectable = errors.New("date is not selectable")

	// ErrInvalidSlot возвращается, когда время не входит в дневное расписание
	ErrInvalidSlot = errors.New("time slot is not offered")

	// ErrMissingSelection возвращается при отправке без выбранного
	// автомобиля или даты со слотом
	ErrMissingSelection = errors.New("booking steps are not complete")

	// ErrMissingContact возвращается при отправке с пустыми обязательными
	// контактными полями
	ErrMissingContact = errors.New("required contact details are missing")

	// ErrSubmissionInProgress возвращается при повторной отправке,
	// пока предыдущая ещё не завершилась
	ErrSubmissionInProgress = errors.New("submission already in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard service: internal error")
)
