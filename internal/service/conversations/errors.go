package conversations

import "errors"

var (
	// ErrConversationNotFound возвращается, когда тред бронирования не найден
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("conversations service: internal error")
)
