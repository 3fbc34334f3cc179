package messages

import "errors"

var (
	// ErrNoMessages возвращается, когда у бронирования нет сообщений
	ErrNoMessages = errors.New("messages.repository: no messages")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("messages.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("messages.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("messages.repository: failed to scan row")
)
