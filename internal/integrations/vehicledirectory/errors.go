package vehicledirectory

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда регистрационный номер
	// отсутствует в справочнике
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("vehicledirectory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе справочника
	ErrInvalidResponse = errors.New("vehicledirectory client: invalid response")
)
