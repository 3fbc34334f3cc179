package submit_booking

import "github.com/motcentre/booking-service/internal/domain"

// Request запрос на отправку бронирования из сессии мастера
type Request struct {
	SessionID string
}

// Response результат успешной отправки
type Response struct {
	Booking *domain.Booking
}
