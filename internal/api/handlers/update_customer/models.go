package update_customer

import "github.com/motcentre/booking-service/internal/domain"

// UpdateCustomerRequest HTTP request model
// Поля свободного вида; обязательность проверяется только при отправке
type UpdateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *UpdateCustomerRequest) ToDomain() domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Notes: r.Notes,
	}
}
