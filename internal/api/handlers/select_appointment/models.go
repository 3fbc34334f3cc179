package select_appointment

// SelectAppointmentRequest HTTP request model
// TimeSlot опционален: дата без слота — промежуточное состояние шага 2
type SelectAppointmentRequest struct {
	Date     string `json:"date"`               // "2026-09-07"
	TimeSlot string `json:"timeSlot,omitempty"` // "10:00"
}
