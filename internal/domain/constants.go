package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
)

// Business validation constants
const (
	MaxRegistrationLength = 8
	MaxNotesLength        = 500
	MaxMessageLength      = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ReferencePrefix префикс публичного номера бронирования
const ReferencePrefix = "MOT-"
