package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/motcentre/booking-service/internal/domain"
	bookingsRepo "github.com/motcentre/booking-service/internal/infra/storage/bookings"
	messagesRepo "github.com/motcentre/booking-service/internal/infra/storage/messages"
	reportsRepo "github.com/motcentre/booking-service/internal/infra/storage/reports"
	"github.com/motcentre/booking-service/pkg/types"
)

const staffSenderName = "MOT Staff"

type seedBooking struct {
	booking  domain.Booking
	messages []seedMessage
	unread   int
}

type seedMessage struct {
	sender  string
	content string
	isStaff bool
	age     time.Duration // Давность относительно "сейчас"
}

// SeedDemo наполняет пустой реестр демонстрационными данными:
// четыре бронирования с тредами сообщений и пять отчётов.
// Даты сдвинуты относительно текущего момента, чтобы на дашборде
// были и предстоящие, и завершённые записи
func SeedDemo(
	ctx context.Context,
	bookings *bookingsRepo.Repository,
	messages *messagesRepo.Repository,
	reports *reportsRepo.Repository,
) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	seeds := []seedBooking{
		{
			booking: domain.Booking{
				CustomerName:   "John Smith",
				CustomerEmail:  "john.smith@example.com",
				CustomerPhone:  "07700900001",
				Registration:   "AB12CDE",
				VehicleDetails: "Ford Focus (2018)",
				BookingDate:    today.AddDate(0, 0, 7),
				StartTime:      types.TimeString("09:00"),
				Status:         domain.StatusConfirmed,
			},
			messages: []seedMessage{
				{"John Smith", "Hello, I need to reschedule my MOT appointment from Friday to next week if possible.", false, 26 * time.Hour},
			},
			unread: 1,
		},
		{
			booking: domain.Booking{
				CustomerName:   "Sarah Johnson",
				CustomerEmail:  "sarah.johnson@example.com",
				CustomerPhone:  "07700900002",
				Registration:   "XY58ABC",
				VehicleDetails: "Volkswagen Golf (2020)",
				BookingDate:    today.AddDate(0, 0, 8),
				StartTime:      types.TimeString("10:30"),
				Status:         domain.StatusConfirmed,
			},
			messages: []seedMessage{
				{"Sarah Johnson", "Hi there, I just wanted to book an MOT test for my Volkswagen Golf.", false, 50 * time.Hour},
				{staffSenderName, "Hello Sarah, I've booked you in for next Wednesday at 10:30am. Does that work for you?", true, 49 * time.Hour},
				{"Sarah Johnson", "That's perfect, thanks for your help!", false, 48 * time.Hour},
			},
		},
		{
			booking: domain.Booking{
				CustomerName:   "Mike Williams",
				CustomerEmail:  "mike.williams@example.com",
				CustomerPhone:  "07700900003",
				Registration:   "LK70MNO",
				VehicleDetails: "Toyota Prius (2021)",
				BookingDate:    today.AddDate(0, 0, -10),
				StartTime:      types.TimeString("14:00"),
				Status:         domain.StatusCompleted,
			},
			messages: []seedMessage{
				{"Mike Williams", "I completed my MOT test yesterday, when will the report be available?", false, 96 * time.Hour},
				{"Mike Williams", "Also, will I receive a notification when it's ready?", false, 95 * time.Hour},
			},
			unread: 2,
		},
		{
			booking: domain.Booking{
				CustomerName:   "Emma Brown",
				CustomerEmail:  "emma.brown@example.com",
				CustomerPhone:  "07700900004",
				Registration:   "PQ19RST",
				VehicleDetails: "Nissan Qashqai (2019)",
				BookingDate:    today.AddDate(0, 0, -3),
				StartTime:      types.TimeString("11:00"),
				Status:         domain.StatusCancelled,
			},
			messages: []seedMessage{
				{"Emma Brown", "I received the repair quote but I have some questions about it.", false, 120 * time.Hour},
				{staffSenderName, "Hi Emma, I'd be happy to answer any questions you have. What would you like to know?", true, 119 * time.Hour},
				{"Emma Brown", "Is there any update on my repair quote?", false, 118 * time.Hour},
			},
		},
	}

	for _, seed := range seeds {
		booking := seed.booking
		created, err := bookings.Create(ctx, &booking)
		if err != nil {
			return fmt.Errorf("storage: seed booking for %s: %w", booking.CustomerName, err)
		}

		for _, m := range seed.messages {
			msg := &domain.Message{
				ID:         uuid.NewString(),
				BookingID:  created.ID,
				SenderName: m.sender,
				Content:    m.content,
				IsStaff:    m.isStaff,
				CreatedAt:  now.Add(-m.age),
			}
			if _, err := messages.Append(ctx, msg); err != nil {
				return fmt.Errorf("storage: seed message for booking %d: %w", created.ID, err)
			}
		}

		for i := 0; i < seed.unread; i++ {
			if err := bookings.IncrementUnread(ctx, created.ID); err != nil {
				return fmt.Errorf("storage: seed unread count for booking %d: %w", created.ID, err)
			}
		}
	}

	reportSeeds := []domain.Report{
		{
			CustomerName:   "John Smith",
			Registration:   "AB12CDE",
			VehicleDetails: "Ford Focus (2018)",
			Type:           domain.ReportTypeMOT,
			Status:         domain.ReportStatusCompleted,
			ReportedAt:     today.AddDate(0, 0, -10).Add(14 * time.Hour),
		},
		{
			CustomerName:   "Sarah Johnson",
			Registration:   "XY58ABC",
			VehicleDetails: "Volkswagen Golf (2020)",
			Type:           domain.ReportTypeMOT,
			Status:         domain.ReportStatusPending,
			ReportedAt:     today.AddDate(0, 0, -5).Add(10*time.Hour + 30*time.Minute),
		},
		{
			CustomerName:   "Mike Williams",
			Registration:   "LK70MNO",
			VehicleDetails: "Toyota Prius (2021)",
			Type:           domain.ReportTypeDiagnostic,
			Status:         domain.ReportStatusCompleted,
			ReportedAt:     today.AddDate(0, 0, -14).Add(11*time.Hour + 15*time.Minute),
		},
		{
			CustomerName:   "Emma Brown",
			Registration:   "PQ19RST",
			VehicleDetails: "Nissan Qashqai (2019)",
			Type:           domain.ReportTypeService,
			Status:         domain.ReportStatusCompleted,
			ReportedAt:     today.AddDate(0, 0, -18).Add(9*time.Hour + 45*time.Minute),
		},
		{
			CustomerName:   "David Lee",
			Registration:   "GH45IJK",
			VehicleDetails: "Audi A3 (2022)",
			Type:           domain.ReportTypeDiagnostic,
			Status:         domain.ReportStatusInProgress,
			ReportedAt:     today.AddDate(0, 0, -2).Add(15*time.Hour + 30*time.Minute),
		},
	}

	for i := range reportSeeds {
		if _, err := reports.Create(ctx, &reportSeeds[i]); err != nil {
			return fmt.Errorf("storage: seed report for %s: %w", reportSeeds[i].CustomerName, err)
		}
	}

	return nil
}
