// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"glowdesk-backend/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		log.Printf("Failed to schedule reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	var salons []models.User
	if err := s.db.Find(&salons, "is_active = ? AND role = ?", true, "owner").Error; err != nil {
		log.Printf("Failed to fetch salons: %v", err)
		return
	}

	for _, salon := range salons {
		s.ProcessSalonReminders(salon)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) ProcessSalonReminders(salon models.User) {
	if salon.BirthdayReminders {
		customers, err := s.upcomingBirthdayCustomers(salon.ID)
		if err != nil {
			log.Printf("Salon %s: Failed to get birthday customers: %v", salon.ID, err)
		} else {
			s.sendReminders(salon.ID, customers, "birthday")
		}
	}

	if salon.LoyaltyReminders {
		customers, err := s.freeVisitDueCustomers(salon.ID)
		if err != nil {
			log.Printf("Salon %s: Failed to get loyalty customers: %v", salon.ID, err)
		} else {
			s.sendReminders(salon.ID, customers, "loyalty")
		}
	}
}

// birthdayWindow lists the MM-DD keys for the n days starting at from,
// inclusive. Enumerating day keys keeps the query correct across month and
// year boundaries.
func birthdayWindow(from time.Time, n int) []string {
	days := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		days = append(days, from.AddDate(0, 0, i).Format("01-02"))
	}
	return days
}

func (s *ReminderService) upcomingBirthdayCustomers(salonID uuid.UUID) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.Where("salon_id = ? AND is_active = true AND birthday IS NOT NULL", salonID).
		Where("to_char(birthday, 'MM-DD') IN ?", birthdayWindow(time.Now(), 7)).
		Find(&customers).Error
	return customers, err
}

// Customers whose next treatment will be free. One nudge tends to bring them
// back within the week.
func (s *ReminderService) freeVisitDueCustomers(salonID uuid.UUID) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.Where("salon_id = ? AND is_active = true AND loyalty_visits >= ?",
		salonID, models.LoyaltyThreshold).
		Find(&customers).Error
	return customers, err
}

func (s *ReminderService) sendReminders(salonID uuid.UUID, customers []models.Customer, eventType string) {
	var template models.ReminderTemplate
	if err := s.db.Where("salon_id = ? AND type = ? AND is_active = true", salonID, eventType).
		First(&template).Error; err != nil {
		log.Printf("Salon %s: No active template for %s: %v", salonID, eventType, err)
		return
	}

	for _, customer := range customers {
		message := strings.ReplaceAll(template.Message, "[CustomerName]", customer.Name)

		// WhatsApp for E.164 numbers, SMS otherwise
		channel := "sms"
		to := customer.Phone
		if strings.HasPrefix(customer.Phone, "+") {
			to = "whatsapp:" + customer.Phone
			channel = "whatsapp"
		}

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetBody(message)

		if channel == "whatsapp" {
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		resp, err := s.client.Api.CreateMessage(params)
		status := "sent"
		errorMsg := ""

		if err != nil {
			log.Printf("Failed to send message to %s: %v", customer.Phone, err)
			status = "failed"
			errorMsg = err.Error()
		} else if resp.Sid != nil {
			log.Printf("Message sent to %s, SID: %s", customer.Phone, *resp.Sid)
		} else {
			log.Printf("Message sent to %s, but no SID returned", customer.Phone)
		}

		reminderLog := models.ReminderLog{
			SalonID:      salonID,
			CustomerID:   customer.ID,
			TemplateID:   template.ID,
			Type:         eventType,
			Message:      message,
			Status:       status,
			ErrorMessage: errorMsg,
			Channel:      channel,
			SentAt:       time.Now(),
		}

		if err := s.db.Create(&reminderLog).Error; err != nil {
			log.Printf("Failed to log reminder for customer %s: %v", customer.ID, err)
		}
	}
}

// DefaultTemplates seeds the two reminder types for a new salon.
func DefaultTemplates(salonID uuid.UUID) []models.ReminderTemplate {
	return []models.ReminderTemplate{
		{
			ID:      uuid.New(),
			SalonID: salonID,
			Type:    "birthday",
			Message: "Hi [CustomerName], GlowDesk wishes you a very happy birthday! Treat yourself this month!",
		},
		{
			ID:      uuid.New(),
			SalonID: salonID,
			Type:    "loyalty",
			Message: fmt.Sprintf("Hi [CustomerName], your next visit is on us - you've completed %d visits. See you soon!", models.LoyaltyThreshold),
		},
	}
}
