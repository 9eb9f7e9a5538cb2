package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"elegance-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// SubscriptionReminderService nudges the brand over SMS when its
// subscription is about to lapse. Access enforcement stays with the
// request-time gate; this only notifies.
type SubscriptionReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewSubscriptionReminderService(db *gorm.DB) *SubscriptionReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &SubscriptionReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the expiry check every day at 9 AM
func (s *SubscriptionReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.SendExpiryReminders); err != nil {
		log.Printf("Failed to schedule subscription reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Subscription reminder scheduler started")
}

// SendExpiryReminders messages brands whose subscription ends within
// 3 days or has already lapsed
func (s *SubscriptionReminderService) SendExpiryReminders() {
	log.Println("Starting subscription reminder processing...")

	cutoff := time.Now().AddDate(0, 0, 3)

	var brands []models.Brand
	if err := s.db.Where("subscription_end_time IS NOT NULL AND subscription_end_time <= ?", cutoff).
		Find(&brands).Error; err != nil {
		log.Printf("Failed to fetch brands: %v", err)
		return
	}

	for _, brand := range brands {
		remaining := int(time.Until(*brand.SubscriptionEndTime).Hours() / 24)
		var body string
		if remaining < 0 {
			body = fmt.Sprintf("Dear %s, your subscription has expired. Please renew to continue using the service.", brand.Name)
		} else {
			body = fmt.Sprintf("Dear %s, your subscription ends in %d day(s). Please renew in time.", brand.Name, remaining)
		}
		s.sendSMS(brand.Mobile, body)
	}

	log.Println("Subscription reminder processing completed")
}

func (s *SubscriptionReminderService) sendSMS(to, body string) {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" || to == "" {
		log.Printf("SMS skipped (no Twilio config or recipient): %s", body)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send SMS to %s: %v", to, err)
		return
	}

	log.Printf("Reminder SMS sent to %s", to)
}
