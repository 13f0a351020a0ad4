package utils

import (
	"fmt"
	"log"
	"time"

	"travelapp/database"
	"travelapp/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[BOOKING-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// completePastBookings marks confirmed bookings whose stay has ended as
// completed. Cancelled and pending bookings are left alone.
func completePastBookings(db *gorm.DB) {
	cutoff := now.BeginningOfDay()

	result := db.Model(&models.Booking{}).
		Where("status = ? AND check_out < ?", models.BookingStatusConfirmed, cutoff).
		Update("status", models.BookingStatusCompleted)
	if result.Error != nil {
		logScheduler("Error completing past bookings: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler(fmt.Sprintf("Marked %d past bookings completed", result.RowsAffected))
	}
}

// StartBookingStatusScheduler runs the booking status sweep hourly.
func StartBookingStatusScheduler() {
	c := cron.New()

	// Once per hour, on the hour
	if _, err := c.AddFunc("0 * * * *", func() {
		completePastBookings(database.Database.Db)
	}); err != nil {
		log.Printf("Failed to schedule booking status sweep: %v", err)
		return
	}

	c.Start()
	log.Println("Booking status scheduler started")
}
