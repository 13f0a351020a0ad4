package seeder

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"travelapp/models"

	"gorm.io/gorm"
)

// Config controls a seeding run.
type Config struct {
	Listings int
	Bookings int
	Reviews  int
	Clear    bool
}

// DefaultConfig returns the standard sample-data volumes.
func DefaultConfig() Config {
	return Config{
		Listings: 20,
		Bookings: 30,
		Reviews:  25,
	}
}

// Report summarizes a seeding run: counts created during the run, plus
// store-wide totals queried fresh afterwards. The two can diverge when
// seeding into a non-empty database.
type Report struct {
	ListingsCreated int
	BookingsCreated int
	ReviewsCreated  int

	TotalListings     int64
	AvailableListings int64
	TotalBookings     int64
	TotalReviews      int64
}

// Run populates the database with sample listings, bookings, and reviews.
// Individual create failures are logged and skipped; Run only returns an
// error when the store itself is unreachable.
func Run(db *gorm.DB, cfg Config) (*Report, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	report := &Report{}

	if cfg.Clear {
		log.Println("Clearing existing data...")
		if err := clearAll(db); err != nil {
			return nil, fmt.Errorf("clear existing data: %w", err)
		}
		log.Println("Successfully cleared existing data")
	}

	// Create listings
	log.Println("Creating listings...")
	for i := 0; i < cfg.Listings; i++ {
		listing := models.Listing{
			Title:       listingTitles[rng.Intn(len(listingTitles))],
			Description: listingDescriptions[rng.Intn(len(listingDescriptions))],
			Location:    listingLocations[rng.Intn(len(listingLocations))],
			IsAvailable: rng.Intn(4) != 0, // 75% available
		}

		if err := db.Create(&listing).Error; err != nil {
			log.Printf("Error creating listing %d: %v", i+1, err)
			continue
		}

		report.ListingsCreated++
		if report.ListingsCreated%5 == 0 {
			log.Printf("Created %d listings...", report.ListingsCreated)
		}
	}

	// Bookings and reviews are only generated when this run produced at
	// least one listing. The candidate pool is still every persisted
	// listing, not just this run's.
	if report.ListingsCreated > 0 {
		var allListings []models.Listing
		if err := db.Find(&allListings).Error; err != nil {
			return nil, fmt.Errorf("load listings: %w", err)
		}

		log.Println("Creating bookings...")
		for i := 0; i < cfg.Bookings; i++ {
			listing := allListings[rng.Intn(len(allListings))]

			// Check-in anywhere from 30 days ago to 60 days out, stays of 1-14 days
			checkIn := time.Now().AddDate(0, 0, rng.Intn(91)-30)
			checkOut := checkIn.AddDate(0, 0, rng.Intn(14)+1)

			booking := models.Booking{
				ListingID: listing.ID,
				GuestName: guestNames[rng.Intn(len(guestNames))],
				Status:    models.BookingStatuses[rng.Intn(len(models.BookingStatuses))],
				CheckIn:   checkIn,
				CheckOut:  checkOut,
			}

			if err := db.Create(&booking).Error; err != nil {
				log.Printf("Error creating booking %d: %v", i+1, err)
				continue
			}

			report.BookingsCreated++
			if report.BookingsCreated%10 == 0 {
				log.Printf("Created %d bookings...", report.BookingsCreated)
			}
		}

		log.Println("Creating reviews...")
		for i := 0; i < cfg.Reviews; i++ {
			listing := allListings[rng.Intn(len(allListings))]

			review := models.Review{
				ListingID: listing.ID,
				GuestName: guestNames[rng.Intn(len(guestNames))],
				Rating:    strconv.Itoa(rng.Intn(3) + 3), // 3-5 star ratings mostly
				Comment:   reviewComments[rng.Intn(len(reviewComments))],
			}

			if err := db.Create(&review).Error; err != nil {
				log.Printf("Error creating review %d: %v", i+1, err)
				continue
			}

			report.ReviewsCreated++
			if report.ReviewsCreated%10 == 0 {
				log.Printf("Created %d reviews...", report.ReviewsCreated)
			}
		}
	} else {
		log.Println("No listings created, skipping bookings and reviews")
	}

	if err := report.loadTotals(db); err != nil {
		return nil, fmt.Errorf("load totals: %w", err)
	}

	log.Printf("Successfully created:")
	log.Printf("  - %d listings", report.ListingsCreated)
	log.Printf("  - %d bookings", report.BookingsCreated)
	log.Printf("  - %d reviews", report.ReviewsCreated)
	log.Printf("Database totals:")
	log.Printf("  - Total listings: %d", report.TotalListings)
	log.Printf("  - Available listings: %d", report.AvailableListings)
	log.Printf("  - Total bookings: %d", report.TotalBookings)
	log.Printf("  - Total reviews: %d", report.TotalReviews)

	return report, nil
}

// clearAll deletes reviews, then bookings, then listings inside one
// transaction, so no dependent row survives its parent.
func clearAll(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Listing{}).Error
	})
}

// loadTotals queries store-wide counts fresh rather than accumulating them
// in memory.
func (r *Report) loadTotals(db *gorm.DB) error {
	if err := db.Model(&models.Listing{}).Count(&r.TotalListings).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Listing{}).Where("is_available = ?", true).Count(&r.AvailableListings).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Booking{}).Count(&r.TotalBookings).Error; err != nil {
		return err
	}
	return db.Model(&models.Review{}).Count(&r.TotalReviews).Error
}
