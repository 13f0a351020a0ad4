package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: connection per goroutine would mean a database per
	// connection, so pin the pool to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Listing{}, &Booking{}, &Review{}))
	return db
}

func createTestListing(t *testing.T, db *gorm.DB) Listing {
	t.Helper()

	listing := Listing{
		Title:       "Cozy Beach House",
		Description: "Fully equipped property with everything you need for a memorable stay.",
		Location:    "South Beach, Miami",
		IsAvailable: true,
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

func TestListingAssignsExternalID(t *testing.T) {
	db := openTestDb(t)

	first := createTestListing(t, db)
	second := createTestListing(t, db)

	assert.NotEqual(t, uuid.Nil, first.ListingID)
	assert.NotEqual(t, uuid.Nil, second.ListingID)
	assert.NotEqual(t, first.ListingID, second.ListingID)
}

func TestListingIDUniqueInStore(t *testing.T) {
	db := openTestDb(t)

	listing := createTestListing(t, db)

	duplicate := Listing{
		ListingID: listing.ListingID,
		Title:     "Modern City Loft",
		Location:  "SoHo, New York",
	}
	assert.Error(t, db.Create(&duplicate).Error)
}

func TestBookingRequiresListing(t *testing.T) {
	db := openTestDb(t)

	booking := Booking{
		GuestName: "John Smith",
		Status:    BookingStatusPending,
		CheckIn:   time.Now(),
		CheckOut:  time.Now().AddDate(0, 0, 3),
	}
	err := db.Create(&booking).Error
	assert.ErrorIs(t, err, ErrListingRequired)

	// A reference to a listing that does not exist is just as invalid
	booking.ListingID = 9999
	err = db.Create(&booking).Error
	assert.ErrorIs(t, err, ErrListingRequired)
}

func TestBookingRejectsInvertedStay(t *testing.T) {
	db := openTestDb(t)
	listing := createTestListing(t, db)

	checkIn := time.Now()

	booking := Booking{
		ListingID: listing.ID,
		GuestName: "Sarah Johnson",
		Status:    BookingStatusConfirmed,
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, -1),
	}
	assert.ErrorIs(t, db.Create(&booking).Error, ErrInvalidStay)

	booking.CheckOut = checkIn
	assert.ErrorIs(t, db.Create(&booking).Error, ErrInvalidStay)

	booking.CheckOut = checkIn.AddDate(0, 0, 1)
	assert.NoError(t, db.Create(&booking).Error)
}

func TestBookingIDUniqueInStore(t *testing.T) {
	db := openTestDb(t)
	listing := createTestListing(t, db)

	first := Booking{
		ListingID: listing.ID,
		GuestName: "Michael Brown",
		Status:    BookingStatusConfirmed,
		CheckIn:   time.Now(),
		CheckOut:  time.Now().AddDate(0, 0, 2),
	}
	require.NoError(t, db.Create(&first).Error)

	duplicate := Booking{
		BookingID: first.BookingID,
		ListingID: listing.ID,
		GuestName: "Emily Davis",
		Status:    BookingStatusPending,
		CheckIn:   time.Now(),
		CheckOut:  time.Now().AddDate(0, 0, 2),
	}
	assert.Error(t, db.Create(&duplicate).Error)
}

func TestReviewRequiresListing(t *testing.T) {
	db := openTestDb(t)

	review := Review{
		GuestName: "David Wilson",
		Rating:    "5",
		Comment:   "Amazing place! Everything was perfect and exactly as described.",
	}
	assert.ErrorIs(t, db.Create(&review).Error, ErrListingRequired)

	review.ListingID = 9999
	assert.ErrorIs(t, db.Create(&review).Error, ErrListingRequired)

	listing := createTestListing(t, db)
	review.ListingID = listing.ID
	assert.NoError(t, db.Create(&review).Error)
}

func TestDeleteCascadeRemovesDependents(t *testing.T) {
	db := openTestDb(t)

	doomed := createTestListing(t, db)
	survivor := createTestListing(t, db)

	for _, listing := range []Listing{doomed, survivor} {
		booking := Booking{
			ListingID: listing.ID,
			GuestName: "Jessica Garcia",
			Status:    BookingStatusConfirmed,
			CheckIn:   time.Now(),
			CheckOut:  time.Now().AddDate(0, 0, 7),
		}
		require.NoError(t, db.Create(&booking).Error)

		review := Review{
			ListingID: listing.ID,
			GuestName: "Christopher Miller",
			Rating:    "4",
			Comment:   "Great location and very clean. Would definitely stay again.",
		}
		require.NoError(t, db.Create(&review).Error)
	}

	require.NoError(t, doomed.DeleteCascade(db))

	var bookings, reviews int64
	db.Model(&Booking{}).Where("listing_id = ?", doomed.ID).Count(&bookings)
	db.Model(&Review{}).Where("listing_id = ?", doomed.ID).Count(&reviews)
	assert.Zero(t, bookings, "no booking may outlive its listing")
	assert.Zero(t, reviews, "no review may outlive its listing")

	// The sibling listing and its dependents are untouched
	db.Model(&Booking{}).Where("listing_id = ?", survivor.ID).Count(&bookings)
	db.Model(&Review{}).Where("listing_id = ?", survivor.ID).Count(&reviews)
	assert.EqualValues(t, 1, bookings)
	assert.EqualValues(t, 1, reviews)

	var listings int64
	db.Model(&Listing{}).Count(&listings)
	assert.EqualValues(t, 1, listings)
}
