package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus defines the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// BookingStatuses lists every status a booking may hold.
var BookingStatuses = []BookingStatus{
	BookingStatusConfirmed,
	BookingStatusPending,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// ErrInvalidStay is returned when a booking's check-out does not come
// strictly after its check-in.
var ErrInvalidStay = errors.New("check-out must be after check-in")

type Booking struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	BookingID uuid.UUID     `gorm:"type:uuid;uniqueIndex;not null" json:"bookingId"`
	ListingID uint          `gorm:"not null;index" json:"listingId"`
	GuestName string        `gorm:"size:200;not null" json:"guestName"`
	Status    BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CheckIn   time.Time     `gorm:"not null" json:"checkIn"`
	CheckOut  time.Time     `gorm:"not null" json:"checkOut"`

	// Association - omit in JSON unless Preloaded
	Listing Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"listing,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the external booking id and rejects bookings that
// reference no live listing or whose stay interval is inverted.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	if b.ListingID == 0 {
		return ErrListingRequired
	}
	var count int64
	if err := tx.Model(&Listing{}).Where("id = ?", b.ListingID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrListingRequired
	}
	if !b.CheckOut.After(b.CheckIn) {
		return ErrInvalidStay
	}
	return nil
}
