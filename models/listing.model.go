package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrListingRequired is returned when a booking or review is created without
// an existing listing to reference.
var ErrListingRequired = errors.New("listing reference is required")

type Listing struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ListingID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"listingId"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:200;not null" json:"location"`
	IsAvailable bool      `gorm:"not null;default:true" json:"isAvailable"`

	Bookings []Booking `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the external listing id. It is never reassigned
// afterwards.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ListingID == uuid.Nil {
		l.ListingID = uuid.New()
	}
	return nil
}

// DeleteCascade removes the listing together with all of its bookings and
// reviews in a single transaction, so no dependent can outlive its listing.
func (l *Listing) DeleteCascade(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", l.ID).Delete(&Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", l.ID).Delete(&Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(l).Error
	})
}
