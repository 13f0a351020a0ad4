package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ListingID uint   `gorm:"not null;index" json:"listingId"`
	GuestName string `gorm:"size:200;not null" json:"guestName"`
	Rating    string `gorm:"type:text;not null" json:"rating"`
	Comment   string `gorm:"type:text" json:"comment"`

	// Association - omit in JSON unless Preloaded
	Listing Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"listing,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate rejects reviews that reference no live listing.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ListingID == 0 {
		return ErrListingRequired
	}
	var count int64
	if err := tx.Model(&Listing{}).Where("id = ?", r.ListingID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrListingRequired
	}
	return nil
}
