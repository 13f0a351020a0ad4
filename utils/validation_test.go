package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	GuestName string    `json:"guestName" validate:"required,max=200"`
	Status    string    `json:"status" validate:"omitempty,oneof=confirmed pending cancelled completed"`
	CheckIn   time.Time `json:"checkIn" validate:"required"`
	CheckOut  time.Time `json:"checkOut" validate:"required,gtfield=CheckIn"`
}

func TestValidationMessagesUseJsonFieldNames(t *testing.T) {
	err := Validate.Struct(stayRequest{Status: "archived"})
	require.Error(t, err)

	messages := ValidationMessages(err)
	assert.Contains(t, messages, "guestName")
	assert.Contains(t, messages, "status")
	assert.Contains(t, messages, "checkIn")
	assert.Equal(t, "This field is required!", messages["guestName"])
	assert.Equal(t, "Must be one of: confirmed pending cancelled completed!", messages["status"])
}

func TestValidationRejectsInvertedStay(t *testing.T) {
	checkIn := time.Now()

	err := Validate.Struct(stayRequest{
		GuestName: "John Smith",
		Status:    "confirmed",
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, -2),
	})
	require.Error(t, err)

	messages := ValidationMessages(err)
	assert.Equal(t, "Must be after CheckIn!", messages["checkOut"])
}

func TestValidationAcceptsValidStay(t *testing.T) {
	checkIn := time.Now()

	err := Validate.Struct(stayRequest{
		GuestName: "Sarah Johnson",
		Status:    "pending",
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, 3),
	})
	assert.NoError(t, err)
}
