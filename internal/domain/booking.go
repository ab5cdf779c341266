package domain

import (
	"fmt"
	"time"
)

type TimeSlot string

const (
	SlotMorning   TimeSlot = "MORNING"
	SlotAfternoon TimeSlot = "AFTERNOON"
	SlotEvening   TimeSlot = "EVENING"
)

func ParseTimeSlot(raw string) (TimeSlot, error) {
	switch TimeSlot(raw) {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return TimeSlot(raw), nil
	}
	return "", fmt.Errorf("%w: unknown time slot %q", ErrValidation, raw)
}

// StatusChange is one append-only history entry: the state a booking
// entered and the server-assigned moment it entered it.
type StatusChange struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Booking struct {
	Token          string         `json:"token"`
	ContactInfo    string         `json:"contact_info"`
	Address        string         `json:"address"`
	Municipality   string         `json:"municipality"`
	CollectionDate time.Time      `json:"collection_date"`
	TimeSlot       TimeSlot       `json:"time_slot"`
	Description    string         `json:"description"`
	Status         Status         `json:"status"`
	History        []StatusChange `json:"history"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type CreateBookingInput struct {
	ContactInfo    string
	Address        string
	Municipality   string
	CollectionDate time.Time
	TimeSlot       string
	Description    string
}

type MunicipalityRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
