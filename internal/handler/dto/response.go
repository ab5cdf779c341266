package dto

import (
	"time"

	"github.com/martacruzz/tqs-hw1/internal/domain"
)

const dateLayout = "2006-01-02"

type StatusChangeResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type BookingResponse struct {
	Token          string                 `json:"token"`
	ContactInfo    string                 `json:"contact_info"`
	Address        string                 `json:"address"`
	Municipality   string                 `json:"municipality"`
	CollectionDate string                 `json:"collection_date"`
	TimeSlot       string                 `json:"time_slot"`
	Description    string                 `json:"description"`
	Status         string                 `json:"status"`
	History        []StatusChangeResponse `json:"history"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
}

type MunicipalityResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ErrorResponse carries the structured error contract: a message plus,
// for validation failures, the offending field.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	history := make([]StatusChangeResponse, 0, len(b.History))
	for _, change := range b.History {
		history = append(history, StatusChangeResponse{
			Status:    string(change.Status),
			Timestamp: change.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	return BookingResponse{
		Token:          b.Token,
		ContactInfo:    b.ContactInfo,
		Address:        b.Address,
		Municipality:   b.Municipality,
		CollectionDate: b.CollectionDate.Format(dateLayout),
		TimeSlot:       string(b.TimeSlot),
		Description:    b.Description,
		Status:         string(b.Status),
		History:        history,
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToMunicipalityResponse(ref domain.MunicipalityRef) MunicipalityResponse {
	return MunicipalityResponse{Code: ref.Code, Name: ref.Name}
}
