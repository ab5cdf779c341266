package dto

type CreateBookingRequest struct {
	ContactInfo    string `json:"contact_info"`
	Address        string `json:"address"`
	Municipality   string `json:"municipality"`
	CollectionDate string `json:"collection_date"`
	TimeSlot       string `json:"time_slot"`
	Description    string `json:"description"`
}
