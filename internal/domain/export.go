package domain

import "time"

// EnquiryExportRow is one enquiry flattened for spreadsheet export, with the
// enquired trip's title resolved.
type EnquiryExportRow struct {
	EnquiryID  int64     `json:"enquiryId"`
	CreatedAt  time.Time `json:"createdAt"`
	Status     string    `json:"status"`
	Source     string    `json:"source"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	TripID     *int64    `json:"tripId"`
	TripTitle  string    `json:"tripTitle"`
	TravelDate string    `json:"travelDate"`
	Travellers *int      `json:"travellers"`
	Message    string    `json:"message"`
	Notes      string    `json:"notes"`
}
