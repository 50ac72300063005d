package domain

import "time"

// Holiday blocks reservations on a calendar date. A nil FacilityID makes
// the entry apply to every facility.
type Holiday struct {
	ID         string    `json:"id"`
	FacilityID *string   `json:"facility_id,omitempty"`
	Date       time.Time `json:"date"` // midnight, date component only
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *Holiday) AppliesTo(facilityID string) bool {
	return h.FacilityID == nil || *h.FacilityID == facilityID
}

type AddHolidayInput struct {
	FacilityID *string
	Date       time.Time
	Name       string
}
