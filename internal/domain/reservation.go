package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusApproved  ReservationStatus = "approved"
	ReservationStatusRejected  ReservationStatus = "rejected"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// ActiveStatuses are the statuses that participate in conflict checks.
var ActiveStatuses = []ReservationStatus{ReservationStatusPending, ReservationStatusApproved}

func (s ReservationStatus) Active() bool {
	return s == ReservationStatusPending || s == ReservationStatusApproved
}

// Reservation holds a half-open time slot [StartAt, EndAt) on a facility.
type Reservation struct {
	ID           string            `json:"id"`
	FacilityID   string            `json:"facility_id"`
	UserID       string            `json:"user_id"`
	Purpose      string            `json:"purpose"`
	Attendees    int               `json:"attendees"`
	NotifyChatID *int64            `json:"notify_chat_id,omitempty"`
	StartAt      time.Time         `json:"start_at"`
	EndAt        time.Time         `json:"end_at"`
	Status       ReservationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Overlaps reports whether the reservation intersects [start, end).
// Touching endpoints do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartAt.Before(end) && r.EndAt.After(start)
}

type CreateReservationInput struct {
	FacilityID   string
	UserID       string
	Purpose      string
	Attendees    int
	NotifyChatID *int64
	StartAt      time.Time
	EndAt        time.Time
}
