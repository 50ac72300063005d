package dto

import (
	"errors"
	"time"

	"github.com/stpnv0/FacilityBooker/internal/booking"
	"github.com/stpnv0/FacilityBooker/internal/domain"
)

const dateLayout = "2006-01-02"

type FacilityResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	IsActive       bool    `json:"is_active"`
	OpenTime       *string `json:"open_time,omitempty"`
	CloseTime      *string `json:"close_time,omitempty"`
	ClosedWeekdays []int   `json:"closed_weekdays"`
	CreatedAt      string  `json:"created_at"`
}

type HolidayResponse struct {
	ID         string  `json:"id"`
	FacilityID *string `json:"facility_id,omitempty"`
	Date       string  `json:"date"`
	Name       string  `json:"name"`
	CreatedAt  string  `json:"created_at"`
}

type ReservationResponse struct {
	ID         string `json:"id"`
	FacilityID string `json:"facility_id"`
	UserID     string `json:"user_id"`
	Purpose    string `json:"purpose"`
	Attendees  int    `json:"attendees"`
	StartAt    string `json:"start_at"`
	EndAt      string `json:"end_at"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type OccurrenceIssueResponse struct {
	Date          string `json:"date"`
	Reason        string `json:"reason"`
	ConflictsWith string `json:"conflicts_with,omitempty"`
}

type SeriesResponse struct {
	Created   []ReservationResponse     `json:"created"`
	Conflicts []OccurrenceIssueResponse `json:"conflicts"`
	Skipped   []OccurrenceIssueResponse `json:"skipped"`
}

type ErrorResponse struct {
	Error         string  `json:"error"`
	ConflictsWith string  `json:"conflicts_with,omitempty"`
	OpenTime      *string `json:"open_time,omitempty"`
	CloseTime     *string `json:"close_time,omitempty"`
}

func ToFacilityResponse(f *domain.Facility) FacilityResponse {
	days := make([]int, 0, len(f.ClosedWeekdays))
	for _, d := range f.ClosedWeekdays {
		days = append(days, int(d))
	}

	return FacilityResponse{
		ID:             f.ID,
		Name:           f.Name,
		Description:    f.Description,
		IsActive:       f.IsActive,
		OpenTime:       todString(f.OpenTime),
		CloseTime:      todString(f.CloseTime),
		ClosedWeekdays: days,
		CreatedAt:      f.CreatedAt.Format(time.RFC3339),
	}
}

func ToHolidayResponse(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:         h.ID,
		FacilityID: h.FacilityID,
		Date:       h.Date.Format(dateLayout),
		Name:       h.Name,
		CreatedAt:  h.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		FacilityID: r.FacilityID,
		UserID:     r.UserID,
		Purpose:    r.Purpose,
		Attendees:  r.Attendees,
		StartAt:    r.StartAt.Format(time.RFC3339),
		EndAt:      r.EndAt.Format(time.RFC3339),
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func ToSeriesResponse(res *booking.SeriesResult) SeriesResponse {
	created := make([]ReservationResponse, 0, len(res.Created))
	for _, r := range res.Created {
		created = append(created, ToReservationResponse(r))
	}

	return SeriesResponse{
		Created:   created,
		Conflicts: toIssueResponses(res.Conflicts),
		Skipped:   toIssueResponses(res.Skipped),
	}
}

// ToErrorResponse keeps the denial context (conflicting reservation,
// operating window) visible to the client.
func ToErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error()}

	var d *booking.Denial
	if errors.As(err, &d) {
		resp.ConflictsWith = d.ConflictsWith
		resp.OpenTime = todString(d.Open)
		resp.CloseTime = todString(d.Close)
	}

	return resp
}

func toIssueResponses(issues []booking.OccurrenceIssue) []OccurrenceIssueResponse {
	res := make([]OccurrenceIssueResponse, 0, len(issues))
	for _, issue := range issues {
		res = append(res, OccurrenceIssueResponse{
			Date:          issue.Date.Format(dateLayout),
			Reason:        issue.Reason.Error(),
			ConflictsWith: issue.ConflictsWith,
		})
	}
	return res
}

func todString(t *domain.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
