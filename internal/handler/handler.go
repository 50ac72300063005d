package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/stpnv0/FacilityBooker/internal/booking"
	"github.com/stpnv0/FacilityBooker/internal/domain"
	"github.com/stpnv0/FacilityBooker/internal/handler/dto"
)

const dateLayout = "2006-01-02"

type FacilitySvc interface {
	Create(ctx context.Context, input domain.CreateFacilityInput) (*domain.Facility, error)
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
	Update(ctx context.Context, id string, input domain.UpdateFacilityInput) (*domain.Facility, error)
	AddHoliday(ctx context.Context, input domain.AddHolidayInput) (*domain.Holiday, error)
	RemoveHoliday(ctx context.Context, id string) error
	ListHolidays(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.Holiday, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	CreateSeries(ctx context.Context, rec booking.Recurrence, fields booking.SeriesFields) (*booking.SeriesResult, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Approve(ctx context.Context, id string) (*domain.Reservation, error)
	Reject(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) error
	Extend(ctx context.Context, id string, newEnd time.Time) (*domain.Reservation, error)
	Copy(ctx context.Context, id string, newStart, newEnd time.Time) (*domain.Reservation, error)
	ListByFacility(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
}

type Handler struct {
	facilityService    FacilitySvc
	reservationService ReservationSvc
}

func NewHandler(facilityService FacilitySvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		facilityService:    facilityService,
		reservationService: reservationService,
	}
}

// Facilities

func (h *Handler) CreateFacility(c *ginext.Context) {
	var req dto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	open, err := parseTimeOfDay(req.OpenTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid open_time, expected HH:MM"})
		return
	}
	close, err := parseTimeOfDay(req.CloseTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid close_time, expected HH:MM"})
		return
	}

	input := domain.CreateFacilityInput{
		Name:           req.Name,
		Description:    req.Description,
		IsActive:       req.IsActive,
		OpenTime:       open,
		CloseTime:      close,
		ClosedWeekdays: toWeekdays(req.ClosedWeekdays),
	}

	facility, err := h.facilityService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFacilityResponse(facility))
}

func (h *Handler) GetFacility(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid facility id"})
		return
	}

	facility, err := h.facilityService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFacilityResponse(facility))
}

func (h *Handler) ListFacilities(c *ginext.Context) {
	facilities, err := h.facilityService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		resp = append(resp, dto.ToFacilityResponse(f))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateFacility(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid facility id"})
		return
	}

	var req dto.UpdateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	open, err := parseTimeOfDay(req.OpenTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid open_time, expected HH:MM"})
		return
	}
	close, err := parseTimeOfDay(req.CloseTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid close_time, expected HH:MM"})
		return
	}

	input := domain.UpdateFacilityInput{
		Name:           req.Name,
		Description:    req.Description,
		IsActive:       req.IsActive,
		OpenTime:       open,
		CloseTime:      close,
		ClosedWeekdays: toWeekdays(req.ClosedWeekdays),
	}

	facility, err := h.facilityService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFacilityResponse(facility))
}

// Holidays

func (h *Handler) AddHoliday(c *ginext.Context) {
	facilityID := c.Param("id")
	if _, err := uuid.Parse(facilityID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid facility id"})
		return
	}

	var req dto.AddHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	input := domain.AddHolidayInput{
		Date: date,
		Name: req.Name,
	}
	if !req.Global {
		input.FacilityID = &facilityID
	}

	holiday, err := h.facilityService.AddHoliday(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHolidayResponse(holiday))
}

func (h *Handler) RemoveHoliday(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid holiday id"})
		return
	}

	if err := h.facilityService.RemoveHoliday(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListHolidays(c *ginext.Context) {
	facilityID := c.Param("id")
	if _, err := uuid.Parse(facilityID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid facility id"})
		return
	}

	from, to, err := dateRange(c, 365*24*time.Hour)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	holidays, err := h.facilityService.ListHolidays(c.Request.Context(), facilityID, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HolidayResponse, 0, len(holidays))
	for _, holiday := range holidays {
		resp = append(resp, dto.ToHolidayResponse(holiday))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	facilityID := c.Param("id")
	if _, err := uuid.Parse(facilityID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid facility id"})
		return
	}

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_at format, expected RFC3339"})
		return
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_at format, expected RFC3339"})
		return
	}

	input := domain.CreateReservationInput{
		FacilityID:   facilityID,
		UserID:       req.UserID,
		Purpose:      req.Purpose,
		Attendees:    req.Attendees,
		NotifyChatID: req.NotifyChatID,
		StartAt:      startAt,
		EndAt:        endAt,
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) CreateSeries(c *ginext.Context) {
	facilityID := c.Param("id")
	if _, err := uuid.Parse(facilityID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid facility id"})
		return
	}

	var req dto.CreateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date, expected YYYY-MM-DD"})
		return
	}
	startTime, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time, expected HH:MM"})
		return
	}
	endTime, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time, expected HH:MM"})
		return
	}

	rec := booking.Recurrence{
		Repeat:    booking.RepeatType(req.Repeat),
		Weekdays:  toWeekdays(req.Weekdays),
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
	}
	fields := booking.SeriesFields{
		FacilityID:   facilityID,
		UserID:       req.UserID,
		Purpose:      req.Purpose,
		Attendees:    req.Attendees,
		NotifyChatID: req.NotifyChatID,
	}

	result, err := h.reservationService.CreateSeries(c.Request.Context(), rec, fields)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSeriesResponse(result))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ApproveReservation(c *ginext.Context) {
	h.decide(c, h.reservationService.Approve)
}

func (h *Handler) RejectReservation(c *ginext.Context) {
	h.decide(c, h.reservationService.Reject)
}

func (h *Handler) decide(c *ginext.Context, fn func(ctx context.Context, id string) (*domain.Reservation, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	reservation, err := fn(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) ExtendReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.ExtendReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	newEnd, err := time.Parse(time.RFC3339, req.NewEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid new_end format, expected RFC3339"})
		return
	}

	reservation, err := h.reservationService.Extend(c.Request.Context(), id, newEnd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) CopyReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.CopyReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_at format, expected RFC3339"})
		return
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_at format, expected RFC3339"})
		return
	}

	reservation, err := h.reservationService.Copy(c.Request.Context(), id, startAt, endAt)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListFacilityReservations(c *ginext.Context) {
	facilityID := c.Param("id")
	if _, err := uuid.Parse(facilityID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid facility id"})
		return
	}

	from, to, err := dateRange(c, 30*24*time.Hour)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservations, err := h.reservationService.ListByFacility(c.Request.Context(), facilityID, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserReservations(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	reservations, err := h.reservationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrFacilityNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrHolidayNotFound):
		c.JSON(http.StatusNotFound, dto.ToErrorResponse(err))

	case errors.Is(err, domain.ErrTimeConflict),
		errors.Is(err, domain.ErrNotPending),
		errors.Is(err, domain.ErrNotActive),
		errors.Is(err, domain.ErrNotApproved),
		errors.Is(err, domain.ErrNotAnExtension):
		c.JSON(http.StatusConflict, dto.ToErrorResponse(err))

	case errors.Is(err, domain.ErrFacilityInactive),
		errors.Is(err, domain.ErrClosedWeekday),
		errors.Is(err, domain.ErrHoliday),
		errors.Is(err, domain.ErrOutsideHours),
		errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrNoDatesInRange),
		errors.Is(err, domain.ErrNoBookingsCreated):
		c.JSON(http.StatusUnprocessableEntity, dto.ToErrorResponse(err))

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ToErrorResponse(err))

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func parseTimeOfDay(s string) (*domain.TimeOfDay, error) {
	if s == "" {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toWeekdays(days []int) []time.Weekday {
	res := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		res = append(res, time.Weekday(d))
	}
	return res
}

// dateRange reads optional from/to query params (YYYY-MM-DD); the default
// window starts today and spans span.
func dateRange(c *ginext.Context, span time.Duration) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(span)

	if s := c.Query("from"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid from, expected YYYY-MM-DD")
		}
		from = parsed
		to = from.Add(span)
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid to, expected YYYY-MM-DD")
		}
		to = parsed.AddDate(0, 0, 1) // inclusive end date
	}

	return from, to, nil
}
