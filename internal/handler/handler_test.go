package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/stpnv0/FacilityBooker/internal/booking"
	"github.com/stpnv0/FacilityBooker/internal/domain"
	"github.com/stpnv0/FacilityBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/FacilityBooker/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockFacilitySvc, *hmocks.MockReservationSvc, http.Handler) {
	t.Helper()
	facilitySvc := hmocks.NewMockFacilitySvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)

	h := NewHandler(facilitySvc, reservationSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/facilities", h.CreateFacility)
		api.GET("/facilities", h.ListFacilities)
		api.GET("/facilities/:id", h.GetFacility)
		api.PUT("/facilities/:id", h.UpdateFacility)
		api.POST("/facilities/:id/holidays", h.AddHoliday)
		api.GET("/facilities/:id/holidays", h.ListHolidays)
		api.DELETE("/holidays/:id", h.RemoveHoliday)
		api.POST("/facilities/:id/reservations", h.CreateReservation)
		api.POST("/facilities/:id/reservations/series", h.CreateSeries)
		api.GET("/facilities/:id/reservations", h.ListFacilityReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/approve", h.ApproveReservation)
		api.POST("/reservations/:id/reject", h.RejectReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/extend", h.ExtendReservation)
		api.POST("/reservations/:id/copy", h.CopyReservation)
		api.GET("/users/:id/reservations", h.GetUserReservations)
	}

	return facilitySvc, reservationSvc, r
}

// --- Facilities ---

func TestHandler_CreateFacility_Success(t *testing.T) {
	facilitySvc, _, r := setupRouter(t)

	facility := &domain.Facility{
		ID:        uuid.New().String(),
		Name:      "Hall A",
		IsActive:  true,
		OpenTime:  &domain.TimeOfDay{Hour: 9},
		CloseTime: &domain.TimeOfDay{Hour: 18},
		CreatedAt: time.Now(),
	}

	facilitySvc.EXPECT().Create(mock.Anything, mock.Anything).Return(facility, nil)

	body, _ := json.Marshal(dto.CreateFacilityRequest{
		Name:      "Hall A",
		OpenTime:  "09:00",
		CloseTime: "18:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.FacilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hall A", resp.Name)
	require.NotNil(t, resp.OpenTime)
	assert.Equal(t, "09:00", *resp.OpenTime)
}

func TestHandler_CreateFacility_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateFacility_InvalidOpenTime(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":"Hall A","open_time":"nine"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetFacility_NotFound(t *testing.T) {
	facilitySvc, _, r := setupRouter(t)

	facilityID := uuid.New().String()
	facilitySvc.EXPECT().GetByID(mock.Anything, facilityID).Return(nil, domain.ErrFacilityNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/facilities/"+facilityID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetFacility_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/facilities/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListFacilities_Success(t *testing.T) {
	facilitySvc, _, r := setupRouter(t)

	facilities := []*domain.Facility{
		{ID: "f1", Name: "Hall A", CreatedAt: time.Now()},
		{ID: "f2", Name: "Hall B", CreatedAt: time.Now()},
	}
	facilitySvc.EXPECT().List(mock.Anything).Return(facilities, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/facilities", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.FacilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_UpdateFacility_Success(t *testing.T) {
	facilitySvc, _, r := setupRouter(t)

	facilityID := uuid.New().String()
	facility := &domain.Facility{ID: facilityID, Name: "Hall A", IsActive: false, CreatedAt: time.Now()}

	facilitySvc.EXPECT().Update(mock.Anything, facilityID, mock.Anything).Return(facility, nil)

	body, _ := json.Marshal(dto.UpdateFacilityRequest{Name: "Hall A", IsActive: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/facilities/"+facilityID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.FacilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)
}

// --- Holidays ---

func TestHandler_AddHoliday_Scoped(t *testing.T) {
	facilitySvc, _, r := setupRouter(t)

	facilityID := uuid.New().String()
	holiday := &domain.Holiday{
		ID:         uuid.New().String(),
		FacilityID: &facilityID,
		Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Name:       "Deep clean",
		CreatedAt:  time.Now(),
	}

	facilitySvc.EXPECT().AddHoliday(mock.Anything, mock.Anything).Run(func(_ context.Context, input domain.AddHolidayInput) {
		require.NotNil(t, input.FacilityID)
		assert.Equal(t, facilityID, *input.FacilityID)
	}).Return(holiday, nil)

	body, _ := json.Marshal(dto.AddHolidayRequest{Date: "2024-05-01", Name: "Deep clean"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities/"+facilityID+"/holidays", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_AddHoliday_Global(t *testing.T) {
	facilitySvc, _, r := setupRouter(t)

	facilityID := uuid.New().String()
	holiday := &domain.Holiday{
		ID:        uuid.New().String(),
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Name:      "May Day",
		CreatedAt: time.Now(),
	}

	facilitySvc.EXPECT().AddHoliday(mock.Anything, mock.Anything).Run(func(_ context.Context, input domain.AddHolidayInput) {
		assert.Nil(t, input.FacilityID)
	}).Return(holiday, nil)

	body, _ := json.Marshal(dto.AddHolidayRequest{Date: "2024-05-01", Name: "May Day", Global: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities/"+facilityID+"/holidays", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_AddHoliday_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	facilityID := uuid.New().String()
	body := []byte(`{"date":"May 1st","name":"May Day"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities/"+facilityID+"/holidays", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RemoveHoliday_Success(t *testing.T) {
	facilitySvc, _, r := setupRouter(t)

	holidayID := uuid.New().String()
	facilitySvc.EXPECT().RemoveHoliday(mock.Anything, holidayID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/holidays/"+holidayID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListHolidays_Success(t *testing.T) {
	facilitySvc, _, r := setupRouter(t)

	facilityID := uuid.New().String()
	holidays := []*domain.Holiday{
		{ID: "h1", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Name: "May Day", CreatedAt: time.Now()},
	}
	facilitySvc.EXPECT().ListHolidays(mock.Anything, facilityID, mock.Anything, mock.Anything).Return(holidays, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/facilities/"+facilityID+"/holidays", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.HolidayResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "2024-05-01", resp[0].Date)
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	facilityID := uuid.New().String()
	userID := uuid.New().String()
	reservation := &domain.Reservation{
		ID:         uuid.New().String(),
		FacilityID: facilityID,
		UserID:     userID,
		Purpose:    "standup",
		StartAt:    time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2024, 3, 11, 11, 0, 0, 0, time.UTC),
		Status:     domain.ReservationStatusPending,
		CreatedAt:  time.Now(),
	}

	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(reservation, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:  userID,
		Purpose: "standup",
		StartAt: "2024-03-11T10:00:00Z",
		EndAt:   "2024-03-11T11:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities/"+facilityID+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateReservation_Conflict(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	facilityID := uuid.New().String()
	userID := uuid.New().String()

	denial := &booking.Denial{Reason: domain.ErrTimeConflict, ConflictsWith: "r-other"}
	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, denial)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:  userID,
		Purpose: "standup",
		StartAt: "2024-03-11T10:00:00Z",
		EndAt:   "2024-03-11T11:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities/"+facilityID+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "r-other", resp.ConflictsWith)
}

func TestHandler_CreateReservation_OutsideHours(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	facilityID := uuid.New().String()
	userID := uuid.New().String()

	denial := &booking.Denial{
		Reason: domain.ErrOutsideHours,
		Open:   &domain.TimeOfDay{Hour: 9},
		Close:  &domain.TimeOfDay{Hour: 18},
	}
	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, denial)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:  userID,
		Purpose: "standup",
		StartAt: "2024-03-11T07:00:00Z",
		EndAt:   "2024-03-11T08:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities/"+facilityID+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.OpenTime)
	assert.Equal(t, "09:00", *resp.OpenTime)
}

func TestHandler_CreateReservation_InvalidStart(t *testing.T) {
	_, _, r := setupRouter(t)

	facilityID := uuid.New().String()
	body := []byte(`{"user_id":"` + uuid.New().String() + `","purpose":"x","start_at":"tomorrow","end_at":"2024-03-11T11:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities/"+facilityID+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSeries_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	facilityID := uuid.New().String()
	userID := uuid.New().String()

	result := &booking.SeriesResult{
		Created: []*domain.Reservation{
			{ID: "r1", FacilityID: facilityID, UserID: userID, Status: domain.ReservationStatusPending, CreatedAt: time.Now()},
			{ID: "r2", FacilityID: facilityID, UserID: userID, Status: domain.ReservationStatusPending, CreatedAt: time.Now()},
		},
		Skipped: []booking.OccurrenceIssue{
			{Date: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), Reason: domain.ErrHoliday},
		},
	}
	reservationSvc.EXPECT().CreateSeries(mock.Anything, mock.Anything, mock.Anything).Return(result, nil)

	body, _ := json.Marshal(dto.CreateSeriesRequest{
		UserID:    userID,
		Purpose:   "weekly sync",
		Repeat:    "weekly",
		Weekdays:  []int{1, 3},
		StartDate: "2024-03-04",
		EndDate:   "2024-03-20",
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities/"+facilityID+"/reservations/series", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SeriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Created, 2)
	assert.Len(t, resp.Skipped, 1)
	assert.Equal(t, "2024-03-06", resp.Skipped[0].Date)
}

func TestHandler_CreateSeries_BadRepeat(t *testing.T) {
	_, _, r := setupRouter(t)

	facilityID := uuid.New().String()
	body := []byte(`{"user_id":"` + uuid.New().String() + `","purpose":"x","repeat":"daily","start_date":"2024-03-04","end_date":"2024-03-20","start_time":"10:00","end_time":"11:00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities/"+facilityID+"/reservations/series", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSeries_NothingCreated(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	facilityID := uuid.New().String()
	reservationSvc.EXPECT().CreateSeries(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNoBookingsCreated)

	body, _ := json.Marshal(dto.CreateSeriesRequest{
		UserID:    uuid.New().String(),
		Purpose:   "weekly sync",
		Repeat:    "weekly",
		Weekdays:  []int{1},
		StartDate: "2024-03-04",
		EndDate:   "2024-03-20",
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilities/"+facilityID+"/reservations/series", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_ApproveReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationID := uuid.New().String()
	reservation := &domain.Reservation{ID: reservationID, Status: domain.ReservationStatusApproved, CreatedAt: time.Now()}

	reservationSvc.EXPECT().Approve(mock.Anything, reservationID).Return(reservation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservationID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandler_ApproveReservation_NotPending(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationID := uuid.New().String()
	reservationSvc.EXPECT().Approve(mock.Anything, reservationID).Return(nil, domain.ErrNotPending)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservationID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RejectReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationID := uuid.New().String()
	reservation := &domain.Reservation{ID: reservationID, Status: domain.ReservationStatusRejected, CreatedAt: time.Now()}

	reservationSvc.EXPECT().Reject(mock.Anything, reservationID).Return(reservation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservationID+"/reject", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationID := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, reservationID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservationID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ExtendReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationID := uuid.New().String()
	newEnd := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
	reservation := &domain.Reservation{ID: reservationID, EndAt: newEnd, Status: domain.ReservationStatusApproved, CreatedAt: time.Now()}

	reservationSvc.EXPECT().Extend(mock.Anything, reservationID, newEnd).Return(reservation, nil)

	body, _ := json.Marshal(dto.ExtendReservationRequest{NewEnd: "2024-03-11T12:00:00Z"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservationID+"/extend", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ExtendReservation_NotApproved(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationID := uuid.New().String()
	reservationSvc.EXPECT().Extend(mock.Anything, reservationID, mock.Anything).Return(nil, &booking.Denial{Reason: domain.ErrNotApproved})

	body, _ := json.Marshal(dto.ExtendReservationRequest{NewEnd: "2024-03-11T12:00:00Z"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservationID+"/extend", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CopyReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationID := uuid.New().String()
	newStart := time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC)
	newEnd := time.Date(2024, 3, 18, 11, 0, 0, 0, time.UTC)
	copied := &domain.Reservation{
		ID:        uuid.New().String(),
		StartAt:   newStart,
		EndAt:     newEnd,
		Status:    domain.ReservationStatusPending,
		CreatedAt: time.Now(),
	}

	reservationSvc.EXPECT().Copy(mock.Anything, reservationID, newStart, newEnd).Return(copied, nil)

	body, _ := json.Marshal(dto.CopyReservationRequest{
		StartAt: "2024-03-18T10:00:00Z",
		EndAt:   "2024-03-18T11:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservationID+"/copy", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEqual(t, reservationID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_ListFacilityReservations_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	facilityID := uuid.New().String()
	reservations := []*domain.Reservation{
		{ID: "r1", FacilityID: facilityID, Status: domain.ReservationStatusApproved, CreatedAt: time.Now()},
	}
	reservationSvc.EXPECT().ListByFacility(mock.Anything, facilityID, mock.Anything, mock.Anything).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/facilities/"+facilityID+"/reservations?from=2024-03-01&to=2024-03-31", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListFacilityReservations_BadRange(t *testing.T) {
	_, _, r := setupRouter(t)

	facilityID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/facilities/"+facilityID+"/reservations?from=yesterday", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserReservations_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	userID := uuid.New().String()
	reservations := []*domain.Reservation{
		{ID: "r1", UserID: userID, Status: domain.ReservationStatusPending, CreatedAt: time.Now()},
	}
	reservationSvc.EXPECT().ListByUser(mock.Anything, userID).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserReservations_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/bad-id/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	facilitySvc, _, r := setupRouter(t)

	facilityID := uuid.New().String()
	facilitySvc.EXPECT().GetByID(mock.Anything, facilityID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/facilities/"+facilityID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
