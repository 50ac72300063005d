package dto

type CreateFacilityRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	IsActive       *bool  `json:"is_active"`
	OpenTime       string `json:"open_time"`
	CloseTime      string `json:"close_time"`
	ClosedWeekdays []int  `json:"closed_weekdays" binding:"omitempty,dive,gte=0,lte=6"`
}

type UpdateFacilityRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	IsActive       bool   `json:"is_active"`
	OpenTime       string `json:"open_time"`
	CloseTime      string `json:"close_time"`
	ClosedWeekdays []int  `json:"closed_weekdays" binding:"omitempty,dive,gte=0,lte=6"`
}

type AddHolidayRequest struct {
	Date   string `json:"date" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Global bool   `json:"global"` // true = applies to every facility
}

type CreateReservationRequest struct {
	UserID       string `json:"user_id" binding:"required,uuid"`
	Purpose      string `json:"purpose" binding:"required"`
	Attendees    int    `json:"attendees" binding:"omitempty,gt=0"`
	NotifyChatID *int64 `json:"notify_chat_id"`
	StartAt      string `json:"start_at" binding:"required"`
	EndAt        string `json:"end_at" binding:"required"`
}

type CreateSeriesRequest struct {
	UserID       string `json:"user_id" binding:"required,uuid"`
	Purpose      string `json:"purpose" binding:"required"`
	Attendees    int    `json:"attendees" binding:"omitempty,gt=0"`
	NotifyChatID *int64 `json:"notify_chat_id"`
	Repeat       string `json:"repeat" binding:"required,oneof=weekly biweekly monthly"`
	Weekdays     []int  `json:"weekdays" binding:"omitempty,dive,gte=0,lte=6"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
}

type ExtendReservationRequest struct {
	NewEnd string `json:"new_end" binding:"required"`
}

type CopyReservationRequest struct {
	StartAt string `json:"start_at" binding:"required"`
	EndAt   string `json:"end_at" binding:"required"`
}
