package routes

import (
	"errors"
	"log"
	"strings"

	"cleanmorocco-server/models"
	"cleanmorocco-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// AdminHandler serves the administrator surface: triaging booking requests.
// All of its routes sit behind the basic-auth gate.
type AdminHandler struct {
	DB *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{DB: db}
}

// ListBookingRequests - GET /api/booking-requests?status=&limit=&offset=
func (h *AdminHandler) ListBookingRequests(ctx iris.Context) {
	limit := ctx.URLParamIntDefault("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := ctx.URLParamIntDefault("offset", 0)
	if offset < 0 {
		offset = 0
	}

	query := h.DB.Model(&models.BookingRequest{})
	if status := strings.TrimSpace(ctx.URLParamDefault("status", "")); status != "" {
		query = query.Where("status = ?", strings.ToUpper(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("booking request count failed: %v", err)
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "Failed to fetch booking requests")
		return
	}

	var requests []models.BookingRequest
	if err := query.
		Preload("User").
		Preload("City").
		Preload("Cleaner").
		Preload("Cleaner.City").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error; err != nil {
		log.Printf("booking request list failed: %v", err)
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "Failed to fetch booking requests")
		return
	}

	ctx.JSON(iris.Map{
		"bookingRequests": requests,
		"total":           total,
		"hasMore":         int64(offset+limit) < total,
	})
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateBookingStatus - PATCH /api/booking-requests/{id}/status
// The only permitted mutation of an existing booking request. Transitions
// are validated against the state machine; an unknown id is a silent no-op.
func (h *AdminHandler) UpdateBookingStatus(ctx iris.Context) {
	id := ctx.Params().GetUintDefault("id", 0)
	if id == 0 {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "Invalid booking request id")
		return
	}

	var input UpdateStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	next := models.BookingStatus(strings.ToUpper(strings.TrimSpace(input.Status)))
	if !next.Valid() {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_status", "Unknown status value")
		return
	}

	var booking models.BookingRequest
	if err := h.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		log.Printf("booking request lookup failed: %v", err)
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "Failed to update booking request")
		return
	}

	if !booking.Status.CanTransitionTo(next) {
		utils.JSONError(ctx, iris.StatusConflict, "illegal_transition",
			"Cannot move a "+string(booking.Status)+" request to "+string(next))
		return
	}

	if booking.Status != next {
		if err := h.DB.Model(&booking).Update("status", next).Error; err != nil {
			log.Printf("booking status update failed: %v", err)
			utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "Failed to update booking request")
			return
		}
	}

	ctx.JSON(iris.Map{"success": true, "id": booking.ID, "status": next})
}

// Dashboard - GET /admin
// The data document the admin dashboard renders: per-status counts plus the
// most recent requests.
func (h *AdminHandler) Dashboard(ctx iris.Context) {
	counts := iris.Map{}
	for _, status := range []models.BookingStatus{
		models.StatusPending, models.StatusContacted, models.StatusConfirmed, models.StatusDeclined,
	} {
		var n int64
		if err := h.DB.Model(&models.BookingRequest{}).Where("status = ?", status).Count(&n).Error; err != nil {
			log.Printf("dashboard count for %s failed: %v", status, err)
		}
		counts[string(status)] = n
	}

	var recent []models.BookingRequest
	if err := h.DB.
		Preload("User").
		Preload("City").
		Preload("Cleaner").
		Order("created_at DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		log.Printf("dashboard recent requests failed: %v", err)
		recent = []models.BookingRequest{}
	}

	ctx.JSON(iris.Map{
		"counts": counts,
		"recent": recent,
	})
}
