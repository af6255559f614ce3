package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/request"
	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/response"
	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/service"
)

type BookingService interface {
	CreateBooking(ctx context.Context, params service.CreateBookingParams) (domain.Booking, error)
	CreateKioskBooking(ctx context.Context, params service.KioskBookingParams) (domain.Booking, error)
	GetBooking(ctx context.Context, id uint) (domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListUserBookings(ctx context.Context, userID uint) ([]domain.Booking, error)
	DeleteBooking(ctx context.Context, id uint) error
}

type BookingHandler struct {
	svc BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{
		svc: svc,
	}
}

func bookingErr(ctx *gin.Context, op string, err error) {
	for _, target := range []error{service.ErrUserNotFound, service.ErrTempleNotFound, service.ErrSlotNotFound, service.ErrBookingNotFound} {
		if errors.Is(err, target) {
			response.RenderErr(ctx, response.ErrNotFound(target))
			return
		}
	}
	for _, target := range []error{service.ErrSlotFull, service.ErrSlotTempleMismatch} {
		if errors.Is(err, target) {
			response.RenderErr(ctx, response.ErrBadRequest(target))
			return
		}
	}

	response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.%s -> %w", op, err)))
}

// HandleCreateBooking godoc
// @Summary      Book a temple visit
// @Description  Takes max(1, participants) seats from the slot when capacity enforcement is on.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateBookingRequest true "request body"
// @Success      201      {object}   domain.Booking
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /bookings/ [post]
func (h *BookingHandler) HandleCreateBooking(ctx *gin.Context) {
	var req request.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	booking, err := h.svc.CreateBooking(ctx.Request.Context(), req.ToParams())
	if err != nil {
		bookingErr(ctx, "HandleCreateBooking -> h.svc.CreateBooking", err)
		return
	}

	ctx.JSON(http.StatusCreated, booking)
}

// HandleCreateKioskBooking godoc
// @Summary      Record an offline booking at the temple counter
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request   body      request.KioskBookingRequest true "request body"
// @Success      201      {object}   domain.Booking
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /bookings/kiosk/ [post]
// @Security     BearerAuth
func (h *BookingHandler) HandleCreateKioskBooking(ctx *gin.Context) {
	var req request.KioskBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	booking, err := h.svc.CreateKioskBooking(ctx.Request.Context(), req.ToParams())
	if err != nil {
		bookingErr(ctx, "HandleCreateKioskBooking -> h.svc.CreateKioskBooking", err)
		return
	}

	ctx.JSON(http.StatusCreated, booking)
}

// HandleListBookings godoc
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Success      200      {array}    domain.Booking
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /bookings/ [get]
// @Security     BearerAuth
func (h *BookingHandler) HandleListBookings(ctx *gin.Context) {
	bookings, err := h.svc.ListBookings(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListBookings -> h.svc.ListBookings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// HandleGetBooking godoc
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        bookingID path      int  true  "Booking ID"
// @Success      200      {object}   domain.Booking
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /bookings/{bookingID} [get]
func (h *BookingHandler) HandleGetBooking(ctx *gin.Context) {
	id, err := pathID(ctx, "bookingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	booking, err := h.svc.GetBooking(ctx.Request.Context(), id)
	if err != nil {
		bookingErr(ctx, "HandleGetBooking -> h.svc.GetBooking", err)
		return
	}

	ctx.JSON(http.StatusOK, booking)
}

// HandleListUserBookings godoc
// @Summary      List the bookings of a user
// @Tags         bookings
// @Produce      json
// @Param        userID    path      int  true  "User ID"
// @Success      200      {array}    domain.Booking
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /bookings/user/{userID} [get]
func (h *BookingHandler) HandleListUserBookings(ctx *gin.Context) {
	userID, err := pathID(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	bookings, err := h.svc.ListUserBookings(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListUserBookings -> h.svc.ListUserBookings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// HandleDeleteBooking godoc
// @Summary      Delete a booking
// @Description  Participants and payment go with it; its seats return to the slot.
// @Tags         bookings
// @Produce      json
// @Param        bookingID path      int  true  "Booking ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /bookings/{bookingID} [delete]
func (h *BookingHandler) HandleDeleteBooking(ctx *gin.Context) {
	id, err := pathID(ctx, "bookingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteBooking(ctx.Request.Context(), id); err != nil {
		bookingErr(ctx, "HandleDeleteBooking -> h.svc.DeleteBooking", err)
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Booking deleted successfully"})
}
