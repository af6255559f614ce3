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

type ParticipantService interface {
	AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	GetParticipant(ctx context.Context, id uint) (domain.Participant, error)
	ListParticipants(ctx context.Context, bookingID uint) ([]domain.Participant, error)
	DeleteParticipant(ctx context.Context, id uint) error
}

type ParticipantHandler struct {
	svc ParticipantService
}

func NewParticipantHandler(svc ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

func participantErr(ctx *gin.Context, op string, err error) {
	for _, target := range []error{service.ErrBookingNotFound, service.ErrParticipantNotFound} {
		if errors.Is(err, target) {
			response.RenderErr(ctx, response.ErrNotFound(target))
			return
		}
	}

	response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.%s -> %w", op, err)))
}

// HandleAddParticipant godoc
// @Summary      Add a participant to a booking
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request   body      request.AddParticipantRequest true "request body"
// @Success      201      {object}   domain.Participant
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /participant/add [post]
func (h *ParticipantHandler) HandleAddParticipant(ctx *gin.Context) {
	var req request.AddParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.AddParticipant(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		participantErr(ctx, "HandleAddParticipant -> h.svc.AddParticipant", err)
		return
	}

	ctx.JSON(http.StatusCreated, participant)
}

// HandleGetParticipant godoc
// @Summary      Get a participant
// @Tags         participants
// @Produce      json
// @Param        participantID path  int  true  "Participant ID"
// @Success      200      {object}   domain.Participant
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /participant/{participantID} [get]
func (h *ParticipantHandler) HandleGetParticipant(ctx *gin.Context) {
	id, err := pathID(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.GetParticipant(ctx.Request.Context(), id)
	if err != nil {
		participantErr(ctx, "HandleGetParticipant -> h.svc.GetParticipant", err)
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleListParticipants godoc
// @Summary      List the participants of a booking
// @Tags         participants
// @Produce      json
// @Param        bookingID path      int  true  "Booking ID"
// @Success      200      {array}    domain.Participant
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /participant/booking/{bookingID} [get]
func (h *ParticipantHandler) HandleListParticipants(ctx *gin.Context) {
	bookingID, err := pathID(ctx, "bookingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participants, err := h.svc.ListParticipants(ctx.Request.Context(), bookingID)
	if err != nil {
		participantErr(ctx, "HandleListParticipants -> h.svc.ListParticipants", err)
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleDeleteParticipant godoc
// @Summary      Remove a participant
// @Tags         participants
// @Produce      json
// @Param        participantID path  int  true  "Participant ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /participant/{participantID} [delete]
func (h *ParticipantHandler) HandleDeleteParticipant(ctx *gin.Context) {
	id, err := pathID(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteParticipant(ctx.Request.Context(), id); err != nil {
		participantErr(ctx, "HandleDeleteParticipant -> h.svc.DeleteParticipant", err)
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Participant deleted successfully"})
}
