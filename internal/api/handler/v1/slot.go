package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/request"
	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/response"
	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/service"
)

type SlotService interface {
	CreateSlot(ctx context.Context, params service.CreateSlotParams) (domain.Slot, error)
	UpdateSlot(ctx context.Context, id uint, update domain.SlotUpdate) (domain.Slot, error)
	GetSlot(ctx context.Context, id uint) (domain.Slot, error)
	ListSlots(ctx context.Context, templeID uint, date string) ([]domain.Slot, error)
	DeleteSlot(ctx context.Context, id uint) error
}

type SlotHandler struct {
	svc SlotService
}

func NewSlotHandler(svc SlotService) *SlotHandler {
	return &SlotHandler{
		svc: svc,
	}
}

var slotRuleErrs = []error{
	service.ErrInvalidTimeRange,
	service.ErrSlotOverlap,
	service.ErrReservedExceedsCapacity,
	service.ErrInvalidCapacity,
	service.ErrInvalidRemaining,
}

// slotErr maps slot rule violations to 400 and missing rows to 404.
func slotErr(ctx *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrTempleNotFound) {
		response.RenderErr(ctx, response.ErrNotFound(service.ErrTempleNotFound))
		return
	}
	if errors.Is(err, service.ErrSlotNotFound) {
		response.RenderErr(ctx, response.ErrNotFound(service.ErrSlotNotFound))
		return
	}
	for _, target := range slotRuleErrs {
		if errors.Is(err, target) {
			response.RenderErr(ctx, response.ErrBadRequest(target))
			return
		}
	}

	response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.%s -> %w", op, err)))
}

// HandleCreateSlot godoc
// @Summary      Create a slot for a temple
// @Description  Rejects overlapping slots of the same temple and date. Remaining defaults to capacity minus reservedOfflineTickets.
// @Tags         slots
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateSlotRequest true "request body"
// @Success      201      {object}   domain.Slot
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /slots/ [post]
// @Security     BearerAuth
func (h *SlotHandler) HandleCreateSlot(ctx *gin.Context) {
	var req request.CreateSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	slot, err := h.svc.CreateSlot(ctx.Request.Context(), req.ToParams())
	if err != nil {
		slotErr(ctx, "HandleCreateSlot -> h.svc.CreateSlot", err)
		return
	}

	ctx.JSON(http.StatusCreated, slot)
}

// HandleListSlots godoc
// @Summary      List slots
// @Tags         slots
// @Produce      json
// @Param        templeId  query     int     false  "Temple ID"
// @Param        date      query     string  false  "Date (YYYY-MM-DD)"
// @Success      200      {array}    domain.Slot
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /slots/ [get]
func (h *SlotHandler) HandleListSlots(ctx *gin.Context) {
	var templeID uint
	if raw := ctx.Query("templeId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("templeId must be a positive integer")))
			return
		}
		templeID = uint(id)
	}

	date := ctx.Query("date")
	if date != "" {
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("date must be in YYYY-MM-DD format")))
			return
		}
	}

	slots, err := h.svc.ListSlots(ctx.Request.Context(), templeID, date)
	if err != nil {
		err = fmt.Errorf("v1.HandleListSlots -> h.svc.ListSlots -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, slots)
}

// HandleGetSlot godoc
// @Summary      Get a slot
// @Tags         slots
// @Produce      json
// @Param        slotID    path      int  true  "Slot ID"
// @Success      200      {object}   domain.Slot
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /slots/{slotID} [get]
func (h *SlotHandler) HandleGetSlot(ctx *gin.Context) {
	id, err := pathID(ctx, "slotID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	slot, err := h.svc.GetSlot(ctx.Request.Context(), id)
	if err != nil {
		slotErr(ctx, "HandleGetSlot -> h.svc.GetSlot", err)
		return
	}

	ctx.JSON(http.StatusOK, slot)
}

// HandleUpdateSlot godoc
// @Summary      Update a slot
// @Description  A capacity change shifts remaining by the same delta. An explicit remaining wins.
// @Tags         slots
// @Accept       json
// @Produce      json
// @Param        slotID    path      int  true  "Slot ID"
// @Param        request   body      request.UpdateSlotRequest true "request body"
// @Success      200      {object}   domain.Slot
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /slots/{slotID} [put]
// @Security     BearerAuth
func (h *SlotHandler) HandleUpdateSlot(ctx *gin.Context) {
	id, err := pathID(ctx, "slotID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateSlotRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	slot, err := h.svc.UpdateSlot(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		slotErr(ctx, "HandleUpdateSlot -> h.svc.UpdateSlot", err)
		return
	}

	ctx.JSON(http.StatusOK, slot)
}

// HandleDeleteSlot godoc
// @Summary      Delete a slot
// @Description  Bookings of the slot are kept with their slot cleared.
// @Tags         slots
// @Produce      json
// @Param        slotID    path      int  true  "Slot ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /slots/{slotID} [delete]
// @Security     BearerAuth
func (h *SlotHandler) HandleDeleteSlot(ctx *gin.Context) {
	id, err := pathID(ctx, "slotID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteSlot(ctx.Request.Context(), id); err != nil {
		slotErr(ctx, "HandleDeleteSlot -> h.svc.DeleteSlot", err)
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Slot deleted successfully"})
}
