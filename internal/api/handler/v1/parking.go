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

type ParkingService interface {
	CreateZone(ctx context.Context, zone domain.ParkingZone) (domain.ParkingZone, error)
	GetZone(ctx context.Context, id uint) (domain.ParkingZone, error)
	ListZones(ctx context.Context, templeID uint) ([]domain.ParkingZone, error)
	UpdateZone(ctx context.Context, id uint, update domain.ParkingZoneUpdate) (domain.ParkingZone, error)
	DeleteZone(ctx context.Context, id uint) error
	CreateSlot(ctx context.Context, slot domain.ParkingSlot) (domain.ParkingSlot, error)
	GetSlot(ctx context.Context, id uint) (domain.ParkingSlot, error)
	ListSlots(ctx context.Context, zoneID uint) ([]domain.ParkingSlot, error)
	UpdateSlot(ctx context.Context, id uint, update domain.ParkingSlotUpdate) (domain.ParkingSlot, error)
	DeleteSlot(ctx context.Context, id uint) error
}

type ParkingHandler struct {
	svc ParkingService
}

func NewParkingHandler(svc ParkingService) *ParkingHandler {
	return &ParkingHandler{
		svc: svc,
	}
}

var (
	parkingNotFoundErrs = []error{
		service.ErrTempleNotFound,
		service.ErrParkingZoneNotFound,
		service.ErrParkingSlotNotFound,
	}
	parkingRuleErrs = []error{
		service.ErrParkingCountsExceed,
		service.ErrInvalidParkingCount,
		service.ErrInvalidParkingCapacity,
	}
)

func parkingErr(ctx *gin.Context, op string, err error) {
	for _, target := range parkingNotFoundErrs {
		if errors.Is(err, target) {
			response.RenderErr(ctx, response.ErrNotFound(target))
			return
		}
	}
	for _, target := range parkingRuleErrs {
		if errors.Is(err, target) {
			response.RenderErr(ctx, response.ErrBadRequest(target))
			return
		}
	}

	response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.%s -> %w", op, err)))
}

// HandleCreateZone godoc
// @Summary      Create a parking zone for a temple
// @Tags         parking
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateParkingZoneRequest true "request body"
// @Success      201      {object}   domain.ParkingZone
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /parking/ [post]
// @Security     BearerAuth
func (h *ParkingHandler) HandleCreateZone(ctx *gin.Context) {
	var req request.CreateParkingZoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	zone, err := h.svc.CreateZone(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		parkingErr(ctx, "HandleCreateZone -> h.svc.CreateZone", err)
		return
	}

	ctx.JSON(http.StatusCreated, zone)
}

// HandleListZones godoc
// @Summary      List parking zones
// @Tags         parking
// @Produce      json
// @Success      200      {array}    domain.ParkingZone
// @Failure      500      {object}   response.Err
// @Router       /parking/ [get]
func (h *ParkingHandler) HandleListZones(ctx *gin.Context) {
	zones, err := h.svc.ListZones(ctx.Request.Context(), 0)
	if err != nil {
		parkingErr(ctx, "HandleListZones -> h.svc.ListZones", err)
		return
	}

	ctx.JSON(http.StatusOK, zones)
}

// HandleListTempleZones godoc
// @Summary      List the parking zones of a temple
// @Tags         parking
// @Produce      json
// @Param        templeID  path      int  true  "Temple ID"
// @Success      200      {array}    domain.ParkingZone
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /parking/temple/{templeID} [get]
func (h *ParkingHandler) HandleListTempleZones(ctx *gin.Context) {
	templeID, err := pathID(ctx, "templeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	zones, err := h.svc.ListZones(ctx.Request.Context(), templeID)
	if err != nil {
		parkingErr(ctx, "HandleListTempleZones -> h.svc.ListZones", err)
		return
	}

	ctx.JSON(http.StatusOK, zones)
}

// HandleGetZone godoc
// @Summary      Get a parking zone
// @Tags         parking
// @Produce      json
// @Param        parkingID path      int  true  "Parking zone ID"
// @Success      200      {object}   domain.ParkingZone
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /parking/{parkingID} [get]
func (h *ParkingHandler) HandleGetZone(ctx *gin.Context) {
	id, err := pathID(ctx, "parkingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	zone, err := h.svc.GetZone(ctx.Request.Context(), id)
	if err != nil {
		parkingErr(ctx, "HandleGetZone -> h.svc.GetZone", err)
		return
	}

	ctx.JSON(http.StatusOK, zone)
}

// HandleUpdateZone godoc
// @Summary      Update a parking zone
// @Description  Only the fields present in the body change.
// @Tags         parking
// @Accept       json
// @Produce      json
// @Param        parkingID path      int  true  "Parking zone ID"
// @Param        request   body      request.UpdateParkingZoneRequest true "request body"
// @Success      200      {object}   domain.ParkingZone
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /parking/{parkingID} [put]
// @Security     BearerAuth
func (h *ParkingHandler) HandleUpdateZone(ctx *gin.Context) {
	id, err := pathID(ctx, "parkingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateParkingZoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	zone, err := h.svc.UpdateZone(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		parkingErr(ctx, "HandleUpdateZone -> h.svc.UpdateZone", err)
		return
	}

	ctx.JSON(http.StatusOK, zone)
}

// HandleDeleteZone godoc
// @Summary      Delete a parking zone with its slots
// @Tags         parking
// @Produce      json
// @Param        parkingID path      int  true  "Parking zone ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /parking/{parkingID} [delete]
// @Security     BearerAuth
func (h *ParkingHandler) HandleDeleteZone(ctx *gin.Context) {
	id, err := pathID(ctx, "parkingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteZone(ctx.Request.Context(), id); err != nil {
		parkingErr(ctx, "HandleDeleteZone -> h.svc.DeleteZone", err)
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Parking zone deleted successfully"})
}

// HandleCreateSlot godoc
// @Summary      Create a parking slot in a zone
// @Tags         parking-slots
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateParkingSlotRequest true "request body"
// @Success      201      {object}   domain.ParkingSlot
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /parking-slots/ [post]
// @Security     BearerAuth
func (h *ParkingHandler) HandleCreateSlot(ctx *gin.Context) {
	var req request.CreateParkingSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	slot, err := h.svc.CreateSlot(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		parkingErr(ctx, "HandleCreateSlot -> h.svc.CreateSlot", err)
		return
	}

	ctx.JSON(http.StatusCreated, slot)
}

// HandleListSlots godoc
// @Summary      List parking slots
// @Tags         parking-slots
// @Produce      json
// @Success      200      {array}    domain.ParkingSlot
// @Failure      500      {object}   response.Err
// @Router       /parking-slots/ [get]
func (h *ParkingHandler) HandleListSlots(ctx *gin.Context) {
	slots, err := h.svc.ListSlots(ctx.Request.Context(), 0)
	if err != nil {
		parkingErr(ctx, "HandleListSlots -> h.svc.ListSlots", err)
		return
	}

	ctx.JSON(http.StatusOK, slots)
}

// HandleListZoneSlots godoc
// @Summary      List the slots of a parking zone
// @Tags         parking-slots
// @Produce      json
// @Param        parkingID path      int  true  "Parking zone ID"
// @Success      200      {array}    domain.ParkingSlot
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /parking-slots/parking/{parkingID} [get]
func (h *ParkingHandler) HandleListZoneSlots(ctx *gin.Context) {
	zoneID, err := pathID(ctx, "parkingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	slots, err := h.svc.ListSlots(ctx.Request.Context(), zoneID)
	if err != nil {
		parkingErr(ctx, "HandleListZoneSlots -> h.svc.ListSlots", err)
		return
	}

	ctx.JSON(http.StatusOK, slots)
}

// HandleGetSlot godoc
// @Summary      Get a parking slot
// @Tags         parking-slots
// @Produce      json
// @Param        slotID    path      int  true  "Parking slot ID"
// @Success      200      {object}   domain.ParkingSlot
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /parking-slots/{slotID} [get]
func (h *ParkingHandler) HandleGetSlot(ctx *gin.Context) {
	id, err := pathID(ctx, "slotID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	slot, err := h.svc.GetSlot(ctx.Request.Context(), id)
	if err != nil {
		parkingErr(ctx, "HandleGetSlot -> h.svc.GetSlot", err)
		return
	}

	ctx.JSON(http.StatusOK, slot)
}

// HandleUpdateSlot godoc
// @Summary      Update a parking slot
// @Description  Only the fields present in the body change. parkingId moves the slot to another zone.
// @Tags         parking-slots
// @Accept       json
// @Produce      json
// @Param        slotID    path      int  true  "Parking slot ID"
// @Param        request   body      request.UpdateParkingSlotRequest true "request body"
// @Success      200      {object}   domain.ParkingSlot
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /parking-slots/{slotID} [put]
// @Security     BearerAuth
func (h *ParkingHandler) HandleUpdateSlot(ctx *gin.Context) {
	id, err := pathID(ctx, "slotID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateParkingSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	slot, err := h.svc.UpdateSlot(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		parkingErr(ctx, "HandleUpdateSlot -> h.svc.UpdateSlot", err)
		return
	}

	ctx.JSON(http.StatusOK, slot)
}

// HandleDeleteSlot godoc
// @Summary      Delete a parking slot
// @Tags         parking-slots
// @Produce      json
// @Param        slotID    path      int  true  "Parking slot ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /parking-slots/{slotID} [delete]
// @Security     BearerAuth
func (h *ParkingHandler) HandleDeleteSlot(ctx *gin.Context) {
	id, err := pathID(ctx, "slotID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteSlot(ctx.Request.Context(), id); err != nil {
		parkingErr(ctx, "HandleDeleteSlot -> h.svc.DeleteSlot", err)
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Parking slot deleted successfully"})
}
