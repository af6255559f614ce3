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

type TempleService interface {
	CreateTemple(ctx context.Context, temple domain.Temple) (domain.Temple, error)
	GetTemple(ctx context.Context, id uint) (domain.Temple, error)
	ListTemples(ctx context.Context) ([]domain.Temple, error)
	DeleteTemple(ctx context.Context, id uint) error
}

type TempleHandler struct {
	svc TempleService
}

func NewTempleHandler(svc TempleService) *TempleHandler {
	return &TempleHandler{
		svc: svc,
	}
}

// HandleCreateTemple godoc
// @Summary      Create a temple
// @Tags         temples
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateTempleRequest true "request body"
// @Success      201      {object}   domain.Temple
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /temples/ [post]
// @Security     BearerAuth
func (h *TempleHandler) HandleCreateTemple(ctx *gin.Context) {
	var req request.CreateTempleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	temple, err := h.svc.CreateTemple(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTemple -> h.svc.CreateTemple -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, temple)
}

// HandleListTemples godoc
// @Summary      List temples
// @Tags         temples
// @Produce      json
// @Success      200      {array}    domain.Temple
// @Failure      500      {object}   response.Err
// @Router       /temples/ [get]
func (h *TempleHandler) HandleListTemples(ctx *gin.Context) {
	temples, err := h.svc.ListTemples(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListTemples -> h.svc.ListTemples -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, temples)
}

// HandleGetTemple godoc
// @Summary      Get a temple
// @Tags         temples
// @Produce      json
// @Param        templeID  path      int  true  "Temple ID"
// @Success      200      {object}   domain.Temple
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /temples/{templeID} [get]
func (h *TempleHandler) HandleGetTemple(ctx *gin.Context) {
	id, err := pathID(ctx, "templeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	temple, err := h.svc.GetTemple(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTempleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrTempleNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetTemple -> h.svc.GetTemple -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, temple)
}

// HandleDeleteTemple godoc
// @Summary      Delete a temple with its slots and bookings
// @Tags         temples
// @Produce      json
// @Param        templeID  path      int  true  "Temple ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /temples/{templeID} [delete]
// @Security     BearerAuth
func (h *TempleHandler) HandleDeleteTemple(ctx *gin.Context) {
	id, err := pathID(ctx, "templeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteTemple(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTempleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrTempleNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteTemple -> h.svc.DeleteTemple -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Temple deleted successfully"})
}
