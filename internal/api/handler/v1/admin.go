package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/request"
	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/response"
	"github.com/dharma-pro/temple-booking/internal/api/middleware"
	"github.com/dharma-pro/temple-booking/internal/config"
	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/pkg/jwthelper"
	"github.com/dharma-pro/temple-booking/internal/service"
)

type AdminService interface {
	Register(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	Login(ctx context.Context, email, password string) (domain.Admin, error)
	GetAdmin(ctx context.Context, id uint) (domain.Admin, error)
}

type AdminHandler struct {
	conf *config.APIConfig
	svc  AdminService
}

func NewAdminHandler(conf *config.APIConfig, svc AdminService) *AdminHandler {
	return &AdminHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleRegister godoc
// @Summary      Register an admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request   body      request.RegisterAdminRequest true "request body"
// @Success      201      {object}   domain.Admin
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/auth/register [post]
func (h *AdminHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	admin, err := h.svc.Register(ctx.Request.Context(), domain.Admin{
		Name:     req.AdminName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrAdminEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAdminEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, admin)
}

// HandleLogin godoc
// @Summary      Login an admin
// @Description  Accepts JSON or an OAuth2 password form where username carries the email.
// @Tags         admin
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request   body      request.AdminLoginRequest true "request body"
// @Success      200      {object}   response.AdminTokenResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/auth/login [post]
func (h *AdminHandler) HandleLogin(ctx *gin.Context) {
	var req request.AdminLoginRequest
	var err error
	if ctx.ContentType() == binding.MIMEPOSTForm {
		err = ctx.ShouldBindWith(&req, binding.Form)
	} else {
		err = ctx.ShouldBindJSON(&req)
	}
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	admin, err := h.svc.Login(ctx.Request.Context(), req.Login(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), admin.ID, jwthelper.RoleAdmin, h.conf.JWTTTL)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken() -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.AdminTokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// HandleMe godoc
// @Summary      The admin behind the bearer token
// @Tags         admin
// @Produce      json
// @Success      200      {object}   domain.Admin
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/auth/me [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleMe(ctx *gin.Context) {
	id, err := middleware.Subject(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))
		return
	}

	admin, err := h.svc.GetAdmin(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAdminNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleMe -> h.svc.GetAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, admin)
}
