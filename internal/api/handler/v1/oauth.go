package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/response"
	"github.com/dharma-pro/temple-booking/internal/config"
	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/pkg/jwthelper"
	"github.com/dharma-pro/temple-booking/internal/service"
)

const oauthStateCookie = "oauth_state"

var (
	errOAuthDisabled = errors.New("oauth2 login is not configured")
	errOAuthState    = errors.New("oauth2 state mismatch")
)

type OAuthProvider interface {
	Enabled() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (service.OAuthProfile, error)
}

type OAuthService interface {
	UpsertUser(ctx context.Context, profile service.OAuthProfile) (domain.User, error)
}

type OAuthHandler struct {
	api      *config.APIConfig
	conf     *config.OAuthConfig
	provider OAuthProvider
	svc      OAuthService
}

func NewOAuthHandler(api *config.APIConfig, conf *config.OAuthConfig, provider OAuthProvider, svc OAuthService) *OAuthHandler {
	return &OAuthHandler{
		api:      api,
		conf:     conf,
		provider: provider,
		svc:      svc,
	}
}

// HandleAuthorize godoc
// @Summary      Start Google login
// @Tags         oauth2
// @Success      302
// @Failure      404      {object}   response.Err
// @Router       /oauth2/authorization/google [get]
func (h *OAuthHandler) HandleAuthorize(ctx *gin.Context) {
	if !h.provider.Enabled() {
		response.RenderErr(ctx, response.ErrNotFound(errOAuthDisabled))
		return
	}

	state := uuid.NewString()
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(oauthStateCookie, state, 600, "/", "", ctx.Request.TLS != nil, true)

	ctx.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// HandleCallback godoc
// @Summary      Google login callback
// @Description  Signs the user in, creating the account on first login, and redirects to the front-end with ?token=.
// @Tags         oauth2
// @Param        code      query     string  true  "Authorization code"
// @Param        state     query     string  true  "State"
// @Success      302
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /login/oauth2/code/google [get]
func (h *OAuthHandler) HandleCallback(ctx *gin.Context) {
	if !h.provider.Enabled() {
		response.RenderErr(ctx, response.ErrNotFound(errOAuthDisabled))
		return
	}

	expected, err := ctx.Cookie(oauthStateCookie)
	if err != nil || expected == "" || expected != ctx.Query("state") {
		response.RenderErr(ctx, response.ErrUnauthorized(errOAuthState))
		return
	}
	ctx.SetCookie(oauthStateCookie, "", -1, "/", "", ctx.Request.TLS != nil, true)

	code := ctx.Query("code")
	if code == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("code is required")))
		return
	}

	profile, err := h.provider.Exchange(ctx.Request.Context(), code)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(fmt.Errorf("v1.HandleCallback -> h.provider.Exchange -> %w", err)))
		return
	}

	user, err := h.svc.UpsertUser(ctx.Request.Context(), profile)
	if err != nil {
		if errors.Is(err, service.ErrOAuthEmailMissing) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrOAuthEmailMissing))
			return
		}

		err = fmt.Errorf("v1.HandleCallback -> h.svc.UpsertUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.api.JWTSigningKey), user.ID, jwthelper.RoleUser, h.api.JWTTTL)
	if err != nil {
		err = fmt.Errorf("v1.HandleCallback -> jwthelper.GenerateToken() -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	target, err := url.Parse(h.conf.FrontendRedirect)
	if err != nil {
		err = fmt.Errorf("v1.HandleCallback -> url.Parse -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}
	q := target.Query()
	q.Set("token", token)
	target.RawQuery = q.Encode()

	ctx.Redirect(http.StatusFound, target.String())
}
