package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/i18n"
	"github.com/guttosm/freight-service/internal/middleware"
	"github.com/guttosm/freight-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
	sink        middleware.LogSink
}

// NewAuthHandler creates a new authentication handler. sink may be nil.
func NewAuthHandler(authService service.AuthService, sink middleware.LogSink) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sink:        sink,
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login
// @Description  Authenticates an operator and returns an access and refresh token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.AuthResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.LoginRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	tokens, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.Audit(h.sink, c, model.ActionLogin, "Failed login attempt", err, map[string]interface{}{
			"email": req.Email,
		})
		builder.Fail(err)
		return
	}

	middleware.Audit(h.sink, c, model.ActionLogin, "User logged in", nil, map[string]interface{}{
		"email": user.Email,
	})
	builder.SuccessOK(dto.AuthResponse{TokenPair: *tokens, User: dto.NewUserResponse(user)})
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Register
// @Description  Creates an operator account and returns a token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration information"
// @Success      201 {object} dto.SuccessResponse{data=dto.AuthResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - user already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.RegisterRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	tokens, user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		middleware.Audit(h.sink, c, model.ActionRegister, "Failed registration attempt", err, map[string]interface{}{
			"email": req.Email,
		})
		builder.Fail(err)
		return
	}

	middleware.Audit(h.sink, c, model.ActionRegister, "User registered", nil, map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	})
	builder.SuccessCreated(dto.AuthResponse{TokenPair: *tokens, User: dto.NewUserResponse(user)})
}

// Refresh handles POST /api/auth/refresh requests.
//
// @Summary      Refresh tokens
// @Description  Exchanges a refresh token for a new token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshRequest true "Refresh token"
// @Success      200 {object} dto.SuccessResponse{data=dto.AuthResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid refresh token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.RefreshRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	tokens, user, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(dto.AuthResponse{TokenPair: *tokens, User: dto.NewUserResponse(user)})
}

// Me handles GET /api/auth/me requests.
//
// @Summary      Current operator
// @Description  Returns the operator identified by the access token
// @Tags         Auth
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.UserResponse}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     BearerAuth
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	builder := NewResponseBuilder(c)

	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	builder.SuccessOK(dto.UserResponse{Email: claims.Email, Name: claims.Name, Role: claims.Role})
}
