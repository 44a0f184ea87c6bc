package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/pravaha_expense_app/internal/apperrors"
	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
	"github.com/SscSPs/pravaha_expense_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// authHandler handles company bootstrap and login.
type authHandler struct {
	companyService portssvc.CompanySvcFacade
	userService    portssvc.UserSvcFacade
	tokenService   portssvc.TokenSvcFacade
}

func newAuthHandler(cs portssvc.CompanySvcFacade, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{companyService: cs, userService: us, tokenService: ts}
}

// registerAuthRoutes sets up the public routes. loginLimit guards login only.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(services.Company, services.User, services.Token)

	rg.POST("/signup", h.signup)
	if loginLimit != nil {
		rg.POST("/login", loginLimit, h.login)
	} else {
		rg.POST("/login", h.login)
	}
}

// signup godoc
// @Summary Bootstrap the company
// @Description Creates the company and its first Admin. Only possible while no company exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Company and admin details"
// @Success 201 {object} dto.SignupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "A company already exists"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /signup [post]
func (h *authHandler) signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	company, admin, err := h.companyService.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "sign up")
		return
	}

	c.JSON(http.StatusCreated, dto.SignupResponse{
		Message:         "Company and Admin user created successfully",
		CompanyID:       company.CompanyID,
		CompanyName:     company.Name,
		CompanyCurrency: company.CurrencyCode,
		AdminUserID:     admin.UserID,
	})
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid email or password"})
			return
		}
		respondError(c, err, "log in")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "generate access token")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:   "Login successful",
		UserID:    user.UserID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CompanyID: user.CompanyID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
