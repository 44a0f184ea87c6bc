package handlers

import (
	"net/http"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
	"github.com/SscSPs/pravaha_expense_app/internal/dto"
	"github.com/SscSPs/pravaha_expense_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles user management inside the caller's company.
type adminHandler struct {
	userService portssvc.UserSvcFacade
}

func newAdminHandler(us portssvc.UserSvcFacade) *adminHandler {
	return &adminHandler{userService: us}
}

func registerAdminRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newAdminHandler(userService)

	admin := rg.Group("/admin", middleware.RequireRoles(domain.RoleAdmin))
	{
		admin.POST("/user", h.createUser)
		admin.PATCH("/assign-manager", h.assignManager)
		admin.GET("/users", h.listUsers)
	}
}

// createUser godoc
// @Summary Create a user
// @Description Adds a user to the admin's company. Role defaults to Employee.
// @Tags admin
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "New user"
// @Success 201 {object} dto.CreateUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/user [post]
func (h *adminHandler) createUser(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "create user")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateUserResponse{
		Message: string(user.Role) + " created successfully",
		UserID:  user.UserID,
	})
}

// assignManager godoc
// @Summary Assign or clear a manager
// @Description Sets the manager of a user; a null manager_id clears it.
// @Tags admin
// @Accept json
// @Produce json
// @Param assignment body dto.AssignManagerRequest true "Assignment"
// @Success 200 {object} dto.AssignManagerResponse
// @Failure 400 {object} ErrorResponse "Self assignment, non-manager or reporting cycle"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/assign-manager [patch]
func (h *adminHandler) assignManager(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req dto.AssignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.userService.AssignManager(c.Request.Context(), actor, req); err != nil {
		respondError(c, err, "assign manager")
		return
	}

	c.JSON(http.StatusOK, dto.AssignManagerResponse{
		Message:      "Manager assigned successfully",
		EmployeeID:   req.EmployeeID,
		NewManagerID: req.ManagerID,
	})
}

// listUsers godoc
// @Summary List company users
// @Tags admin
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}

	users, err := h.userService.ListCompanyUsers(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}
