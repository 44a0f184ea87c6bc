package handlers

import (
	"net/http"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
	"github.com/SscSPs/pravaha_expense_app/internal/dto"
	"github.com/SscSPs/pravaha_expense_app/internal/middleware"
	"github.com/SscSPs/pravaha_expense_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles expense submission, listing and approval.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
	posthog        *utils.PosthogClientWrapper
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade, posthog *utils.PosthogClientWrapper) *expenseHandler {
	return &expenseHandler{expenseService: es, posthog: posthog}
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, posthog *utils.PosthogClientWrapper) {
	h := newExpenseHandler(expenseService, posthog)
	managers := middleware.RequireRoles(domain.RoleManager, domain.RoleAdmin)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.submitExpense)
		expenses.GET("/user/:userId", h.listUserExpenses)
		expenses.PATCH("/approve/:expenseId", managers, h.decideExpense)
		expenses.GET("/company/:companyId", managers, h.listCompanyExpenses)
		expenses.GET("/pending", managers, h.listPendingExpenses)
	}
}

// submitExpense godoc
// @Summary Submit an expense
// @Description Records an expense for the caller and converts it into the company base currency.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} dto.CreateExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Persistence failure or conversion unavailable"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) submitExpense(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	expense, err := h.expenseService.SubmitExpense(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "submit expense")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "expense_submitted", map[string]any{
		"currency":      expense.Currency,
		"base_currency": expense.BaseCurrency,
		"category":      expense.Category,
	})

	c.JSON(http.StatusCreated, dto.CreateExpenseResponse{
		Message:      "Expense submitted successfully",
		ExpenseID:    expense.ExpenseID,
		Amount:       expense.Amount,
		Currency:     expense.Currency,
		BaseAmount:   expense.BaseAmount,
		BaseCurrency: expense.BaseCurrency,
		Status:       expense.Status,
	})
}

// listUserExpenses godoc
// @Summary List a user's expenses
// @Description Newest first. Employees may only list their own.
// @Tags expenses
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/user/{userId} [get]
func (h *expenseHandler) listUserExpenses(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}
	userID, ok := int64Param(c, "userId")
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListUserExpenses(c.Request.Context(), actor, userID)
	if err != nil {
		respondError(c, err, "list user expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// decideExpense godoc
// @Summary Approve or reject an expense
// @Description Managers and admins decide on pending expenses of others in their company.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expenseId path int true "Expense ID"
// @Param decision body dto.UpdateExpenseStatusRequest true "Approved or Rejected"
// @Success 200 {object} dto.UpdateExpenseStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not a manager, or own expense"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already decided"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/approve/{expenseId} [patch]
func (h *expenseHandler) decideExpense(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}
	expenseID, ok := int64Param(c, "expenseId")
	if !ok {
		return
	}

	var req dto.UpdateExpenseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	expense, err := h.expenseService.DecideExpense(c.Request.Context(), actor, expenseID, req.Status)
	if err != nil {
		respondError(c, err, "decide expense")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "expense_decided", map[string]any{"status": string(expense.Status)})

	c.JSON(http.StatusOK, dto.UpdateExpenseStatusResponse{
		Message:   "Expense status updated to " + string(expense.Status),
		ExpenseID: expense.ExpenseID,
		Status:    expense.Status,
	})
}

// listCompanyExpenses godoc
// @Summary List company expenses
// @Tags expenses
// @Produce json
// @Param companyId path int true "Company ID"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/company/{companyId} [get]
func (h *expenseHandler) listCompanyExpenses(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}
	companyID, ok := int64Param(c, "companyId")
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListCompanyExpenses(c.Request.Context(), actor, companyID)
	if err != nil {
		respondError(c, err, "list company expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// listPendingExpenses godoc
// @Summary List pending expenses
// @Description Pending expenses of the caller's company, optionally only those of a manager's direct reports.
// @Tags expenses
// @Produce json
// @Param manager_id query int false "Only direct reports of this manager"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/pending [get]
func (h *expenseHandler) listPendingExpenses(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var params dto.ListPendingExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "manager_id must be an integer"})
		return
	}

	expenses, err := h.expenseService.ListPendingExpenses(c.Request.Context(), actor, params.ManagerID)
	if err != nil {
		respondError(c, err, "list pending expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}
