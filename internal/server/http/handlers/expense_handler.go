package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/6631501193-blip/tracking-server/internal/domain/errors"
	"github.com/6631501193-blip/tracking-server/internal/domain/model"
	"github.com/6631501193-blip/tracking-server/internal/server/http/dto"
)

// ExpenseHandler manages expense CRUD endpoints.
type ExpenseHandler struct {
	facade ExpenseFacade
}

// NewExpenseHandler constructs ExpenseHandler.
func NewExpenseHandler(facade ExpenseFacade) *ExpenseHandler {
	return &ExpenseHandler{facade: facade}
}

// List handles GET /expenses.
func (h *ExpenseHandler) List(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	h.respondReport(c, func() (*model.ExpenseReport, error) {
		return h.facade.Expenses(c.Request.Context(), userID)
	})
}

// Today handles GET /expenses/today.
func (h *ExpenseHandler) Today(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	h.respondReport(c, func() (*model.ExpenseReport, error) {
		return h.facade.TodayExpenses(c.Request.Context(), userID)
	})
}

// Search handles GET /expenses/search.
func (h *ExpenseHandler) Search(c *gin.Context) {
	userID, ok := queryUserID(c)
	keyword := c.Query("q")
	if !ok || keyword == "" {
		writeError(c, http.StatusBadRequest, "user_id and q are required")
		return
	}
	h.respondReport(c, func() (*model.ExpenseReport, error) {
		return h.facade.SearchExpenses(c.Request.Context(), userID, keyword)
	})
}

// Add handles POST /expenses.
func (h *ExpenseHandler) Add(c *gin.Context) {
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "user_id, description and amount are required")
		return
	}
	if req.UserID <= 0 || req.Text() == "" || req.Amount == nil {
		writeError(c, http.StatusBadRequest, "user_id, description and amount are required")
		return
	}

	expense, err := h.facade.AddExpense(c.Request.Context(), req.UserID, req.Text(), *req.Amount, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			writeError(c, http.StatusBadRequest, "invalid amount")
		case errors.Is(err, domainErrors.ErrInvalidDate):
			writeError(c, http.StatusBadRequest, "invalid date")
		default:
			writeError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(*expense))
}

// Update handles PUT /expenses/:id.
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, http.StatusNotFound, "expense not found")
		return
	}

	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "user_id, description and amount are required")
		return
	}
	if req.UserID <= 0 || req.Text() == "" || req.Amount == nil {
		writeError(c, http.StatusBadRequest, "user_id, description and amount are required")
		return
	}

	expense, err := h.facade.UpdateExpense(c.Request.Context(), id, req.UserID, req.Text(), *req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			writeError(c, http.StatusNotFound, "expense not found")
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			writeError(c, http.StatusBadRequest, "invalid amount")
		default:
			writeError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(*expense))
}

// Delete handles DELETE /expenses/:id.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, http.StatusNotFound, "expense not found")
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.facade.DeleteExpense(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			writeError(c, http.StatusNotFound, "expense not found")
			return
		}
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteExpenseResponse{DeletedID: id})
}

func (h *ExpenseHandler) respondReport(c *gin.Context, fetch func() (*model.ExpenseReport, error)) {
	report, err := fetch()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseListResponse(report))
}
