package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

// AccountHandler serves the pages of a logged-in user
type AccountHandler struct {
	withdrawalUseCase usecase.WithdrawalUseCase
	view              *view.Renderer
	logger            coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(
	withdrawalUseCase usecase.WithdrawalUseCase,
	renderer *view.Renderer,
	logger coreport.Logger,
) *AccountHandler {
	return &AccountHandler{
		withdrawalUseCase: withdrawalUseCase,
		view:              renderer,
		logger:            logger,
	}
}

// Dashboard handles GET /dashboard
func (h *AccountHandler) Dashboard(c *gin.Context) {
	user := middleware.CurrentUser(c)

	history, err := h.withdrawalUseCase.History(c.Request.Context(), user.ID)
	if err != nil {
		middleware.AbortWithFailure(c, http.StatusInternalServerError, err)
		return
	}

	h.view.Render(c, http.StatusOK, "dashboard.html", gin.H{
		"Transactions": history,
	})
}

// WithdrawPage handles GET /withdraw
func (h *AccountHandler) WithdrawPage(c *gin.Context) {
	h.view.Render(c, http.StatusOK, "withdraw.html", gin.H{
		"Form": usecase.WithdrawalRequest{},
	})
}

// ConfirmWithdrawal handles POST /withdraw/confirm
func (h *AccountHandler) ConfirmWithdrawal(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req usecase.WithdrawalRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderWithdrawError(c, req, h.view.Message(c, "withdraw.invalidAmount"))
		return
	}

	txn, err := h.withdrawalUseCase.RequestWithdrawal(c.Request.Context(), user.ID, req)
	if err != nil {
		var insufficient *domainerr.InsufficientBalanceError
		switch {
		case errors.Is(err, domainerr.ErrInvalidAmount):
			h.renderWithdrawError(c, req, h.view.Message(c, "withdraw.invalidAmount"))
		case errors.As(err, &insufficient):
			h.renderWithdrawError(c, req, h.view.Message(c, "withdraw.insufficient", insufficient.CurrBalance))
		default:
			middleware.AbortWithFailure(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/invoice/%d", txn.ID))
}

func (h *AccountHandler) renderWithdrawError(c *gin.Context, req usecase.WithdrawalRequest, message string) {
	h.view.Render(c, http.StatusOK, "withdraw.html", gin.H{
		"Form":  req,
		"Error": message,
	})
}

// Invoice handles GET /invoice/:id. Unknown or foreign invoices send the
// viewer back to the dashboard.
func (h *AccountHandler) Invoice(c *gin.Context) {
	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	txn, err := h.withdrawalUseCase.GetInvoice(c.Request.Context(), middleware.CurrentUser(c), transactionID)
	if err != nil {
		if domainerr.IsNotFoundError(err) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		middleware.AbortWithFailure(c, http.StatusInternalServerError, err)
		return
	}

	h.view.Render(c, http.StatusOK, "invoice.html", gin.H{
		"Transaction": txn,
	})
}
