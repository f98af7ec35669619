package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the administrator pages
type AdminHandler struct {
	userUseCase       usecase.UserUseCase
	withdrawalUseCase usecase.WithdrawalUseCase
	view              *view.Renderer
	logger            coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	userUseCase usecase.UserUseCase,
	withdrawalUseCase usecase.WithdrawalUseCase,
	renderer *view.Renderer,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		userUseCase:       userUseCase,
		withdrawalUseCase: withdrawalUseCase,
		view:              renderer,
		logger:            logger,
	}
}

// Dashboard handles GET /admin
func (h *AdminHandler) Dashboard(c *gin.Context) {
	h.render(c, "")
}

// SetBalance handles POST /admin/balance
func (h *AdminHandler) SetBalance(c *gin.Context) {
	userID, err := strconv.ParseUint(c.PostForm("userId"), 10, 64)
	if err != nil {
		h.render(c, h.view.Message(c, "admin.notFound"))
		return
	}

	if _, err := h.userUseCase.SetBalance(c.Request.Context(), userID, c.PostForm("balance")); err != nil {
		switch {
		case domainerr.IsValidationError(err):
			h.render(c, h.view.Message(c, "admin.invalidBalance"))
		case domainerr.IsNotFoundError(err):
			h.render(c, h.view.Message(c, "admin.notFound"))
		default:
			middleware.AbortWithFailure(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// Review handles POST /admin/approve. The form's action field is either
// "approve" or "reject".
func (h *AdminHandler) Review(c *gin.Context) {
	transactionID, err := strconv.ParseUint(c.PostForm("id"), 10, 64)
	if err != nil {
		h.render(c, h.view.Message(c, "admin.notFound"))
		return
	}

	txn, err := h.withdrawalUseCase.ReviewWithdrawal(c.Request.Context(), transactionID, c.PostForm("action"))
	if err != nil {
		switch {
		case errors.Is(err, domainerr.ErrTransactionAlreadyReviewed):
			h.render(c, h.view.Message(c, "admin.alreadyReviewed"))
		case errors.Is(err, domainerr.ErrInvalidReviewAction):
			h.render(c, h.view.Message(c, "admin.invalidAction"))
		case domainerr.IsNotFoundError(err), errors.Is(err, domainerr.ErrInvalidTransactionID):
			h.render(c, h.view.Message(c, "admin.notFound"))
		default:
			middleware.AbortWithFailure(c, http.StatusInternalServerError, err)
		}
		return
	}

	h.logger.Info("Withdrawal reviewed", map[string]any{
		"transactionId": txn.ID,
		"status":        string(txn.Status),
		"adminId":       middleware.CurrentUser(c).ID,
	})

	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) render(c *gin.Context, message string) {
	ctx := c.Request.Context()

	customers, err := h.userUseCase.ListCustomers(ctx)
	if err != nil {
		middleware.AbortWithFailure(c, http.StatusInternalServerError, err)
		return
	}

	transactions, err := h.withdrawalUseCase.ListAll(ctx)
	if err != nil {
		middleware.AbortWithFailure(c, http.StatusInternalServerError, err)
		return
	}

	h.view.Render(c, http.StatusOK, "admin.html", gin.H{
		"Customers":    customers,
		"Transactions": transactions,
		"Error":        message,
	})
}
