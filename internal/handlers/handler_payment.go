package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitgem/payment-manager/internal/apperrors"
	portssvc "github.com/splitgem/payment-manager/internal/core/ports/services"
	"github.com/splitgem/payment-manager/internal/dto"
	"github.com/splitgem/payment-manager/internal/middleware"
)

// paymentHandler handles the external payment endpoints.
type paymentHandler struct {
	payments portssvc.PaymentSvcFacade
}

func newPaymentHandler(payments portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{payments: payments}
}

// createPayment godoc
// @Summary Create a payment
// @Description Creates a new pending payment between the caller and a group member
// @Tags payments
// @Accept json
// @Produce json
// @Param groupId query string true "Group ID"
// @Param payment body dto.PaymentCreationRequest true "Payment to create"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorsHolder "Validation failure"
// @Failure 403 {object} ErrorsHolder "Caller is not a group member"
// @Router /external/payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)
	groupID := c.Query("groupId")
	if groupID == "" {
		respondBindingError(c, []string{"Group id can not be blank"})
		return
	}

	var req dto.PaymentCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, dto.TranslateBindingError(err))
		return
	}

	group, err := h.payments.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !group.HasMember(userID) {
		respondError(c, fmt.Errorf("%w: user %s, group %s", apperrors.ErrGroupAccess, userID, groupID))
		return
	}

	payment, err := h.payments.CreatePayment(c.Request.Context(), *group, req.ToDomain(userID, groupID))
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Payment created", slog.String("payment_id", payment.ID), slog.String("group_id", groupID))
	c.JSON(http.StatusCreated, dto.NewPaymentResponse(*payment))
}

// getPayment godoc
// @Summary Get a payment
// @Description Retrieves a payment by id within a group
// @Tags payments
// @Produce json
// @Param paymentId path string true "Payment ID"
// @Param groupId path string true "Group ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 403 {object} ErrorsHolder "Caller is not a group member"
// @Failure 404 {object} ErrorsHolder "Payment not found"
// @Router /external/payments/{paymentId}/groups/{groupId} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	paymentID := c.Param("paymentId")
	groupID := c.Param("groupId")

	if err := h.checkGroupAccess(c.Request.Context(), userID, groupID); err != nil {
		respondError(c, err)
		return
	}

	payment, err := h.payments.GetPayment(c.Request.Context(), paymentID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentResponse(*payment))
}

// decide godoc
// @Summary Decide on a payment
// @Description Applies the recipient's ACCEPT or REJECT to a pending payment
// @Tags payments
// @Accept json
// @Produce json
// @Param decision body dto.PaymentDecisionRequest true "Decision"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorsHolder "Validation failure"
// @Failure 404 {object} ErrorsHolder "Payment not found"
// @Router /external/payments/decide [post]
func (h *paymentHandler) decide(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.PaymentDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, dto.TranslateBindingError(err))
		return
	}

	if err := h.checkGroupAccess(c.Request.Context(), userID, req.GroupID); err != nil {
		respondError(c, err)
		return
	}

	payment, err := h.payments.Decide(c.Request.Context(), req.ToDomain(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Payment decided", slog.String("payment_id", payment.ID), slog.String("status", string(payment.Status)))
	c.JSON(http.StatusOK, dto.NewPaymentResponse(*payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Archives a copy of the payment and removes it from active storage
// @Tags payments
// @Param paymentId path string true "Payment ID"
// @Param groupId path string true "Group ID"
// @Success 200
// @Failure 400 {object} ErrorsHolder "Caller is not the creator"
// @Failure 404 {object} ErrorsHolder "Payment not found"
// @Router /external/payments/{paymentId}/groups/{groupId} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)
	paymentID := c.Param("paymentId")
	groupID := c.Param("groupId")

	if err := h.checkGroupAccess(c.Request.Context(), userID, groupID); err != nil {
		respondError(c, err)
		return
	}

	if err := h.payments.DeletePayment(c.Request.Context(), paymentID, groupID, userID); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Payment deleted", slog.String("payment_id", paymentID), slog.String("group_id", groupID))
	c.Status(http.StatusOK)
}

// updatePayment godoc
// @Summary Update a payment
// @Description Replaces the payment's content and reopens the approval cycle
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentId path string true "Payment ID"
// @Param groupId path string true "Group ID"
// @Param payment body dto.PaymentUpdateRequest true "New payment content"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorsHolder "Validation failure"
// @Failure 404 {object} ErrorsHolder "Payment not found"
// @Router /external/payments/{paymentId}/groups/{groupId} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)
	paymentID := c.Param("paymentId")
	groupID := c.Param("groupId")

	var req dto.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, dto.TranslateBindingError(err))
		return
	}

	group, err := h.payments.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !group.HasMember(userID) {
		respondError(c, fmt.Errorf("%w: user %s, group %s", apperrors.ErrGroupAccess, userID, groupID))
		return
	}

	payment, err := h.payments.UpdatePayment(c.Request.Context(), *group, req.ToDomain(paymentID, groupID, userID))
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Payment updated", slog.String("payment_id", payment.ID))
	c.JSON(http.StatusOK, dto.NewPaymentResponse(*payment))
}

// checkGroupAccess verifies the caller belongs to the group via the group
// collaborator's user-groups listing.
func (h *paymentHandler) checkGroupAccess(ctx context.Context, userID, groupID string) error {
	groups, err := h.payments.GetUserGroups(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range groups {
		if id == groupID {
			return nil
		}
	}
	return fmt.Errorf("%w: user %s, group %s", apperrors.ErrGroupAccess, userID, groupID)
}
