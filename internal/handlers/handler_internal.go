package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitgem/payment-manager/internal/core/domain"
	portssvc "github.com/splitgem/payment-manager/internal/core/ports/services"
	"github.com/splitgem/payment-manager/internal/dto"
)

// internalPaymentHandler handles the service-to-service payment endpoints.
type internalPaymentHandler struct {
	payments portssvc.PaymentSvcFacade
	balances portssvc.BalanceSvcFacade
}

func newInternalPaymentHandler(payments portssvc.PaymentSvcFacade, balances portssvc.BalanceSvcFacade) *internalPaymentHandler {
	return &internalPaymentHandler{payments: payments, balances: balances}
}

// getGroupActivities godoc
// @Summary List group payment activity
// @Description Lists a group's payments, filtered and sorted per query parameters
// @Tags internal
// @Produce json
// @Param groupId path string true "Group ID"
// @Param title query string false "Case-insensitive title substring"
// @Param status query string false "Exact status match" Enums(PENDING, ACCEPTED, REJECTED)
// @Param creatorId query string false "Exact creator match"
// @Param sortedBy query string false "Sort field" Enums(TITLE, DATE) default(DATE)
// @Param sortOrder query string false "Sort direction" Enums(ASCENDING, DESCENDING) default(ASCENDING)
// @Success 200 {object} dto.GroupActivitiesResponse
// @Failure 400 {object} ErrorsHolder "Invalid filter parameters"
// @Router /internal/payments/activities/groups/{groupId} [get]
func (h *internalPaymentHandler) getGroupActivities(c *gin.Context) {
	groupID := c.Param("groupId")

	filter, errs := parseFilterOptions(c)
	if len(errs) > 0 {
		respondBindingError(c, errs)
		return
	}

	payments, err := h.payments.GetGroupActivities(c.Request.Context(), groupID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGroupActivitiesResponse(groupID, payments))
}

// getAcceptedGroupPayments godoc
// @Summary List accepted group payments
// @Description Lists a group's accepted payments in date-ascending order
// @Tags internal
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} dto.AcceptedGroupPaymentsResponse
// @Router /internal/payments/accepted/groups/{groupId} [get]
func (h *internalPaymentHandler) getAcceptedGroupPayments(c *gin.Context) {
	groupID := c.Param("groupId")

	payments, err := h.payments.GetAcceptedGroupPayments(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAcceptedGroupPaymentsResponse(groupID, payments))
}

// getUserBalance godoc
// @Summary Get a user's balance in a group
// @Description Computes the user's per-transaction net position over accepted payments
// @Tags internal
// @Produce json
// @Param groupId path string true "Group ID"
// @Param userId path string true "User ID"
// @Success 200 {object} dto.UserBalanceResponse
// @Router /internal/payments/balance/groups/{groupId}/users/{userId} [get]
func (h *internalPaymentHandler) getUserBalance(c *gin.Context) {
	groupID := c.Param("groupId")
	userID := c.Param("userId")

	elements, err := h.balances.GetUserBalance(c.Request.Context(), groupID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserBalanceResponse(userID, elements))
}

// parseFilterOptions builds FilterOptions from query parameters. SortedBy
// and sortOrder default to DATE ascending; invalid enum values collect
// messages instead of being silently coerced.
func parseFilterOptions(c *gin.Context) (domain.FilterOptions, []string) {
	filter := domain.FilterOptions{
		SortedBy:  domain.SortedByDate,
		SortOrder: domain.Ascending,
	}
	var errs []string

	if title := c.Query("title"); title != "" {
		filter.Title = &title
	}
	if status := c.Query("status"); status != "" {
		switch s := domain.PaymentStatus(status); s {
		case domain.PaymentPending, domain.PaymentAccepted, domain.PaymentRejected:
			filter.Status = &s
		default:
			errs = append(errs, "status must be one of PENDING, ACCEPTED, REJECTED")
		}
	}
	if creatorID := c.Query("creatorId"); creatorID != "" {
		filter.CreatorID = &creatorID
	}
	if sortedBy := c.Query("sortedBy"); sortedBy != "" {
		switch s := domain.SortedBy(sortedBy); s {
		case domain.SortedByTitle, domain.SortedByDate:
			filter.SortedBy = s
		default:
			errs = append(errs, "sortedBy must be one of TITLE, DATE")
		}
	}
	if sortOrder := c.Query("sortOrder"); sortOrder != "" {
		switch o := domain.SortOrder(sortOrder); o {
		case domain.Ascending, domain.Descending:
			filter.SortOrder = o
		default:
			errs = append(errs, "sortOrder must be one of ASCENDING, DESCENDING")
		}
	}

	return filter, errs
}
