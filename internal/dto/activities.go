package dto

import (
	"time"

	"github.com/splitgem/payment-manager/internal/core/domain"
)

// GroupActivityDto is one payment in a group activity listing.
type GroupActivityDto struct {
	ID          string     `json:"id"`
	CreatorID   string     `json:"creatorId"`
	RecipientID string     `json:"recipientId"`
	Title       string     `json:"title"`
	Amount      AmountDto  `json:"amount"`
	FxData      *FxDataDto `json:"fxData,omitempty"`
	Status      string     `json:"status"`
	Date        time.Time  `json:"date"`
}

// GroupActivitiesResponse lists a group's payment activity.
type GroupActivitiesResponse struct {
	GroupID  string             `json:"groupId"`
	Payments []GroupActivityDto `json:"payments"`
}

// NewGroupActivitiesResponse maps filtered payments to the activity listing.
func NewGroupActivitiesResponse(groupID string, payments []domain.Payment) GroupActivitiesResponse {
	resp := GroupActivitiesResponse{
		GroupID:  groupID,
		Payments: make([]GroupActivityDto, len(payments)),
	}
	for i, p := range payments {
		resp.Payments[i] = GroupActivityDto{
			ID:          p.ID,
			CreatorID:   p.CreatorID,
			RecipientID: p.RecipientID,
			Title:       p.Title,
			Amount:      AmountDto{Value: p.Amount.Value, Currency: p.Amount.Currency},
			FxData:      newFxDataDto(p.FxData),
			Status:      string(p.Status),
			Date:        p.Date,
		}
	}
	return resp
}

// AcceptedGroupPaymentDto is one accepted payment in the settlement feed.
type AcceptedGroupPaymentDto struct {
	CreatorID   string     `json:"creatorId"`
	RecipientID string     `json:"recipientId"`
	Title       string     `json:"title"`
	Amount      AmountDto  `json:"amount"`
	FxData      *FxDataDto `json:"fxData,omitempty"`
	Date        time.Time  `json:"date"`
}

// AcceptedGroupPaymentsResponse lists a group's accepted payments.
type AcceptedGroupPaymentsResponse struct {
	GroupID  string                    `json:"groupId"`
	Payments []AcceptedGroupPaymentDto `json:"payments"`
}

// NewAcceptedGroupPaymentsResponse maps accepted payments to the feed shape.
func NewAcceptedGroupPaymentsResponse(groupID string, payments []domain.Payment) AcceptedGroupPaymentsResponse {
	resp := AcceptedGroupPaymentsResponse{
		GroupID:  groupID,
		Payments: make([]AcceptedGroupPaymentDto, len(payments)),
	}
	for i, p := range payments {
		resp.Payments[i] = AcceptedGroupPaymentDto{
			CreatorID:   p.CreatorID,
			RecipientID: p.RecipientID,
			Title:       p.Title,
			Amount:      AmountDto{Value: p.Amount.Value, Currency: p.Amount.Currency},
			FxData:      newFxDataDto(p.FxData),
			Date:        p.Date,
		}
	}
	return resp
}
