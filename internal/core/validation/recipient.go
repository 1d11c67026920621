package validation

import "github.com/splitgem/payment-manager/internal/core/domain"

// RecipientData is the bundle the creation recipient rules operate on.
type RecipientData struct {
	CreatorID   string
	RecipientID string
	Members     []domain.GroupMember
}

// NewRecipientRuleSet builds the creation-time recipient rules: the
// recipient must not be the creator and must belong to the group.
func NewRecipientRuleSet() RuleSet[RecipientData] {
	return NewRuleSet(
		Check[RecipientData]{
			Message: RecipientIsCreator,
			Valid: func(d RecipientData) bool {
				return d.CreatorID != d.RecipientID
			},
		},
		Check[RecipientData]{
			Message: RecipientNotGroupMember,
			Valid: func(d RecipientData) bool {
				for _, m := range d.Members {
					if m.ID == d.RecipientID {
						return true
					}
				}
				return false
			},
		},
	)
}
