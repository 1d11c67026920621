package validation

// DecisionData is the bundle the decision rules operate on.
type DecisionData struct {
	UserID      string
	RecipientID string
}

// NewDecisionRuleSet builds the decision rule: only the stored recipient may
// accept or reject a payment. A mismatch is a business-rule failure, not an
// authorization error.
func NewDecisionRuleSet() RuleSet[DecisionData] {
	return NewRuleSet(
		Check[DecisionData]{
			Message: UserNotRecipient,
			Valid: func(d DecisionData) bool {
				return d.UserID == d.RecipientID
			},
		},
	)
}
