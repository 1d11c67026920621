package validation

// CreatorData is the bundle the creator-only rules operate on.
type CreatorData struct {
	CreatorID string
	UserID    string
}

// NewCreatorRuleSet builds the creator-only rule used by update and delete:
// only the payment's creator may modify or remove it.
func NewCreatorRuleSet() RuleSet[CreatorData] {
	return NewRuleSet(
		Check[CreatorData]{
			Message: UserNotCreator,
			Valid: func(d CreatorData) bool {
				return d.UserID == d.CreatorID
			},
		},
	)
}
