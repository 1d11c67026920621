package domain

// Currency is a currency code as reported by the group or currency collaborators.
type Currency struct {
	Code string `json:"code"`
}

// GroupMember is a single member of a shared-expense group.
type GroupMember struct {
	ID string `json:"id"`
}

// GroupData is a read-only snapshot of a group, fetched per-operation from
// the group collaborator.
type GroupData struct {
	GroupID    string        `json:"groupId"`
	Members    []GroupMember `json:"members"`
	Currencies []Currency    `json:"currencies"`
}

// HasMember reports whether the given user belongs to the group.
func (g GroupData) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
