package domain

// SortedBy selects the field group activity queries are ordered on.
type SortedBy string

const (
	SortedByTitle SortedBy = "TITLE"
	SortedByDate  SortedBy = "DATE"
)

// SortOrder selects the direction group activity queries are ordered in.
type SortOrder string

const (
	Ascending  SortOrder = "ASCENDING"
	Descending SortOrder = "DESCENDING"
)

// FilterOptions describes how group payment activity is filtered and ordered.
// Optional fields are AND-combined when present; SortedBy and SortOrder are
// always set. Title matches are case-insensitive substring matches. The
// persistence collaborator is responsible for honoring these semantics.
type FilterOptions struct {
	Title     *string
	Status    *PaymentStatus
	CreatorID *string
	SortedBy  SortedBy
	SortOrder SortOrder
}
