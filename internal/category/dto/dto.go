package dto

type CategoryFilters struct {
	ActiveOnly bool
	Search     string // matched against the category name
}
