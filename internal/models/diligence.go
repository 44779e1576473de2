package models

import (
	"strings"
	"time"
)

// DDCategory is a due-diligence evaluation category.
type DDCategory string

const (
	CategoryLegal     DDCategory = "legal"
	CategoryFinancial DDCategory = "financial"
	CategoryTechnical DDCategory = "technical"
	CategoryMarket    DDCategory = "market"
	CategoryTeam      DDCategory = "team"
)

// Categories lists every due-diligence category.
var Categories = []DDCategory{
	CategoryLegal,
	CategoryFinancial,
	CategoryTechnical,
	CategoryMarket,
	CategoryTeam,
}

// ParseCategory converts a string into a DDCategory, rejecting unknowns.
func ParseCategory(s string) (DDCategory, bool) {
	cat := DDCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if cat == known {
			return cat, true
		}
	}
	return "", false
}

// DDStatus is the workflow state of a due-diligence report. Only
// StatusComplete is reachable through the public creation path; the other
// states are kept for forward compatibility with draft reviews.
type DDStatus string

const (
	StatusNotStarted DDStatus = "not_started"
	StatusInProgress DDStatus = "in_progress"
	StatusComplete   DDStatus = "complete"
	StatusBlocked    DDStatus = "blocked"
)

// DueDiligenceReport is one review of a deal in one category. Reports are
// immutable once created; repeated reviews of the same category append new
// reports rather than editing old ones.
type DueDiligenceReport struct {
	ID        string     `json:"dd_id" badgerhold:"key"`
	DealID    string     `json:"deal_id" badgerholdIndex:"DealID"`
	Category  DDCategory `json:"category"`
	Status    DDStatus   `json:"status"`
	Findings  []string   `json:"findings"`
	RedFlags  []string   `json:"red_flags"`
	Rating    int        `json:"rating"`
	Reviewer  string     `json:"reviewer"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
