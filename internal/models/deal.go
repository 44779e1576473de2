// Package models defines data structures for DealFlow
package models

import (
	"math"
	"strings"
	"time"
)

// DealStage is a deal's position in the investment pipeline.
type DealStage string

const (
	StageAwareness    DealStage = "awareness"
	StageFirstMeeting DealStage = "first_meeting"
	StageDeepDive     DealStage = "deep_dive"
	StageTermSheet    DealStage = "term_sheet"
	StageDueDiligence DealStage = "due_diligence"
	StageClosing      DealStage = "closing"
	StagePortfolio    DealStage = "portfolio"
	StagePassed       DealStage = "passed"
)

// StageOrder lists the pipeline stages in their nominal progression order,
// with the terminal "passed" state last. Transitions are not required to
// follow this order; it exists for report iteration and display.
var StageOrder = []DealStage{
	StageAwareness,
	StageFirstMeeting,
	StageDeepDive,
	StageTermSheet,
	StageDueDiligence,
	StageClosing,
	StagePortfolio,
	StagePassed,
}

// ParseStage converts a string into a DealStage. Unknown values are
// rejected so an illegal stage can never be persisted.
func ParseStage(s string) (DealStage, bool) {
	stage := DealStage(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range StageOrder {
		if stage == known {
			return stage, true
		}
	}
	return "", false
}

// Terminal reports whether the stage is the absorbing "passed" state.
func (s DealStage) Terminal() bool {
	return s == StagePassed
}

// Deal represents a candidate or portfolio investment.
type Deal struct {
	ID           string    `json:"deal_id" badgerhold:"key"`
	Company      string    `json:"company"`
	Sector       string    `json:"sector" badgerholdIndex:"Sector"`
	RaiseAmount  float64   `json:"raise_amount"`
	Valuation    float64   `json:"valuation"`
	Stage        DealStage `json:"stage" badgerholdIndex:"Stage"`
	LeadInvestor string    `json:"lead_investor,omitempty"`
	CoInvestors  []string  `json:"co_investors"`
	Score        int       `json:"score"`
	Notes        string    `json:"notes"`
	AssignedTo   string    `json:"assigned_to,omitempty"`
	Website      string    `json:"website,omitempty"`
	Founder      string    `json:"founder,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MultipleOnCapital returns valuation divided by raise amount, rounded to
// two decimals. Returns 0.0 when the raise amount is zero. Derived only,
// never persisted.
func (d *Deal) MultipleOnCapital() float64 {
	if d.RaiseAmount == 0 {
		return 0.0
	}
	return math.Round(d.Valuation/d.RaiseAmount*100) / 100
}
