package models

import "time"

// StageChangeEvent is the audit record of one stage transition. Created
// exactly once per successful transition (including the terminal pass) and
// never mutated or deleted.
type StageChangeEvent struct {
	ID        string    `json:"change_id" badgerhold:"key"`
	DealID    string    `json:"deal_id" badgerholdIndex:"DealID"`
	OldStage  DealStage `json:"old_stage"`
	NewStage  DealStage `json:"new_stage"`
	ChangedBy string    `json:"changed_by"`
	Reason    string    `json:"reason"`
	ChangedAt time.Time `json:"changed_at"`
}

// InteractionLog records an external touchpoint (call, meeting, email)
// with a deal's company. Independent of stage; purely additive.
type InteractionLog struct {
	ID           string    `json:"interaction_id" badgerhold:"key"`
	DealID       string    `json:"deal_id" badgerholdIndex:"DealID"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Participants []string  `json:"participants"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}
