package domain

import "time"

// ConversationPhase tells the chat orchestrator how to interpret the next
// user message.
type ConversationPhase string

const (
	ConversationPhase_Idle          ConversationPhase = "IDLE"
	ConversationPhase_AwaitingField ConversationPhase = "AWAITING_FIELD"
)

// PositionMapping records, for one rendered task listing, which task id was
// shown at each 1-based position. It lets a later message like "complete the
// second one" resolve against what the user actually saw.
type PositionMapping struct {
	Positions map[int]int64 `json:"positions"`
	TaskCount int           `json:"task_count"`
	CreatedAt time.Time     `json:"created_at"`
}

// TaskAtPosition returns the task id shown at the given 1-based position.
func (m PositionMapping) TaskAtPosition(pos int) (int64, bool) {
	if m.Positions == nil {
		return 0, false
	}
	id, ok := m.Positions[pos]
	return id, ok
}

// ConversationState is the carry-over between chat turns. It is persisted as
// part of the latest assistant message metadata and reloaded on the next
// turn; a missing or undecodable state means a fresh Idle state.
type ConversationState struct {
	Phase        ConversationPhase `json:"phase"`
	AwaitedField DraftField        `json:"awaited_field,omitempty"`
	Draft        *TaskDraft        `json:"draft,omitempty"`
	LastListing  *PositionMapping  `json:"last_listing,omitempty"`
}

// NewConversationState returns a fresh Idle state with no pending draft.
func NewConversationState() ConversationState {
	return ConversationState{Phase: ConversationPhase_Idle}
}

// IsAwaitingField reports whether the orchestrator asked the user for a
// draft field on the previous turn.
func (s ConversationState) IsAwaitingField() bool {
	return s.Phase == ConversationPhase_AwaitingField && s.Draft != nil
}

// ClearDraft drops the pending draft and returns the state to Idle. The last
// listing survives so positional references keep working after an add flow.
func (s *ConversationState) ClearDraft() {
	s.Phase = ConversationPhase_Idle
	s.AwaitedField = ""
	s.Draft = nil
}

// RecordListing replaces the remembered listing with a new one.
func (s *ConversationState) RecordListing(tasks []Task, at time.Time) {
	positions := make(map[int]int64, len(tasks))
	for i, t := range tasks {
		positions[i+1] = t.ID
	}
	s.LastListing = &PositionMapping{
		Positions: positions,
		TaskCount: len(tasks),
		CreatedAt: at,
	}
}
