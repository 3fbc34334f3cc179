package jump_step

// JumpStepRequest HTTP request model
type JumpStepRequest struct {
	Step int `json:"step"` // 1..3
}
