package proto

// MoveRequest asks the advisor for the next move on a board. Board is nine
// cells in row-major order using X, O and '_' for empty.
type MoveRequest struct {
	Board      string `json:"board" binding:"required,board"`
	Mark       string `json:"mark" binding:"required,mark"`
	Difficulty string `json:"difficulty" binding:"required,difficulty"`
	Seed       uint64 `json:"seed,omitempty"`
}

// MoveResponse is the chosen cell and the board after it was marked.
type MoveResponse struct {
	Index int    `json:"index"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Rule  string `json:"rule"`
	Board string `json:"board"`
}

// DifficultyInfo describes one difficulty level.
type DifficultyInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
}
