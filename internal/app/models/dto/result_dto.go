package dto

// AddResultRequest represents a result entry submission. Score arrives as a
// string and is coerced to an integer by the service; that coercion is the
// only validation applied.
type AddResultRequest struct {
	Course string `json:"course" binding:"required"`
	Score  string `json:"score" binding:"required"`
}
