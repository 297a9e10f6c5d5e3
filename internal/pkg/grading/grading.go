// Package grading maps integer course scores to letter grades.
package grading

// Grade is a letter grade derived from an integer score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Classify returns the letter grade for a score. The function is total over
// all integers: anything below 40, including negative scores, is an F.
func Classify(score int) Grade {
	switch {
	case score >= 70:
		return GradeA
	case score >= 60:
		return GradeB
	case score >= 50:
		return GradeC
	case score >= 40:
		return GradeD
	default:
		return GradeF
	}
}
