package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  Grade
	}{
		{100, GradeA},
		{71, GradeA},
		{70, GradeA},
		{69, GradeB},
		{60, GradeB},
		{59, GradeC},
		{50, GradeC},
		{49, GradeD},
		{40, GradeD},
		{39, GradeF},
		{1, GradeF},
		{0, GradeF},
		{-5, GradeF},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.score), "score %d", tt.score)
	}
}

// Grade quality never decreases as the score increases.
func TestClassifyMonotonic(t *testing.T) {
	rank := map[Grade]int{GradeF: 0, GradeD: 1, GradeC: 2, GradeB: 3, GradeA: 4}

	prev := rank[Classify(-50)]
	for score := -49; score <= 150; score++ {
		cur := rank[Classify(score)]
		if cur < prev {
			t.Fatalf("grade quality dropped at score %d: %d -> %d", score, prev, cur)
		}
		prev = cur
	}
}
