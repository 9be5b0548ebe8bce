package domain_test

import (
	"testing"

	"toobuff/internal/modules/report/domain"
)

func TestGrade(t *testing.T) {
	t.Parallel()
	cases := []struct {
		score float64
		want  string
	}{
		{100, "A+"},
		{97, "A+"},
		{96.9, "A"},
		{93, "A"},
		{90, "A-"},
		{89.99, "B+"},
		{83, "B"},
		{80, "B-"},
		{77, "C+"},
		{70, "C-"},
		{66.67, "D"},
		{60, "D-"},
		{59.99, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		if got := domain.Grade(tc.score); got != tc.want {
			t.Fatalf("Grade(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
