package domain

// gradeCutoff bands use standard academic cutoffs, inclusive on the lower
// bound of each band.
type gradeCutoff struct {
	floor float64
	grade string
}

var gradeCutoffs = []gradeCutoff{
	{97, "A+"}, {93, "A"}, {90, "A-"},
	{87, "B+"}, {83, "B"}, {80, "B-"},
	{77, "C+"}, {73, "C"}, {70, "C-"},
	{67, "D+"}, {63, "D"}, {60, "D-"},
}

// Grade maps a 0-100 score to a letter grade.
func Grade(score float64) string {
	for _, cutoff := range gradeCutoffs {
		if score >= cutoff.floor {
			return cutoff.grade
		}
	}
	return "F"
}
