package adaptive

// Thresholds holds the promotion and demotion score boundaries for a tier.
// A score at or above Promote moves the student up one tier; a score below
// Demote moves them down one tier; anything between stays put.
type Thresholds struct {
	Promote float64
	Demote  float64
}

// scoreThresholds is the per-tier threshold table. Higher tiers demand more
// for promotion and tolerate less before demotion.
var scoreThresholds = map[Difficulty]Thresholds{
	DifficultyEasy:   {Promote: 80, Demote: 40},
	DifficultyMedium: {Promote: 85, Demote: 50},
	DifficultyHard:   {Promote: 90, Demote: 60},
}

// ThresholdsFor returns the threshold pair for a tier. Unknown tiers get the
// medium-ish defaults the scoring path assumes.
func ThresholdsFor(d Difficulty) Thresholds {
	if t, ok := scoreThresholds[d]; ok {
		return t
	}
	return Thresholds{Promote: 80, Demote: 50}
}

// History is the slice of a student's progress the policy needs: how many
// quizzes they have taken for a subject+grade, the average over the bounded
// recent-scores window, and the tier they last played at.
type History struct {
	QuizCount     int
	RecentAverage float64
	Current       Difficulty
}

// NextDifficulty picks the tier for the student's next quiz from their
// historical performance. Students with no history start at easy.
func NextDifficulty(h History) Difficulty {
	if h.QuizCount == 0 {
		return DifficultyEasy
	}
	current := h.Current
	if !current.Valid() {
		current = DifficultyEasy
	}

	t := ThresholdsFor(current)
	switch {
	case h.RecentAverage >= t.Promote:
		return current.Up()
	case h.RecentAverage < t.Demote:
		return current.Down()
	default:
		return current
	}
}

// RecommendNext applies the same threshold table to a single session's
// percentage. This is the post-quiz recommendation shown alongside results;
// NextDifficulty is the pre-quiz adaptive pick. They deliberately share the
// table but not the input, so a single hard-fought session can recommend a
// jump the historical average would not yet support.
func RecommendNext(percentage float64, current Difficulty) Difficulty {
	if !current.Valid() {
		current = DifficultyEasy
	}

	t := ThresholdsFor(current)
	switch {
	case percentage >= t.Promote:
		return current.Up()
	case percentage < t.Demote:
		return current.Down()
	default:
		return current
	}
}
