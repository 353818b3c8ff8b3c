package scoring

import "strconv"

// Service computes finish-position scores for Kelly Pool
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// FinishScore returns the score for finishing in the given 1-indexed position.
// Earlier finishes score higher: first of N players scores N, last scores 1.
func (s *Service) FinishScore(playerCount, position int) int {
	score := playerCount - position + 1
	if score < 0 {
		return 0
	}
	return score
}

// EightBallBonus is the score added to a player who wins by pocketing their last ball, the 8-ball
func (s *Service) EightBallBonus() int {
	return 1
}

// Ordinal returns the place label for a 1-indexed position (1st, 2nd, 3rd, 4th, ...)
func Ordinal(position int) string {
	suffix := "th"
	switch position % 100 {
	case 11, 12, 13:
	default:
		switch position % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(position) + suffix
}
