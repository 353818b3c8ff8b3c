package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ScoringServiceSuite struct {
	suite.Suite
	service *Service
}

func TestScoringServiceSuite(t *testing.T) {
	suite.Run(t, new(ScoringServiceSuite))
}

func (s *ScoringServiceSuite) SetupTest() {
	s.service = New()
}

// Finishing first is rewarded with the highest score; this is the intended rule.
func (s *ScoringServiceSuite) TestFinishScoreRewardsEarlierFinish() {
	s.Equal(4, s.service.FinishScore(4, 1))
	s.Equal(3, s.service.FinishScore(4, 2))
	s.Equal(1, s.service.FinishScore(4, 4))
}

func (s *ScoringServiceSuite) TestFinishScoreTwoPlayers() {
	s.Equal(2, s.service.FinishScore(2, 1))
	s.Equal(1, s.service.FinishScore(2, 2))
}

func (s *ScoringServiceSuite) TestFinishScoreNeverNegative() {
	s.Equal(0, s.service.FinishScore(2, 5))
}

func (s *ScoringServiceSuite) TestEightBallBonus() {
	s.Equal(1, s.service.EightBallBonus())
}

func (s *ScoringServiceSuite) TestOrdinal() {
	cases := map[int]string{
		1:  "1st",
		2:  "2nd",
		3:  "3rd",
		4:  "4th",
		10: "10th",
		11: "11th",
		12: "12th",
		13: "13th",
		15: "15th",
		21: "21st",
		22: "22nd",
	}
	for position, expected := range cases {
		s.Equal(expected, Ordinal(position), "position %d", position)
	}
}
