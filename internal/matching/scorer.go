package matching

import (
	"sort"
	"strings"

	"github.com/amet-alumni/network-backend/internal/model"
)

// Scoring weights for mentor compatibility. Every mentor gets the base
// score so a ranking is never empty-valued; industry and topic matches
// are additive with no cap and no normalization.
const (
	BaseScore     = 10
	IndustryScore = 30
	TopicScore    = 15

	// DefaultTopMatches is how many ranked mentors a matching request returns.
	DefaultTopMatches = 5
)

// ScoredMentor pairs a candidate with its compatibility score.
type ScoredMentor struct {
	Mentor *model.MentorProfile `json:"mentor"`
	Score  int                  `json:"score"`
}

// Score computes the compatibility score of one candidate against the
// mentee's preferences. Deterministic and order-independent.
//
// The industry check is deliberately loose: the preference field started
// life as free text, so a mentor's industry matches if it appears as a
// case-sensitive substring of the joined preference list. Topics match
// by exact intersection.
func Score(mentor *model.MentorProfile, prefs *model.MenteePreferences) int {
	score := BaseScore

	industries := model.JoinList(prefs.IndustriesInterested)
	if mentor.Industry != "" && strings.Contains(industries, mentor.Industry) {
		score += IndustryScore
	}

	if len(mentor.MentorTopics) > 0 {
		wanted := make(map[string]struct{}, len(prefs.Topics))
		for _, t := range prefs.Topics {
			wanted[t] = struct{}{}
		}
		for _, t := range mentor.MentorTopics {
			if _, ok := wanted[t]; ok {
				score += TopicScore
			}
		}
	}

	return score
}

// Rank scores every candidate and returns the top limit of them in
// descending score order. The sort is stable: ties keep the fetch order
// of the candidate list. An empty pool yields an empty result.
func Rank(mentors []*model.MentorProfile, prefs *model.MenteePreferences, limit int) []ScoredMentor {
	if limit <= 0 {
		limit = DefaultTopMatches
	}

	scored := make([]ScoredMentor, 0, len(mentors))
	for _, m := range mentors {
		scored = append(scored, ScoredMentor{Mentor: m, Score: Score(m, prefs)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
