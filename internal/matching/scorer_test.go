package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amet-alumni/network-backend/internal/model"
)

func mentor(industry string, topics ...string) *model.MentorProfile {
	return &model.MentorProfile{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Industry:     industry,
		MentorTopics: topics,
		IsActive:     true,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		mentor *model.MentorProfile
		prefs  *model.MenteePreferences
		want   int
	}{
		{
			name:   "no overlap gets base score",
			mentor: mentor("Healthcare", "Surgery"),
			prefs: &model.MenteePreferences{
				IndustriesInterested: []string{"Technology"},
				Topics:               []string{"Leadership"},
			},
			want: BaseScore,
		},
		{
			name:   "industry and one topic",
			mentor: mentor("Technology", "Leadership"),
			prefs: &model.MenteePreferences{
				IndustriesInterested: []string{"Technology", "Finance"},
				Topics:               []string{"Leadership", "Networking"},
			},
			want: BaseScore + IndustryScore + TopicScore,
		},
		{
			name:   "every extra shared topic adds the topic weight",
			mentor: mentor("Technology", "Leadership", "Networking"),
			prefs: &model.MenteePreferences{
				IndustriesInterested: []string{"Technology"},
				Topics:               []string{"Leadership", "Networking"},
			},
			want: BaseScore + IndustryScore + 2*TopicScore,
		},
		{
			name:   "industry match is a substring of the joined list",
			mentor: mentor("Tech"),
			prefs: &model.MenteePreferences{
				IndustriesInterested: []string{"Technology"},
			},
			want: BaseScore + IndustryScore,
		},
		{
			name:   "industry match is case sensitive",
			mentor: mentor("technology"),
			prefs: &model.MenteePreferences{
				IndustriesInterested: []string{"Technology"},
			},
			want: BaseScore,
		},
		{
			name:   "topics match exactly, not by substring",
			mentor: mentor("", "Lead"),
			prefs: &model.MenteePreferences{
				Topics: []string{"Leadership"},
			},
			want: BaseScore,
		},
		{
			name:   "mentor without topics still scores industry",
			mentor: mentor("Finance"),
			prefs: &model.MenteePreferences{
				IndustriesInterested: []string{"Finance"},
				Topics:               []string{"Investing"},
			},
			want: BaseScore + IndustryScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.mentor, tt.prefs))
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	m := mentor("Technology", "Leadership", "Networking", "Career")
	prefs := &model.MenteePreferences{
		IndustriesInterested: []string{"Technology", "Finance"},
		Topics:               []string{"Career", "Leadership"},
	}

	first := Score(m, prefs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(m, prefs))
	}
}

func TestRank(t *testing.T) {
	prefs := &model.MenteePreferences{
		IndustriesInterested: []string{"Technology"},
		Topics:               []string{"Leadership"},
	}

	strong := mentor("Technology", "Leadership")
	industryOnly := mentor("Technology")
	weak := mentor("Healthcare")

	ranked := Rank([]*model.MentorProfile{weak, strong, industryOnly}, prefs, 0)
	require.Len(t, ranked, 3)

	assert.Equal(t, strong.ID, ranked[0].Mentor.ID)
	assert.Equal(t, BaseScore+IndustryScore+TopicScore, ranked[0].Score)
	assert.Equal(t, industryOnly.ID, ranked[1].Mentor.ID)
	assert.Equal(t, weak.ID, ranked[2].Mentor.ID)
	assert.Equal(t, BaseScore, ranked[2].Score)
}

func TestRankLimitsToTopMatches(t *testing.T) {
	prefs := &model.MenteePreferences{}

	pool := make([]*model.MentorProfile, 0, DefaultTopMatches+3)
	for i := 0; i < DefaultTopMatches+3; i++ {
		pool = append(pool, mentor("Technology"))
	}

	ranked := Rank(pool, prefs, 0)
	assert.Len(t, ranked, DefaultTopMatches)

	ranked = Rank(pool, prefs, 2)
	assert.Len(t, ranked, 2)
}

func TestRankTiesKeepFetchOrder(t *testing.T) {
	prefs := &model.MenteePreferences{}

	first := mentor("A")
	second := mentor("B")
	third := mentor("C")

	ranked := Rank([]*model.MentorProfile{first, second, third}, prefs, 0)
	require.Len(t, ranked, 3)

	assert.Equal(t, first.ID, ranked[0].Mentor.ID)
	assert.Equal(t, second.ID, ranked[1].Mentor.ID)
	assert.Equal(t, third.ID, ranked[2].Mentor.ID)
}

func TestRankEmptyPool(t *testing.T) {
	ranked := Rank(nil, &model.MenteePreferences{}, 0)
	assert.Empty(t, ranked)
}
