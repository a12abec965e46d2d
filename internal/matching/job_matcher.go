package matching

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/amet-alumni/network-backend/internal/model"
)

// Job alert weights. Same additive style as the mentor scorer; a posting
// with a total of MatchThreshold or more triggers a notification.
const (
	TitleScore       = 30
	JobIndustryScore = 20
	LocationScore    = 20
	JobTypeScore     = 15
	SalaryScore      = 15
	KeywordScore     = 5

	MatchThreshold = 30
)

// JobMatch is the result of scoring one posting against one alert.
type JobMatch struct {
	Score     int      `json:"score"`
	MatchedOn []string `json:"matched_on"`
}

// IsMatch reports whether the score clears the notification threshold.
func (m JobMatch) IsMatch() bool {
	return m.Score >= MatchThreshold
}

var salaryDigits = regexp.MustCompile(`\d+`)

// MatchJob scores a job posting against a saved alert. Title, industry
// and location are case-insensitive substring checks; job type is a
// case-insensitive exact match; salary compares the first number found
// in the posting's range against the alert's minimum; each keyword found
// in the description or requirements text adds KeywordScore.
func MatchJob(job *model.Job, alert *model.JobAlert) JobMatch {
	var match JobMatch

	if containsAnyFold(job.Title, alert.JobTitles) {
		match.Score += TitleScore
		match.MatchedOn = append(match.MatchedOn, "job title")
	}

	if job.Industry != "" && containsAnyFold(job.Industry, alert.Industries) {
		match.Score += JobIndustryScore
		match.MatchedOn = append(match.MatchedOn, "industry")
	}

	if job.Location != "" && containsAnyFold(job.Location, alert.Locations) {
		match.Score += LocationScore
		match.MatchedOn = append(match.MatchedOn, "location")
	}

	if job.JobType != "" && equalsAnyFold(job.JobType, alert.JobTypes) {
		match.Score += JobTypeScore
		match.MatchedOn = append(match.MatchedOn, "job type")
	}

	if alert.MinSalary > 0 && job.SalaryRange != "" {
		if raw := salaryDigits.FindString(job.SalaryRange); raw != "" {
			if salary, err := strconv.Atoi(raw); err == nil && salary >= alert.MinSalary {
				match.Score += SalaryScore
				match.MatchedOn = append(match.MatchedOn, "salary")
			}
		}
	}

	if len(alert.Keywords) > 0 {
		text := strings.ToLower(job.Description + " " + job.Requirements)
		hits := 0
		for _, kw := range alert.Keywords {
			if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
				hits++
			}
		}
		if hits > 0 {
			match.Score += hits * KeywordScore
			match.MatchedOn = append(match.MatchedOn, "keywords")
		}
	}

	return match
}

// containsAnyFold reports whether any needle appears in haystack,
// case-insensitively.
func containsAnyFold(haystack string, needles []string) bool {
	lowered := strings.ToLower(haystack)
	for _, n := range needles {
		if n != "" && strings.Contains(lowered, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

func equalsAnyFold(value string, candidates []string) bool {
	for _, c := range candidates {
		if strings.EqualFold(value, c) {
			return true
		}
	}
	return false
}
