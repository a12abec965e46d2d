package model

import "strings"

// MenteePreferences exists only for the duration of a matching request;
// it is never persisted.
type MenteePreferences struct {
	CareerGoals               string   `json:"career_goals"`
	SkillsToDevelop           string   `json:"skills_to_develop"`
	IndustriesInterested      []string `json:"industries_interested"`
	Topics                    []string `json:"topics"`
	CommunicationPreference   string   `json:"communication_preference"`
	ExperienceLevelPreference string   `json:"experience_level_preference"`
	DurationPreference        string   `json:"duration_preference"`
}

// SplitList parses a comma-joined free-text field into a list of trimmed,
// non-empty entries. The store keeps topic and industry lists as
// comma-joined text.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinList serializes a list back into the store's comma-joined form.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
