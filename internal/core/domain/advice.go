package domain

import "errors"

// ErrUpstream signals a transport or authentication failure against the
// advice-generation backend.
var ErrUpstream = errors.New("advice backend unavailable")

// ErrInvalidResponseShape signals that the backend answered but the reply
// could not be parsed into the declared result shape.
var ErrInvalidResponseShape = errors.New("advice response has invalid shape")

// AdviceKind identifies one of the five structured outputs a caller can request.
type AdviceKind string

const (
	KindCareerPaths        AdviceKind = "career_paths"
	KindSkillGap           AdviceKind = "skill_gap"
	KindResumeReview       AdviceKind = "resume_review"
	KindInterviewQuestions AdviceKind = "interview_questions"
	KindMarketTrends       AdviceKind = "market_trends"
)

// CareerPath is a single recommended career direction.
type CareerPath struct {
	CareerTitle string `json:"careerTitle"`
	Description string `json:"description"`
	SalaryRange string `json:"salaryRange"`
	Outlook     string `json:"outlook"`
}

// LearningSuggestion pairs a missing skill with a concrete way to acquire it.
type LearningSuggestion struct {
	Skill      string `json:"skill"`
	Suggestion string `json:"suggestion"`
}

// SkillGapAnalysis partitions the skills required for a desired role against
// the caller's current skills.
//
// Invariant: MatchingSkills ⊆ RequiredSkills and
// MissingSkills = RequiredSkills \ MatchingSkills.
type SkillGapAnalysis struct {
	RequiredSkills      []string             `json:"requiredSkills"`
	MatchingSkills      []string             `json:"matchingSkills"`
	MissingSkills       []string             `json:"missingSkills"`
	LearningSuggestions []LearningSuggestion `json:"learningSuggestions"`
}

// ResumeReview is structured feedback on a resume for a target role.
type ResumeReview struct {
	Strengths             []string `json:"strengths"`
	AreasForImprovement   []string `json:"areasForImprovement"`
	ActionableSuggestions []string `json:"actionableSuggestions"`
}

// InterviewQuestion is a practice question plus a coaching tip.
type InterviewQuestion struct {
	Question string `json:"question"`
	ProTip   string `json:"proTip"`
}

// TrendSource is a grounding citation backing a market-trends summary.
type TrendSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// MarketTrends summarises the current job market for a field. Sources may be
// empty when no grounding citations are available.
type MarketTrends struct {
	Summary string        `json:"summary"`
	Sources []TrendSource `json:"sources"`
}
