package client

import (
	"context"
	"net/http"
)

// CareerPath is a single recommended career direction.
type CareerPath struct {
	CareerTitle string `json:"careerTitle"`
	Description string `json:"description"`
	SalaryRange string `json:"salaryRange"`
	Outlook     string `json:"outlook"`
}

// LearningSuggestion pairs a missing skill with a way to acquire it.
type LearningSuggestion struct {
	Skill      string `json:"skill"`
	Suggestion string `json:"suggestion"`
}

// SkillGapAnalysis partitions the skills required for a role against the
// caller's current skills.
type SkillGapAnalysis struct {
	RequiredSkills      []string             `json:"requiredSkills"`
	MatchingSkills      []string             `json:"matchingSkills"`
	MissingSkills       []string             `json:"missingSkills"`
	LearningSuggestions []LearningSuggestion `json:"learningSuggestions"`
}

// ResumeReview is structured feedback on a resume.
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

// TrendSource is a citation backing a market-trends summary.
type TrendSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// MarketTrends summarises the job market for a field.
type MarketTrends struct {
	Summary string        `json:"summary"`
	Sources []TrendSource `json:"sources"`
}

// CareerPaths suggests career paths for a comma separated skill list.
func (c *Client) CareerPaths(ctx context.Context, skills string) ([]CareerPath, error) {
	var resp struct {
		CareerPaths []CareerPath `json:"careerPaths"`
	}
	body := map[string]string{"skills": skills}
	if err := c.doJSON(ctx, http.MethodPost, "/api/advice/career-paths", true, body, &resp); err != nil {
		return nil, err
	}
	return resp.CareerPaths, nil
}

// SkillGap analyzes the gap between current skills and a desired role.
func (c *Client) SkillGap(ctx context.Context, skills, desiredRole string) (*SkillGapAnalysis, error) {
	var resp SkillGapAnalysis
	body := map[string]string{"skills": skills, "desiredRole": desiredRole}
	if err := c.doJSON(ctx, http.MethodPost, "/api/advice/skill-gap", true, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResumeReview reviews resume text against a target role.
func (c *Client) ResumeReview(ctx context.Context, resumeText, targetRole string) (*ResumeReview, error) {
	var resp ResumeReview
	body := map[string]string{"resumeText": resumeText, "targetRole": targetRole}
	if err := c.doJSON(ctx, http.MethodPost, "/api/advice/resume-review", true, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// InterviewQuestions generates practice questions for a job title.
func (c *Client) InterviewQuestions(ctx context.Context, jobTitle string) ([]InterviewQuestion, error) {
	var resp struct {
		Questions []InterviewQuestion `json:"questions"`
	}
	body := map[string]string{"jobTitle": jobTitle}
	if err := c.doJSON(ctx, http.MethodPost, "/api/advice/interview-questions", true, body, &resp); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// MarketTrends summarizes current market trends for a field.
func (c *Client) MarketTrends(ctx context.Context, field string) (*MarketTrends, error) {
	var resp MarketTrends
	body := map[string]string{"field": field}
	if err := c.doJSON(ctx, http.MethodPost, "/api/advice/market-trends", true, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
