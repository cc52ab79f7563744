// Package advice holds the two interchangeable AdviceProvider
// implementations: a deterministic mock for development and tests, and a
// Gemini-backed provider for live deployments. Which one is active is an
// explicit configuration switch (ADVICE_PROVIDER), never source selection.
package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

// MockProvider returns deterministic advice without any network access.
// It is the default provider so the API is fully usable without an API key.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) CareerPaths(_ context.Context, skills string) ([]domain.CareerPath, error) {
	return []domain.CareerPath{
		{
			CareerTitle: "Frontend Developer",
			Description: fmt.Sprintf("Build user interfaces using frameworks like React. Based on skills: %s", skills),
			SalaryRange: "$60k - $120k",
			Outlook:     "Strong demand with increasing focus on web performance and accessibility.",
		},
		{
			CareerTitle: "Full-Stack Developer",
			Description: "Work across frontend and backend to deliver complete web applications.",
			SalaryRange: "$70k - $140k",
			Outlook:     "High demand, especially for cloud-native and serverless skills.",
		},
		{
			CareerTitle: "Product Designer",
			Description: "Design user experiences and collaborate with engineering teams.",
			SalaryRange: "$65k - $130k",
			Outlook:     "Growing as companies prioritize UX and product-led growth.",
		},
	}, nil
}

// SkillGap partitions a fixed required-skill set against the comma-separated
// input skills, case-insensitively.
func (p *MockProvider) SkillGap(_ context.Context, skills, desiredRole string) (*domain.SkillGapAnalysis, error) {
	current := make(map[string]struct{})
	for _, s := range strings.Split(skills, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			current[s] = struct{}{}
		}
	}

	required := []string{"Communication", "Problem Solving", "Domain Knowledge"}
	var matching, missing []string
	for _, r := range required {
		if _, ok := current[strings.ToLower(r)]; ok {
			matching = append(matching, r)
		} else {
			missing = append(missing, r)
		}
	}

	suggestions := make([]domain.LearningSuggestion, 0, len(missing))
	for _, m := range missing {
		suggestions = append(suggestions, domain.LearningSuggestion{
			Skill:      m,
			Suggestion: fmt.Sprintf("Take an online course or read books focused on %s.", m),
		})
	}

	return &domain.SkillGapAnalysis{
		RequiredSkills:      required,
		MatchingSkills:      matching,
		MissingSkills:       missing,
		LearningSuggestions: suggestions,
	}, nil
}

func (p *MockProvider) ResumeReview(_ context.Context, resumeText, targetRole string) (*domain.ResumeReview, error) {
	return &domain.ResumeReview{
		Strengths: []string{
			"Clear formatting",
			"Relevant experience highlighted",
		},
		AreasForImprovement: []string{
			"Add measurable impact (numbers)",
			"Tailor skills to the job description",
		},
		ActionableSuggestions: []string{
			"Start bullet points with strong verbs",
			"Quantify achievements where possible",
		},
	}, nil
}

func (p *MockProvider) InterviewQuestions(_ context.Context, jobTitle string) ([]domain.InterviewQuestion, error) {
	questions := make([]domain.InterviewQuestion, 0, 10)
	for i := 1; i <= 10; i++ {
		questions = append(questions, domain.InterviewQuestion{
			Question: fmt.Sprintf("%s interview question %d", jobTitle, i),
			ProTip:   "Structure your answer with Situation, Task, Action, Result (STAR).",
		})
	}
	return questions, nil
}

func (p *MockProvider) MarketTrends(_ context.Context, field string) (*domain.MarketTrends, error) {
	return &domain.MarketTrends{
		Summary: fmt.Sprintf("Mocked market trends for %s: demand for skills in this field is growing. Focus on continuous learning and networking.", field),
		Sources: []domain.TrendSource{},
	}, nil
}
