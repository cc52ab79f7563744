package service

import (
	"context"
	"strings"

	"github.com/careerpilot/advisor-api/internal/core/domain"
	"github.com/careerpilot/advisor-api/internal/core/ports"
)

const (
	maxCareerPaths        = 3
	maxInterviewQuestions = 10
)

// AdviceService wraps an AdviceProvider and enforces the contract the
// transport layer relies on: result bounds and the skill-gap partition
// invariant hold no matter what the provider returns.
type AdviceService struct {
	provider ports.AdviceProvider
}

func NewAdviceService(provider ports.AdviceProvider) *AdviceService {
	return &AdviceService{provider: provider}
}

func (s *AdviceService) CareerPaths(ctx context.Context, skills string) ([]domain.CareerPath, error) {
	paths, err := s.provider.CareerPaths(ctx, skills)
	if err != nil {
		return nil, err
	}
	if len(paths) > maxCareerPaths {
		paths = paths[:maxCareerPaths]
	}
	return paths, nil
}

// SkillGap re-normalizes the provider's partition: matching is intersected
// with required, missing is recomputed as required minus matching, and
// learning suggestions for skills outside the missing set are dropped.
// Comparisons are case-insensitive; required-list casing wins.
func (s *AdviceService) SkillGap(ctx context.Context, skills, desiredRole string) (*domain.SkillGapAnalysis, error) {
	gap, err := s.provider.SkillGap(ctx, skills, desiredRole)
	if err != nil {
		return nil, err
	}

	matchingSet := make(map[string]struct{}, len(gap.MatchingSkills))
	for _, m := range gap.MatchingSkills {
		matchingSet[strings.ToLower(strings.TrimSpace(m))] = struct{}{}
	}

	matching := make([]string, 0, len(gap.RequiredSkills))
	missing := make([]string, 0, len(gap.RequiredSkills))
	missingSet := make(map[string]struct{})
	for _, r := range gap.RequiredSkills {
		key := strings.ToLower(strings.TrimSpace(r))
		if _, ok := matchingSet[key]; ok {
			matching = append(matching, r)
		} else {
			missing = append(missing, r)
			missingSet[key] = struct{}{}
		}
	}

	suggestions := make([]domain.LearningSuggestion, 0, len(gap.LearningSuggestions))
	for _, ls := range gap.LearningSuggestions {
		if _, ok := missingSet[strings.ToLower(strings.TrimSpace(ls.Skill))]; ok {
			suggestions = append(suggestions, ls)
		}
	}

	gap.MatchingSkills = matching
	gap.MissingSkills = missing
	gap.LearningSuggestions = suggestions
	return gap, nil
}

func (s *AdviceService) ResumeReview(ctx context.Context, resumeText, targetRole string) (*domain.ResumeReview, error) {
	return s.provider.ResumeReview(ctx, resumeText, targetRole)
}

func (s *AdviceService) InterviewQuestions(ctx context.Context, jobTitle string) ([]domain.InterviewQuestion, error) {
	questions, err := s.provider.InterviewQuestions(ctx, jobTitle)
	if err != nil {
		return nil, err
	}
	if len(questions) > maxInterviewQuestions {
		questions = questions[:maxInterviewQuestions]
	}
	return questions, nil
}

func (s *AdviceService) MarketTrends(ctx context.Context, field string) (*domain.MarketTrends, error) {
	trends, err := s.provider.MarketTrends(ctx, field)
	if err != nil {
		return nil, err
	}
	if trends.Sources == nil {
		trends.Sources = []domain.TrendSource{}
	}
	return trends, nil
}
