package ports

import (
	"context"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

// AdviceProvider generates structured career advice from natural-language
// inputs. Implementations fail with domain.ErrUpstream on transport or
// authentication errors and domain.ErrInvalidResponseShape when the backend
// text cannot be parsed into the declared result shape.
//
// Two interchangeable implementations exist: a deterministic mock and a
// Gemini-backed one. Which is active is an explicit configuration switch.
type AdviceProvider interface {
	CareerPaths(ctx context.Context, skills string) ([]domain.CareerPath, error)
	SkillGap(ctx context.Context, skills, desiredRole string) (*domain.SkillGapAnalysis, error)
	ResumeReview(ctx context.Context, resumeText, targetRole string) (*domain.ResumeReview, error)
	InterviewQuestions(ctx context.Context, jobTitle string) ([]domain.InterviewQuestion, error)
	MarketTrends(ctx context.Context, field string) (*domain.MarketTrends, error)
}

// AdviceService is the use-case layer over an AdviceProvider. It enforces
// the result bounds and the skill-gap partition invariant regardless of what
// the provider returns.
type AdviceService interface {
	AdviceProvider
}
