package handler

import "github.com/careerpilot/advisor-api/internal/core/domain"

// --- Request / Response types ---

type careerPathsRequest struct {
	Skills string `json:"skills" validate:"required"`
}

type careerPathsResponse struct {
	CareerPaths []domain.CareerPath `json:"careerPaths"`
}

type skillGapRequest struct {
	Skills      string `json:"skills"      validate:"required"`
	DesiredRole string `json:"desiredRole" validate:"required"`
}

type resumeReviewRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
	TargetRole string `json:"targetRole" validate:"required"`
}

type interviewQuestionsRequest struct {
	JobTitle string `json:"jobTitle" validate:"required"`
}

type interviewQuestionsResponse struct {
	Questions []domain.InterviewQuestion `json:"questions"`
}

type marketTrendsRequest struct {
	Field string `json:"field" validate:"required"`
}

// extractResponse carries the plain text produced by the ingestion pipeline.
type extractResponse struct {
	Text string `json:"text"`
}
