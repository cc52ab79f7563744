package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/careerpilot/advisor-api/internal/api/metrics"
	"github.com/careerpilot/advisor-api/internal/core/domain"
	"github.com/careerpilot/advisor-api/internal/core/ports"
)

// AdviceHandler exposes the five advice operations. All routes require a
// valid bearer token.
type AdviceHandler struct {
	adviceService ports.AdviceService
	provider      string
}

// NewAdviceHandler builds an AdviceHandler. provider names the active
// backend ("mock" or "gemini") and only feeds the metrics label.
func NewAdviceHandler(adviceService ports.AdviceService, provider string) *AdviceHandler {
	return &AdviceHandler{adviceService: adviceService, provider: provider}
}

func (h *AdviceHandler) observe(kind domain.AdviceKind, err error) {
	if err == nil {
		metrics.AdviceRequestsTotal.WithLabelValues(string(kind), h.provider).Inc()
		return
	}
	reason := "upstream"
	if errors.Is(err, domain.ErrInvalidResponseShape) {
		reason = "invalid_shape"
	}
	metrics.AdviceErrorsTotal.WithLabelValues(string(kind), reason).Inc()
}

// CareerPaths suggests career paths for a comma separated skill list.
//
// @Summary      Suggest career paths
// @Tags         advice
// @Accept       json
// @Produce      json
// @Param        body  body      careerPathsRequest  true  "Skill list"
// @Success      200   {object}  careerPathsResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Security     BearerAuth
// @Router       /advice/career-paths [post]
func (h *AdviceHandler) CareerPaths(c echo.Context) error {
	var req careerPathsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.AdviceRequestDuration.WithLabelValues(string(domain.KindCareerPaths)))
	paths, err := h.adviceService.CareerPaths(c.Request().Context(), req.Skills)
	timer.ObserveDuration()
	h.observe(domain.KindCareerPaths, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, careerPathsResponse{CareerPaths: paths})
}

// SkillGap analyzes the gap between current skills and a desired role.
//
// @Summary      Analyze a skill gap
// @Tags         advice
// @Accept       json
// @Produce      json
// @Param        body  body      skillGapRequest  true  "Skills and desired role"
// @Success      200   {object}  domain.SkillGapAnalysis
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Security     BearerAuth
// @Router       /advice/skill-gap [post]
func (h *AdviceHandler) SkillGap(c echo.Context) error {
	var req skillGapRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.AdviceRequestDuration.WithLabelValues(string(domain.KindSkillGap)))
	analysis, err := h.adviceService.SkillGap(c.Request().Context(), req.Skills, req.DesiredRole)
	timer.ObserveDuration()
	h.observe(domain.KindSkillGap, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analysis)
}

// ResumeReview reviews resume text against a target role.
//
// @Summary      Review a resume
// @Tags         advice
// @Accept       json
// @Produce      json
// @Param        body  body      resumeReviewRequest  true  "Resume text and target role"
// @Success      200   {object}  domain.ResumeReview
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Security     BearerAuth
// @Router       /advice/resume-review [post]
func (h *AdviceHandler) ResumeReview(c echo.Context) error {
	var req resumeReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.AdviceRequestDuration.WithLabelValues(string(domain.KindResumeReview)))
	review, err := h.adviceService.ResumeReview(c.Request().Context(), req.ResumeText, req.TargetRole)
	timer.ObserveDuration()
	h.observe(domain.KindResumeReview, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// InterviewQuestions generates practice questions for a job title.
//
// @Summary      Generate interview questions
// @Tags         advice
// @Accept       json
// @Produce      json
// @Param        body  body      interviewQuestionsRequest  true  "Job title"
// @Success      200   {object}  interviewQuestionsResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Security     BearerAuth
// @Router       /advice/interview-questions [post]
func (h *AdviceHandler) InterviewQuestions(c echo.Context) error {
	var req interviewQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.AdviceRequestDuration.WithLabelValues(string(domain.KindInterviewQuestions)))
	questions, err := h.adviceService.InterviewQuestions(c.Request().Context(), req.JobTitle)
	timer.ObserveDuration()
	h.observe(domain.KindInterviewQuestions, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, interviewQuestionsResponse{Questions: questions})
}

// MarketTrends summarizes current market trends for a field.
//
// @Summary      Summarize market trends
// @Tags         advice
// @Accept       json
// @Produce      json
// @Param        body  body      marketTrendsRequest  true  "Field of interest"
// @Success      200   {object}  domain.MarketTrends
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Security     BearerAuth
// @Router       /advice/market-trends [post]
func (h *AdviceHandler) MarketTrends(c echo.Context) error {
	var req marketTrendsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.AdviceRequestDuration.WithLabelValues(string(domain.KindMarketTrends)))
	trends, err := h.adviceService.MarketTrends(c.Request().Context(), req.Field)
	timer.ObserveDuration()
	h.observe(domain.KindMarketTrends, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trends)
}
