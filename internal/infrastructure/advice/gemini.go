package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

// GeminiProvider generates advice with the Gemini API. Structured kinds use
// JSON-schema constrained responses; market trends uses the Google Search
// grounding tool, whose citations become the result sources.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider wraps an existing genai client. The client is shared
// with the OCR backend so the process holds a single API connection.
func NewGeminiProvider(client *genai.Client, model string) *GeminiProvider {
	return &GeminiProvider{client: client, model: model}
}

func stringArraySchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
}

// generateJSON runs a schema-constrained generation and unmarshals the reply
// into out. Markdown code fences are stripped first: models wrap JSON in
// ``` blocks even when told not to.
func (p *GeminiProvider) generateJSON(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.2),
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	text := cleanJSONBlock(resp.Text())
	if text == "" {
		return domain.ErrInvalidResponseShape
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidResponseShape, err)
	}
	return nil
}

func (p *GeminiProvider) CareerPaths(ctx context.Context, skills string) ([]domain.CareerPath, error) {
	schema := &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"careerTitle": {Type: genai.TypeString},
				"description": {Type: genai.TypeString},
				"salaryRange": {Type: genai.TypeString},
				"outlook":     {Type: genai.TypeString},
			},
			Required: []string{"careerTitle", "description", "salaryRange", "outlook"},
		},
	}

	var paths []domain.CareerPath
	if err := p.generateJSON(ctx, careerPathsPrompt(skills), schema, &paths); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, domain.ErrInvalidResponseShape
	}
	return paths, nil
}

func (p *GeminiProvider) SkillGap(ctx context.Context, skills, desiredRole string) (*domain.SkillGapAnalysis, error) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"requiredSkills": stringArraySchema(),
			"matchingSkills": stringArraySchema(),
			"missingSkills":  stringArraySchema(),
			"learningSuggestions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"skill":      {Type: genai.TypeString},
						"suggestion": {Type: genai.TypeString},
					},
					Required: []string{"skill", "suggestion"},
				},
			},
		},
		Required: []string{"requiredSkills", "matchingSkills", "missingSkills", "learningSuggestions"},
	}

	var gap domain.SkillGapAnalysis
	if err := p.generateJSON(ctx, skillGapPrompt(skills, desiredRole), schema, &gap); err != nil {
		return nil, err
	}
	if len(gap.RequiredSkills) == 0 {
		return nil, domain.ErrInvalidResponseShape
	}
	return &gap, nil
}

func (p *GeminiProvider) ResumeReview(ctx context.Context, resumeText, targetRole string) (*domain.ResumeReview, error) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"strengths":             stringArraySchema(),
			"areasForImprovement":   stringArraySchema(),
			"actionableSuggestions": stringArraySchema(),
		},
		Required: []string{"strengths", "areasForImprovement", "actionableSuggestions"},
	}

	var review domain.ResumeReview
	if err := p.generateJSON(ctx, resumeReviewPrompt(resumeText, targetRole), schema, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (p *GeminiProvider) InterviewQuestions(ctx context.Context, jobTitle string) ([]domain.InterviewQuestion, error) {
	schema := &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {Type: genai.TypeString},
				"proTip":   {Type: genai.TypeString},
			},
			Required: []string{"question", "proTip"},
		},
	}

	var questions []domain.InterviewQuestion
	if err := p.generateJSON(ctx, interviewQuestionsPrompt(jobTitle), schema, &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.ErrInvalidResponseShape
	}
	return questions, nil
}

// MarketTrends cannot combine a JSON response schema with the search tool,
// so the summary comes back as plain text and the sources are read from the
// grounding metadata. No citations is a valid outcome.
func (p *GeminiProvider) MarketTrends(ctx context.Context, field string) (*domain.MarketTrends, error) {
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(marketTrendsPrompt(field)), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	summary := strings.TrimSpace(resp.Text())
	if summary == "" {
		return nil, domain.ErrInvalidResponseShape
	}

	sources := []domain.TrendSource{}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			sources = append(sources, domain.TrendSource{URI: chunk.Web.URI, Title: chunk.Web.Title})
		}
	}

	return &domain.MarketTrends{Summary: summary, Sources: sources}, nil
}

// cleanJSONBlock removes markdown code fences from a model reply.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
