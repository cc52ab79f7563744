package advice

import "fmt"

func careerPathsPrompt(skills string) string {
	return fmt.Sprintf(`You are an expert career advisor.
Based on the following skills, recommend exactly 3 career paths.

Skills: %s

For each path provide a career title, a short description of the role, a
typical salary range, and the job outlook. Base your reasoning only on the
provided skills. Return only valid JSON matching the response schema.`, skills)
}

func skillGapPrompt(skills, desiredRole string) string {
	return fmt.Sprintf(`You are an expert career advisor performing a skill-gap analysis.

Current skills: %s
Desired role: %s

List the skills required for the desired role, which of the current skills
match them, which required skills are missing, and one concrete learning
suggestion per missing skill. Matching skills must be a subset of required
skills, and missing skills must be exactly the required skills that do not
match. Return only valid JSON matching the response schema.`, skills, desiredRole)
}

func resumeReviewPrompt(resumeText, targetRole string) string {
	return fmt.Sprintf(`You are an expert resume reviewer.
Review the following resume for the target role of %s.

Resume:
%s

Provide strengths, areas for improvement, and actionable suggestions, each as
a list of short sentences. Base all feedback only on the resume text. Return
only valid JSON matching the response schema.`, targetRole, resumeText)
}

func interviewQuestionsPrompt(jobTitle string) string {
	return fmt.Sprintf(`You are an experienced interviewer hiring for the role of %s.
Generate exactly 10 realistic interview questions for this role, each with a
short coaching tip on how to answer it well. Return only valid JSON matching
the response schema.`, jobTitle)
}

func marketTrendsPrompt(field string) string {
	return fmt.Sprintf(`Summarize the current job market trends for the field of %s:
in-demand skills, hiring outlook, and notable shifts. Answer in a few short
paragraphs of plain text, no markdown headings.`, field)
}
