package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const resumeSystemPrompt = `You are an expert resume writer. Create a professional, ATS-friendly resume based on the user's bio and profile information. Format the response as a JSON object with the following structure:
{
  "fullName": "string",
  "location": "string",
  "contact": {
    "email": "string",
    "phone": "string",
    "linkedin": "string"
  },
  "summary": "string (3-4 sentences)",
  "skills": ["skill1", "skill2", ...],
  "experience": [
    {
      "title": "string",
      "company": "string",
      "period": "string",
      "description": ["bullet point 1", "bullet point 2", ...]
    }
  ],
  "education": [
    {
      "degree": "string",
      "institution": "string",
      "year": "string"
    }
  ],
  "certifications": ["cert1", "cert2", ...],
  "projects": [
    {
      "name": "string",
      "description": "string",
      "technologies": ["tech1", "tech2"]
    }
  ]
}

Make the resume professional, concise, and impactful. Extract relevant information from the bio and enhance it with industry best practices.`

const coverLetterSystemPrompt = `You are a professional cover letter writer. Generate a compelling cover letter based on the resume content and profile information provided.

The cover letter should:
- Be professional and tailored to the candidate's experience
- Highlight key achievements from the resume
- Show enthusiasm and motivation for the desired role
- Be concise (around 3-4 paragraphs)
- Include proper formatting with paragraphs

Return ONLY the body text of the cover letter (no date, no address, no salutation like "Dear Hiring Manager"). Start directly with the opening paragraph.`

// ResumePrompt builds the system/user message pair for resume generation.
func ResumePrompt(input GenerateResumeInput) (system, user string) {
	user = fmt.Sprintf(`Profile Information:
- Name: %s
- Desired Role: %s
- Career Motivation: %s

Professional Bio:
%s

Please create a comprehensive resume based on this information.`,
		orNotProvided(input.Profile.FullName),
		orNotProvided(input.Profile.DesiredRole),
		orNotProvided(input.Profile.CareerMotivation),
		input.Bio)
	return resumeSystemPrompt, user
}

// CoverLetterPrompt builds the system/user message pair for cover letter
// generation. The resume document is embedded as pretty-printed JSON.
func CoverLetterPrompt(input CoverLetterInput) (system, user string, err error) {
	content, err := json.MarshalIndent(input.Resume.Normalized(), "", "  ")
	if err != nil {
		return "", "", err
	}
	user = fmt.Sprintf(`Resume Content:
%s

Profile:
- Full Name: %s
- Desired Role: %s
- Career Goal: %s

Generate a professional cover letter based on this information.`,
		content,
		orNotProvided(input.Profile.FullName),
		orNotProvided(input.Profile.DesiredRole),
		orNotProvided(input.Profile.CareerGoal))
	return coverLetterSystemPrompt, user, nil
}

func orNotProvided(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Not provided"
	}
	return v
}
