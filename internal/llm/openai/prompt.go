package openai

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "You are a professional resume reviewer. Provide clear, actionable suggestions to improve resumes."

const userPromptHeader = `Analyze this resume and provide detailed improvement suggestions. Format your response in markdown with clear sections and bullet points.
Focus on:
- Content and clarity
- Professional impact
- Skills presentation
- Layout and formatting
- Action verbs and quantification
- Overall effectiveness

Resume text:
`

// BuildPrompt creates the chat messages for a resume review request.
func BuildPrompt(resumeText string) []Message {
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPromptHeader + resumeText + "\n"},
	}
}
