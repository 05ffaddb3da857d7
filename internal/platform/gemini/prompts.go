package gemini

import "text/template"

// Prompt templates for the three generation operations. They are inlined
// rather than loaded from disk so the binary stays self-contained.
var (
	coursePromptTmpl = template.Must(template.New("course").Parse(`Create a comprehensive educational course from this document. Return valid JSON only, in this shape:
{
  "title": "Course Title",
  "description": "2-3 sentence overview",
  "difficulty": "Intermediate",
  "objectives": ["Understand X", "Analyze Y", "Apply Z"],
  "modules": [
    {
      "title": "Module 1: Topic",
      "content": "# Markdown\n\n## Key Points\n...",
      "estimatedTime": 900
    }
  ]
}
Requirements: 3-5 modules, 300-500 words each, markdown formatting, action verbs in objectives.
{{if .Title}}Suggested course title: {{.Title}}
{{end}}Document text:
{{.Text}}`))

	quizPromptTmpl = template.Must(template.New("quiz").Parse(`Create exactly {{.Count}} multiple-choice questions for the module "{{.Title}}". Return valid JSON only, in this shape:
{
  "questions": [
    {
      "type": "multiple_choice",
      "question": "...",
      "options": ["A", "B", "C", "D"],
      "correctAnswer": "A",
      "explanation": "..."
    }
  ]
}
Module content:
{{.Content}}`))

	flashcardPromptTmpl = template.Must(template.New("flashcards").Parse(`Generate exactly {{.Count}} flashcards from the following text.
Each flashcard must be a JSON object with the keys "question" and "answer".
Return a single JSON array, like:
[{"question": "...", "answer": "..."}, ...]

Content:
{{.Content}}`))
)

// coursePromptData feeds coursePromptTmpl.
type coursePromptData struct {
	Title string
	Text  string
}

// modulePromptData feeds the quiz and flashcard templates.
type modulePromptData struct {
	Title   string
	Content string
	Count   int
}
