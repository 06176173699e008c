package question

import "github.com/abhisek/bandwise/internal/skill"

// Origin records where a question came from.
type Origin string

const (
	OriginArchive   Origin = "archive"
	OriginGenerated Origin = "generated"
	OriginSentinel  Origin = "sentinel"
)

// Question is a single practice item. Values are never mutated after
// construction; helpers that change a field return a copy.
type Question struct {
	// Skill is the exam section the question belongs to.
	Skill skill.Skill `json:"skill"`

	// Type is the question format within the section, e.g. "Multiple Choice"
	// or "Task 2".
	Type string `json:"type"`

	Difficulty skill.Difficulty `json:"difficulty"`

	// Prompt is the text shown to the learner.
	Prompt string `json:"prompt"`

	// Choices holds labelled options such as "A) 6:00 PM". Empty for
	// open-ended questions.
	Choices []string `json:"choices,omitempty"`

	// CorrectAnswer is empty when the question cannot be graded by exact
	// match (writing and speaking prompts).
	CorrectAnswer string `json:"correct_answer,omitempty"`

	Explanation string `json:"explanation,omitempty"`

	// Passage is optional reading context.
	Passage string `json:"passage,omitempty"`

	// TranslatedPrompt is the prompt in the secondary display language.
	TranslatedPrompt string `json:"translated_prompt,omitempty"`

	Origin Origin `json:"origin"`
}

// HasAnswer reports whether the question can be graded.
func (q Question) HasAnswer() bool {
	return q.CorrectAnswer != ""
}

// IsSentinel reports whether q is the "no question available" placeholder.
func (q Question) IsSentinel() bool {
	return q.Origin == OriginSentinel
}

// WithTranslation returns a copy of q carrying the translated prompt.
func (q Question) WithTranslation(text string) Question {
	q.TranslatedPrompt = text
	return q
}

const (
	sentinelPrompt      = "No questions available for this section yet."
	sentinelTranslation = "لا توجد أسئلة متاحة لهذا القسم حتى الآن."
	sentinelType        = "Sample"
)

// Sentinel returns the placeholder question served when a skill has no
// archived questions at all.
func Sentinel(sk skill.Skill) Question {
	return Question{
		Skill:            sk,
		Type:             sentinelType,
		Difficulty:       skill.Medium,
		Prompt:           sentinelPrompt,
		TranslatedPrompt: sentinelTranslation,
		Origin:           OriginSentinel,
	}
}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	Skill      skill.Skill
	Type       string
	Difficulty skill.Difficulty

	// PriorQuestions contains prompts already asked in this session for the
	// skill. Used for deduplication in the prompt.
	PriorQuestions []string
}
