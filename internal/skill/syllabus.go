package skill

// Section describes one skill's part of the exam.
type Section struct {
	Skill         Skill    `json:"skill"`
	Parts         []string `json:"parts"`
	QuestionTypes []string `json:"question_types,omitempty"`
	// Task1Types and Task2Types are only set for writing.
	Task1Types []string `json:"task1_types,omitempty"`
	Task2Types []string `json:"task2_types,omitempty"`
	// Topics is only set for speaking.
	Topics []string `json:"topics,omitempty"`
}

var syllabus = map[Skill]Section{
	Listening: {
		Skill: Listening,
		Parts: []string{
			"Section 1: Social Context",
			"Section 2: General Context",
			"Section 3: Academic Context",
			"Section 4: Academic Lecture",
		},
		QuestionTypes: []string{
			"Multiple Choice", "Form Completion", "Map Labeling",
			"Matching", "Short Answer", "Note Completion",
		},
	},
	Reading: {
		Skill: Reading,
		Parts: []string{"Academic Reading", "General Training Reading"},
		QuestionTypes: []string{
			"Multiple Choice", "True/False/Not Given", "Matching Headings",
			"Gap Fill", "Summary Completion", "Sentence Completion",
			"Diagram Labeling",
		},
	},
	Writing: {
		Skill:         Writing,
		Parts:         []string{"Task 1", "Task 2"},
		QuestionTypes: []string{"Task 1", "Task 2"},
		Task1Types: []string{
			"Line Graph", "Bar Chart", "Pie Chart", "Table",
			"Process Diagram", "Map Changes",
		},
		Task2Types: []string{
			"Opinion Essays", "Discussion Essays", "Problem-Solution",
			"Advantages-Disadvantages", "Two-Part Questions",
		},
	},
	Speaking: {
		Skill:         Speaking,
		Parts:         []string{"Part 1: Introduction", "Part 2: Long Turn", "Part 3: Discussion"},
		QuestionTypes: []string{"Part 1", "Part 2", "Part 3"},
		Topics: []string{
			"Family", "Work", "Education", "Travel", "Technology",
			"Environment", "Health", "Culture", "Sports", "Food",
		},
	},
}

// Syllabus returns the exam structure for every skill in display order.
func Syllabus() []Section {
	out := make([]Section, 0, len(syllabus))
	for _, s := range AllSkills() {
		out = append(out, syllabus[s])
	}
	return out
}

// SectionFor returns the syllabus entry for s.
func SectionFor(s Skill) (Section, bool) {
	sec, ok := syllabus[s]
	return sec, ok
}

// QuestionTypes returns the selectable question types for s, or nil for an
// unknown skill.
func QuestionTypes(s Skill) []string {
	return syllabus[s].QuestionTypes
}
