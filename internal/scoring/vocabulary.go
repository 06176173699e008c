package scoring

import "github.com/abhisek/bandwise/internal/skill"

// VocabularySet is a word list with practice exercises for one level.
type VocabularySet struct {
	Level     skill.Level `json:"level"`
	Academic  []string    `json:"academic"`
	General   []string    `json:"general"`
	Exercises []string    `json:"exercises"`
}

var vocabulary = map[skill.Level]struct{ academic, general []string }{
	skill.Beginner: {
		academic: []string{"analyze", "research", "hypothesis", "methodology", "conclusion"},
		general:  []string{"accommodation", "facility", "convenient", "particular", "specific"},
	},
	skill.Intermediate: {
		academic: []string{"empirical", "paradigm", "correlation", "significant", "phenomenon"},
		general:  []string{"substantial", "comprehensive", "inevitable", "preliminary", "subsequent"},
	},
	skill.Advanced: {
		academic: []string{"quintessential", "ubiquitous", "paradigmatic", "multifaceted", "intrinsic"},
		general:  []string{"meticulous", "articulate", "eloquent", "profound", "sophisticated"},
	},
}

var vocabularyExercises = []string{
	"Write sentences using each word",
	"Find synonyms and antonyms",
	"Use in IELTS writing tasks",
	"Practice pronunciation",
}

// Vocabulary returns the word lists for level. Unknown levels get the
// intermediate set.
func Vocabulary(level skill.Level) VocabularySet {
	words, ok := vocabulary[level]
	if !ok {
		level = skill.Intermediate
		words = vocabulary[level]
	}
	return VocabularySet{
		Level:     level,
		Academic:  append([]string(nil), words.academic...),
		General:   append([]string(nil), words.general...),
		Exercises: append([]string(nil), vocabularyExercises...),
	}
}
