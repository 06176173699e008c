package translate

import (
	"context"
	"strings"
)

// Phrasebook translates a fixed set of interface phrases. Anything else
// comes back as a marked placeholder, so it never fails.
type Phrasebook struct{}

var phrases = map[string]string{
	"multiple choice":      "اختيار متعدد",
	"true/false/not given": "صحيح/خطأ/غير مذكور",
	"reading":              "القراءة",
	"writing":              "الكتابة",
	"listening":            "الاستماع",
	"speaking":             "المحادثة",
	"question":             "السؤال",
	"answer":               "الإجابة",
	"difficulty":           "المستوى",
	"easy":                 "سهل",
	"medium":               "متوسط",
	"hard":                 "صعب",
}

// Lookup returns the stored translation of text, ignoring case and
// surrounding whitespace.
func (Phrasebook) Lookup(text string) (string, bool) {
	v, ok := phrases[strings.ToLower(strings.TrimSpace(text))]
	return v, ok
}

// Translate implements Translator.
func (p Phrasebook) Translate(_ context.Context, text string) (string, error) {
	if v, ok := p.Lookup(text); ok {
		return v, nil
	}
	return Placeholder(text), nil
}

// Placeholder marks text that could not be translated.
func Placeholder(text string) string {
	return "[Arabic: " + text + "]"
}
