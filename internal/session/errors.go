package session

import "errors"

var (
	// ErrNoPendingQuestion is returned when an answer is submitted without a
	// question to answer.
	ErrNoPendingQuestion = errors.New("no pending question; fetch a question first")

	// ErrNoPracticeSkill is returned by Skip before any question was served.
	ErrNoPracticeSkill = errors.New("no practice skill selected; start practice first")

	// ErrEmptyUserID is returned for a blank user identifier.
	ErrEmptyUserID = errors.New("user id is empty")

	// ErrUnknownLanguage is returned for a display language other than
	// english or arabic.
	ErrUnknownLanguage = errors.New("unknown display language")
)
