package util

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidLogin  = errors.New("invalid login")
	ErrNicknameTaken = errors.New("nickname already in use")
	ErrNotContainer  = errors.New("selected menu cannot hold submenus")

	// ErrMalformedSubmission covers a poll batch where any entry cannot be
	// recorded (unparseable ids or unknown question/option). The whole batch
	// is rolled back. Distinct from ErrEmptySubmission so the public notice
	// can tell "could not record answers" from "answer the questions".
	ErrMalformedSubmission = errors.New("could not record answers")
	ErrEmptySubmission     = errors.New("no answers submitted")
)
