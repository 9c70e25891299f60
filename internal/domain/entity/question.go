// Package entity contains the core business objects of the project.
package entity

import "time"

// Question is a yes/no style two-option poll a store pins to a map location.
// Answers depend on it and must be removed before the question itself.
type Question struct {
	ID           int64
	StoreID      int64 // The owning store profile's id.
	Latitude     float64
	Longitude    float64
	QuestionText string
	Option1Text  string
	Option2Text  string
	CreatedAt    time.Time
}

// Answer option numbers. An answer always selects exactly one of the two.
const (
	AnswerOption1 = 1
	AnswerOption2 = 2
)

// Answer records one account's choice on a question. The
// (AccountID, QuestionID) pair is the natural key; answering again updates
// the existing row in place rather than inserting a duplicate.
type Answer struct {
	AccountID      int64
	QuestionID     int64
	SelectedOption int // AnswerOption1 or AnswerOption2.
	AnsweredAt     time.Time
}

// ValidAnswerOption reports whether n is one of the two allowed options.
func ValidAnswerOption(n int) bool {
	return n == AnswerOption1 || n == AnswerOption2
}
