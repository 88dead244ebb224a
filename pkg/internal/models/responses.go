package models

import (
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

type Response struct {
	BaseModel

	Answers datatypes.JSONSlice[Answer] `json:"answers"`

	SurveyID uint   `json:"survey_id"`
	Survey   Survey `json:"survey"`
}

type Answer struct {
	QuestionID uint        `json:"question_id"`
	Value      AnswerValue `json:"value"`
}

// AnswerValue is a variant over the three value shapes an answer can
// carry. Exactly one field is set, the question's declared type decides
// which one; the ingestion layer enforces that.
type AnswerValue struct {
	Text  *string  `json:"text,omitempty"`
	Score *float64 `json:"score,omitempty"`
	Picks []string `json:"picks,omitempty"`
}

func TextValue(text string) AnswerValue {
	return AnswerValue{Text: &text}
}

func ScoreValue(score float64) AnswerValue {
	return AnswerValue{Score: &score}
}

func PicksValue(picks []string) AnswerValue {
	return AnswerValue{Picks: picks}
}

func (v AnswerValue) GetText() string {
	if v.Text == nil {
		return ""
	}
	return strings.TrimSpace(*v.Text)
}

func (v AnswerValue) GetScore() (float64, bool) {
	if v.Score == nil {
		return 0, false
	}
	return *v.Score, true
}

// Display renders the value the way exports and winner records show it,
// multi-valued answers are joined with a semicolon.
func (v AnswerValue) Display() string {
	switch {
	case v.Text != nil:
		return strings.TrimSpace(*v.Text)
	case v.Score != nil:
		return strconv.FormatFloat(*v.Score, 'f', -1, 64)
	case v.Picks != nil:
		return strings.Join(v.Picks, "; ")
	default:
		return ""
	}
}
