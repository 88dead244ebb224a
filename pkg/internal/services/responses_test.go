package services

import (
	"strings"
	"testing"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"gorm.io/datatypes"
)

func TestBuildAnswersCoercion(t *testing.T) {
	questions := []models.Question{
		question(1, models.QuestionTypeShortText, "Nome Completo"),
		question(2, models.QuestionTypeRating, "Score?"),
		{
			BaseModel: models.BaseModel{ID: 3},
			Text:      "Channels?",
			Type:      models.QuestionTypeCheckbox,
			Options:   datatypes.NewJSONSlice([]string{"A", "B", "C"}),
		},
	}

	answers, err := BuildAnswers(questions, map[uint]any{
		1: "Ana Silva",
		2: float64(7),
		3: []any{"A", "C"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(answers) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(answers))
	}
	if answers[0].Value.GetText() != "Ana Silva" {
		t.Errorf("unexpected text answer: %+v", answers[0].Value)
	}
	if score, ok := answers[1].Value.GetScore(); !ok || score != 7 {
		t.Errorf("unexpected score answer: %+v", answers[1].Value)
	}
	if len(answers[2].Value.Picks) != 2 {
		t.Errorf("unexpected picks answer: %+v", answers[2].Value)
	}
}

func TestBuildAnswersRejectsWrongShapes(t *testing.T) {
	for name, tc := range map[string]struct {
		kind    string
		options []string
		raw     any
	}{
		"number for text":       {kind: models.QuestionTypeShortText, raw: float64(3)},
		"text for rating":       {kind: models.QuestionTypeRating, raw: "five"},
		"rating out of range":   {kind: models.QuestionTypeRating, raw: float64(11)},
		"scalar for checkbox":   {kind: models.QuestionTypeCheckbox, raw: "A"},
		"unknown choice option": {kind: models.QuestionTypeMultipleChoice, options: []string{"A", "B"}, raw: "Z"},
	} {
		t.Run(name, func(t *testing.T) {
			questions := []models.Question{{
				BaseModel: models.BaseModel{ID: 1},
				Text:      "Q",
				Type:      tc.kind,
				Options:   datatypes.NewJSONSlice(tc.options),
			}}

			if _, err := BuildAnswers(questions, map[uint]any{1: tc.raw}); err == nil {
				t.Errorf("expected a validation error")
			}
		})
	}
}

func TestBuildAnswersRequiredAndOptional(t *testing.T) {
	questions := []models.Question{
		{
			BaseModel: models.BaseModel{ID: 1},
			Text:      "Nome Completo",
			Type:      models.QuestionTypeShortText,
			Required:  true,
		},
		question(2, models.QuestionTypeLongText, "Comments"),
	}

	if _, err := BuildAnswers(questions, map[uint]any{2: "hello"}); err == nil {
		t.Errorf("missing required answer should be rejected")
	} else if !strings.Contains(err.Error(), "required") {
		t.Errorf("unexpected error: %v", err)
	}

	answers, err := BuildAnswers(questions, map[uint]any{1: "Ana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(answers) != 1 {
		t.Errorf("optional questions may be skipped, got %d answers", len(answers))
	}
}
