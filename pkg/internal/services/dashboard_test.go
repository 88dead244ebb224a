package services

import (
	"testing"
	"time"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
)

func TestBuildSurveyDigest(t *testing.T) {
	survey := models.Survey{BaseModel: models.BaseModel{ID: 5}}
	questions := []models.Question{
		question(1, models.QuestionTypeShortText, "Nome Completo"),
		question(2, models.QuestionTypeRating, "Score?"),
	}

	early := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	late := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	responses := []models.Response{
		{
			BaseModel: models.BaseModel{ID: 10, CreatedAt: early},
			Answers: []models.Answer{
				{QuestionID: 1, Value: models.TextValue("Ana")},
				{QuestionID: 2, Value: models.ScoreValue(8)},
			},
		},
		{
			BaseModel: models.BaseModel{ID: 11, CreatedAt: late},
			Answers: []models.Answer{
				{QuestionID: 1, Value: models.TextValue("Bruno")},
			},
		},
	}

	digest := BuildSurveyDigest(survey, questions, responses)

	if digest.TotalResponses != 2 {
		t.Errorf("expected 2 responses, got %d", digest.TotalResponses)
	}
	if digest.LastResponseAt == nil || !digest.LastResponseAt.Equal(late) {
		t.Errorf("unexpected last response time: %v", digest.LastResponseAt)
	}
	if digest.Questions[0].Answered != 2 || digest.Questions[1].Answered != 1 {
		t.Errorf("unexpected per-question counts: %+v", digest.Questions)
	}
}

func TestBuildSurveyDigestEmpty(t *testing.T) {
	digest := BuildSurveyDigest(models.Survey{}, nil, nil)

	if digest.TotalResponses != 0 || digest.LastResponseAt != nil {
		t.Errorf("unexpected digest for empty survey: %+v", digest)
	}
}
