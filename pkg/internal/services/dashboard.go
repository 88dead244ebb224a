package services

import (
	"time"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/samber/lo"
)

type QuestionDigest struct {
	QuestionID uint   `json:"question_id"`
	Text       string `json:"text"`
	Answered   int    `json:"answered"`
}

type SurveyDigest struct {
	SurveyID       uint             `json:"survey_id"`
	TotalResponses int              `json:"total_responses"`
	LastResponseAt *time.Time       `json:"last_response_at"`
	Questions      []QuestionDigest `json:"questions"`
}

// BuildSurveyDigest produces the headline numbers the dashboard shows
// for one survey.
func BuildSurveyDigest(survey models.Survey, questions []models.Question, responses []models.Response) SurveyDigest {
	digest := SurveyDigest{
		SurveyID:       survey.ID,
		TotalResponses: len(responses),
		Questions: lo.Map(questions, func(item models.Question, index int) QuestionDigest {
			return QuestionDigest{QuestionID: item.ID, Text: item.Text}
		}),
	}

	indexes := lo.SliceToMap(lo.Range(len(questions)), func(idx int) (uint, int) {
		return questions[idx].ID, idx
	})

	for _, response := range responses {
		if digest.LastResponseAt == nil || response.CreatedAt.After(*digest.LastResponseAt) {
			at := response.CreatedAt
			digest.LastResponseAt = &at
		}
		for _, answer := range response.Answers {
			if idx, ok := indexes[answer.QuestionID]; ok {
				digest.Questions[idx].Answered++
			}
		}
	}

	return digest
}
