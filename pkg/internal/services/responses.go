package services

import (
	"fmt"
	"strings"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/database"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/samber/lo"
)

// BuildAnswers validates a raw submission payload against the survey's
// question set and coerces every value into the typed answer variant.
// Loose shapes are rejected here so everything stored afterwards can be
// trusted by the analysis passes.
func BuildAnswers(questions []models.Question, payload map[uint]any) ([]models.Answer, error) {
	var answers []models.Answer
	for _, question := range questions {
		raw, ok := payload[question.ID]
		if !ok || raw == nil {
			if question.Required {
				return nil, fmt.Errorf("question #%d is required", question.ID)
			}
			continue
		}

		value, err := coerceAnswerValue(question, raw)
		if err != nil {
			return nil, err
		}

		answers = append(answers, models.Answer{
			QuestionID: question.ID,
			Value:      value,
		})
	}

	return answers, nil
}

func coerceAnswerValue(question models.Question, raw any) (models.AnswerValue, error) {
	switch question.Type {
	case models.QuestionTypeShortText, models.QuestionTypeLongText,
		models.QuestionTypeEmail, models.QuestionTypePhone:
		text, ok := raw.(string)
		if !ok {
			return models.AnswerValue{}, fmt.Errorf("question #%d expects a text value", question.ID)
		}
		return models.TextValue(text), nil
	case models.QuestionTypeMultipleChoice:
		text, ok := raw.(string)
		if !ok {
			return models.AnswerValue{}, fmt.Errorf("question #%d expects a selected option", question.ID)
		}
		if len(question.Options) > 0 && !lo.Contains(question.Options, text) {
			return models.AnswerValue{}, fmt.Errorf("question #%d does not have an option like that", question.ID)
		}
		return models.TextValue(text), nil
	case models.QuestionTypeCheckbox:
		items, ok := raw.([]any)
		if !ok {
			return models.AnswerValue{}, fmt.Errorf("question #%d expects a list of selected options", question.ID)
		}
		picks := make([]string, 0, len(items))
		for _, item := range items {
			text, ok := item.(string)
			if !ok {
				return models.AnswerValue{}, fmt.Errorf("question #%d expects a list of selected options", question.ID)
			}
			if len(question.Options) > 0 && !lo.Contains(question.Options, text) {
				return models.AnswerValue{}, fmt.Errorf("question #%d does not have an option like that", question.ID)
			}
			picks = append(picks, text)
		}
		return models.PicksValue(picks), nil
	case models.QuestionTypeRating:
		score, ok := raw.(float64)
		if !ok {
			return models.AnswerValue{}, fmt.Errorf("question #%d expects a numeric score", question.ID)
		}
		if score < 1 || score > 10 {
			return models.AnswerValue{}, fmt.Errorf("question #%d expects a score between 1 and 10", question.ID)
		}
		return models.ScoreValue(score), nil
	default:
		return models.AnswerValue{}, fmt.Errorf("question #%d has an unsupported type %s", question.ID, question.Type)
	}
}

// NewResponse stores one respondent submission. Responses are immutable
// once created, there is no edit path.
func NewResponse(survey models.Survey, answers []models.Answer) (models.Response, error) {
	if !survey.IsOpen {
		return models.Response{}, fmt.Errorf("survey is not accepting responses")
	}

	response := models.Response{
		Answers:  answers,
		SurveyID: survey.ID,
	}

	if err := database.C.Create(&response).Error; err != nil {
		return response, err
	}

	InvalidateSurveyAnalysis(survey.ID)

	return response, nil
}

func ListResponses(surveyId uint, take int, offset int) ([]models.Response, error) {
	var responses []models.Response
	err := database.C.Where("survey_id = ?", surveyId).
		Order("created_at ASC").
		Offset(offset).Limit(take).
		Find(&responses).Error

	return responses, err
}

func ListAllResponses(surveyId uint) ([]models.Response, error) {
	var responses []models.Response
	err := database.C.Where("survey_id = ?", surveyId).
		Order("created_at ASC").
		Find(&responses).Error

	return responses, err
}

func CountResponses(surveyId uint) (int64, error) {
	var count int64
	err := database.C.Model(&models.Response{}).
		Where("survey_id = ?", surveyId).
		Count(&count).Error

	return count, err
}

// FindAnswer picks the answer to a question out of a response, the
// second return reports whether one was given at all.
func FindAnswer(response models.Response, questionId uint) (models.Answer, bool) {
	for _, answer := range response.Answers {
		if answer.QuestionID == questionId {
			return answer, true
		}
	}
	return models.Answer{}, false
}

func normalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
