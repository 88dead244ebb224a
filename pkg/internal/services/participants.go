package services

import (
	"errors"
	"strings"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
)

// ErrMissingNameQuestion is reported when a survey carries no question
// usable as the respondent's name, a giveaway cannot run without one.
var ErrMissingNameQuestion = errors.New("survey has no question usable as the participant name")

// Participant is one deduplicated respondent eligible for a draw,
// identified by the response that first carried its name.
type Participant struct {
	ResponseID uint   `json:"response_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

type contactQuestions struct {
	Name  *models.Question
	Email *models.Question
	Phone *models.Question
}

// classifyContactQuestions figures out which questions hold the
// respondent's name, e-mail and phone. An explicit role set on a
// question wins outright; otherwise a type plus text heuristic applies,
// preferring the canonical template wording over the first loose match.
func classifyContactQuestions(questions []models.Question) contactQuestions {
	var out contactQuestions
	out.Name = pickContactQuestion(questions, models.QuestionRoleName, models.QuestionTypeShortText, "nome", "Nome Completo")
	out.Email = pickContactQuestion(questions, models.QuestionRoleEmail, models.QuestionTypeEmail, "e-mail", "E-mail")
	out.Phone = pickContactQuestion(questions, models.QuestionRolePhone, models.QuestionTypePhone, "telefone", "Telefone")
	return out
}

func pickContactQuestion(questions []models.Question, role string, kind string, probe string, exact string) *models.Question {
	for idx, question := range questions {
		if question.Role != nil && *question.Role == role {
			return &questions[idx]
		}
	}

	var loose *models.Question
	for idx, question := range questions {
		if question.Type != kind || !strings.Contains(strings.ToLower(question.Text), probe) {
			continue
		}
		if strings.TrimSpace(question.Text) == exact {
			return &questions[idx]
		}
		if loose == nil {
			loose = &questions[idx]
		}
	}

	return loose
}

// ResolveParticipants builds the deduplicated participant pool of a
// survey. Duplicate names (case-insensitive) keep the first response
// seen and silently drop the rest.
func ResolveParticipants(questions []models.Question, responses []models.Response) ([]Participant, error) {
	contacts := classifyContactQuestions(questions)
	if contacts.Name == nil {
		return nil, ErrMissingNameQuestion
	}

	seen := make(map[string]bool)
	participants := make([]Participant, 0, len(responses))
	for _, response := range responses {
		name := answerText(response, contacts.Name)
		if len(name) == 0 {
			continue
		}

		normalized := normalizeText(name)
		if seen[normalized] {
			continue
		}
		seen[normalized] = true

		participants = append(participants, Participant{
			ResponseID: response.ID,
			Name:       name,
			Email:      answerText(response, contacts.Email),
			Phone:      answerText(response, contacts.Phone),
		})
	}

	return participants, nil
}

func answerText(response models.Response, question *models.Question) string {
	if question == nil {
		return ""
	}
	answer, ok := FindAnswer(response, question.ID)
	if !ok {
		return ""
	}
	return answer.Value.GetText()
}
