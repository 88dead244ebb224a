package models

import "gorm.io/datatypes"

const (
	QuestionTypeShortText      = "short_text"
	QuestionTypeLongText       = "long_text"
	QuestionTypeEmail          = "email"
	QuestionTypePhone          = "phone"
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeCheckbox       = "checkbox"
	QuestionTypeRating         = "rating"
)

// Explicit per-question roles take precedence over the question text
// heuristic when resolving giveaway participants.
const (
	QuestionRoleName  = "name"
	QuestionRoleEmail = "email"
	QuestionRolePhone = "phone"
)

type Survey struct {
	BaseModel

	Title       string `json:"title"`
	Description string `json:"description"`
	IsOpen      bool   `json:"is_open"`

	Questions []Question `json:"questions" gorm:"foreignKey:SurveyID"`
	Responses []Response `json:"responses" gorm:"foreignKey:SurveyID"`

	CompanyID uint    `json:"company_id"`
	Company   Company `json:"company"`
	AccountID uint    `json:"account_id"`
}

type Question struct {
	BaseModel

	Text     string                      `json:"text"`
	Type     string                      `json:"type"`
	Role     *string                     `json:"role"`
	Options  datatypes.JSONSlice[string] `json:"options"`
	Position int                         `json:"position"`
	Required bool                        `json:"required"`

	SurveyID uint `json:"survey_id"`
}
