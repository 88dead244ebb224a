package services

import (
	"fmt"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/database"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func ListSurveys(companyId uint, take int, offset int) ([]models.Survey, error) {
	var surveys []models.Survey
	err := database.C.Where("company_id = ?", companyId).
		Order("created_at DESC").
		Offset(offset).Limit(take).
		Find(&surveys).Error

	return surveys, err
}

func GetSurvey(id uint) (models.Survey, error) {
	var survey models.Survey
	if err := database.C.Where("id = ?", id).
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		First(&survey).Error; err != nil {
		return survey, err
	}
	return survey, nil
}

func NewSurvey(survey models.Survey) (models.Survey, error) {
	for idx := range survey.Questions {
		survey.Questions[idx].Position = idx
	}

	if err := database.C.Create(&survey).Error; err != nil {
		return survey, err
	}
	return survey, nil
}

// checkQuestionOwnership rejects payload question ids that are not part
// of the survey's current question set, so an edit cannot re-parent or
// overwrite rows belonging to another survey.
func checkQuestionOwnership(ownedIds []uint, questions []models.Question) error {
	for _, question := range questions {
		if question.ID > 0 && !lo.Contains(ownedIds, question.ID) {
			return fmt.Errorf("question #%d does not belong to this survey", question.ID)
		}
	}
	return nil
}

func EditSurvey(survey models.Survey, questions []models.Question) (models.Survey, error) {
	for idx := range questions {
		questions[idx].Position = idx
		questions[idx].SurveyID = survey.ID
	}

	err := database.C.Transaction(func(tx *gorm.DB) error {
		var ownedIds []uint
		if err := tx.Model(&models.Question{}).
			Where("survey_id = ?", survey.ID).
			Pluck("id", &ownedIds).Error; err != nil {
			return err
		}
		if err := checkQuestionOwnership(ownedIds, questions); err != nil {
			return err
		}

		if err := tx.Save(&survey).Error; err != nil {
			return err
		}

		// Questions not carried over are retired with their stored answers
		// left in place, an analysis pass simply no longer picks them up.
		keepIds := lo.FilterMap(questions, func(item models.Question, index int) (uint, bool) {
			return item.ID, item.ID > 0
		})
		if err := tx.Where("survey_id = ? AND id NOT IN ?", survey.ID, append(keepIds, 0)).
			Delete(&models.Question{}).Error; err != nil {
			return err
		}

		if len(questions) > 0 {
			if err := tx.Save(&questions).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return survey, err
	}

	InvalidateSurveyAnalysis(survey.ID)

	survey.Questions = questions
	return survey, nil
}

func DeleteSurvey(survey models.Survey) error {
	err := database.C.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.Question{},
			&models.Response{},
			&models.GiveawayWinner{},
		} {
			if err := tx.Where("survey_id = ?", survey.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&survey).Error
	})
	if err != nil {
		return fmt.Errorf("unable to delete survey: %v", err)
	}

	InvalidateSurveyAnalysis(survey.ID)

	return nil
}

func ListSurveyQuestions(surveyId uint) ([]models.Question, error) {
	var questions []models.Question
	err := database.C.Where("survey_id = ?", surveyId).
		Order("position ASC").
		Find(&questions).Error

	return questions, err
}
