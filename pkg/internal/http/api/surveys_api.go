package api

import (
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/http/exts"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

type questionPayload struct {
	ID       uint     `json:"id"`
	Text     string   `json:"text" validate:"required,max=1024"`
	Type     string   `json:"type" validate:"required,oneof=short_text long_text email phone multiple_choice checkbox rating"`
	Role     *string  `json:"role" validate:"omitempty,oneof=name email phone"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
}

func buildQuestions(payload []questionPayload) []models.Question {
	return lo.Map(payload, func(item questionPayload, index int) models.Question {
		return models.Question{
			BaseModel: models.BaseModel{ID: item.ID},
			Text:      item.Text,
			Type:      item.Type,
			Role:      item.Role,
			Options:   datatypes.NewJSONSlice(item.Options),
			Required:  item.Required,
			Position:  index,
		}
	})
}

func listSurveys(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	companyId, _ := c.ParamsInt("companyId")
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	if _, err := services.EnsureMemberRole(user, uint(companyId), models.RoleMember); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	surveys, err := services.ListSurveys(uint(companyId), take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(surveys)
}

func getSurvey(c *fiber.Ctx) error {
	surveyId, _ := c.ParamsInt("surveyId")

	survey, err := services.GetSurvey(uint(surveyId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(survey)
}

func createSurvey(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	companyId, _ := c.ParamsInt("companyId")

	var data struct {
		Title       string            `json:"title" validate:"required,max=256"`
		Description string            `json:"description" validate:"max=4096"`
		IsOpen      bool              `json:"is_open"`
		Questions   []questionPayload `json:"questions" validate:"dive"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EnsureMemberRole(user, uint(companyId), models.RoleManager); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	survey := models.Survey{
		Title:       data.Title,
		Description: data.Description,
		IsOpen:      data.IsOpen,
		Questions:   buildQuestions(data.Questions),
		CompanyID:   uint(companyId),
		AccountID:   user.ID,
	}

	survey, err := services.NewSurvey(survey)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(survey)
}

func updateSurvey(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	surveyId, _ := c.ParamsInt("surveyId")

	var data struct {
		Title       string            `json:"title" validate:"required,max=256"`
		Description string            `json:"description" validate:"max=4096"`
		IsOpen      bool              `json:"is_open"`
		Questions   []questionPayload `json:"questions" validate:"dive"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	survey, err := services.GetSurvey(uint(surveyId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if _, err := services.EnsureMemberRole(user, survey.CompanyID, models.RoleManager); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	survey.Title = data.Title
	survey.Description = data.Description
	survey.IsOpen = data.IsOpen
	survey.Questions = nil

	survey, err = services.EditSurvey(survey, buildQuestions(data.Questions))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(survey)
}

func deleteSurvey(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	surveyId, _ := c.ParamsInt("surveyId")

	survey, err := services.GetSurvey(uint(surveyId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if _, err := services.EnsureMemberRole(user, survey.CompanyID, models.RoleAdmin); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	if err := services.DeleteSurvey(survey); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
