package api

import (
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/http/exts"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func getSurveyAnalysis(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	surveyId, _ := c.ParamsInt("surveyId")

	survey, err := services.GetSurvey(uint(surveyId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if _, err := services.EnsureMemberRole(user, survey.CompanyID, models.RoleMember); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	analyses, err := services.GetSurveyAnalysisWithCache(survey)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(analyses)
}

func getSurveyDigest(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	surveyId, _ := c.ParamsInt("surveyId")

	survey, err := services.GetSurvey(uint(surveyId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if _, err := services.EnsureMemberRole(user, survey.CompanyID, models.RoleMember); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	responses, err := services.ListAllResponses(survey.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(services.BuildSurveyDigest(survey, survey.Questions, responses))
}
