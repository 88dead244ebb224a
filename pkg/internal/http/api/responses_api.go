package api

import (
	"fmt"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/http/exts"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func submitResponse(c *fiber.Ctx) error {
	surveyId, _ := c.ParamsInt("surveyId")

	var data struct {
		Answers map[uint]any `json:"answers" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	survey, err := services.GetSurvey(uint(surveyId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	answers, err := services.BuildAnswers(survey.Questions, data.Answers)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	response, err := services.NewResponse(survey, answers)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(response)
}

func listResponses(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	surveyId, _ := c.ParamsInt("surveyId")
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	survey, err := services.GetSurvey(uint(surveyId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if _, err := services.EnsureMemberRole(user, survey.CompanyID, models.RoleMember); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	count, err := services.CountResponses(survey.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	responses, err := services.ListResponses(survey.ID, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  responses,
	})
}

func exportResponses(c *fiber.Ctx) error {
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

	out, err := services.ExportResponsesCSV(survey.Questions, responses)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=survey-%d-responses.csv", survey.ID))
	return c.Send(out)
}
