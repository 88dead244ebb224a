package api

import (
	"errors"
	"fmt"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/http/exts"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func listParticipants(c *fiber.Ctx) error {
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

	participants, err := services.ResolveParticipants(survey.Questions, responses)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(participants)
}

func listGiveawayWinners(c *fiber.Ctx) error {
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

	winners, err := services.ListGiveawayWinners(survey.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(winners)
}

func drawGiveaway(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	surveyId, _ := c.ParamsInt("surveyId")

	var data struct {
		Prizes []uint `json:"prizes" validate:"required,min=1"`
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

	winners, err := services.DrawGiveaway(survey, data.Prizes)
	switch {
	case errors.Is(err, services.ErrMissingNameQuestion),
		errors.Is(err, services.ErrNoEligibleParticipants):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrDrawInProgress):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case err != nil:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(winners)
}

func exportGiveawayWinners(c *fiber.Ctx) error {
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

	winners, err := services.ListGiveawayWinners(survey.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out, err := services.ExportWinnersCSV(winners)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=survey-%d-winners.csv", survey.ID))
	return c.Send(out)
}
