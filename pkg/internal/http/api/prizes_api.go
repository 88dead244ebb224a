package api

import (
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/http/exts"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func listPrizes(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	companyId, _ := c.ParamsInt("companyId")

	if _, err := services.EnsureMemberRole(user, uint(companyId), models.RoleMember); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	prizes, err := services.ListPrizes(uint(companyId))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(prizes)
}

func createPrize(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	companyId, _ := c.ParamsInt("companyId")

	var data struct {
		Name        string `json:"name" validate:"required,max=256"`
		Description string `json:"description" validate:"max=1024"`
		Rank        *int   `json:"rank" validate:"omitempty,min=1"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EnsureMemberRole(user, uint(companyId), models.RoleManager); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	prize, err := services.NewPrize(models.Prize{
		Name:        data.Name,
		Description: data.Description,
		Rank:        data.Rank,
		CompanyID:   uint(companyId),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(prize)
}

func updatePrize(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	companyId, _ := c.ParamsInt("companyId")
	prizeId, _ := c.ParamsInt("prizeId")

	var data struct {
		Name        string `json:"name" validate:"required,max=256"`
		Description string `json:"description" validate:"max=1024"`
		Rank        *int   `json:"rank" validate:"omitempty,min=1"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EnsureMemberRole(user, uint(companyId), models.RoleManager); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	prize, err := services.GetPrize(uint(prizeId))
	if err != nil || prize.CompanyID != uint(companyId) {
		return fiber.NewError(fiber.StatusNotFound, "prize was not found")
	}

	prize.Name = data.Name
	prize.Description = data.Description
	prize.Rank = data.Rank

	if prize, err = services.EditPrize(prize); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(prize)
}

func deletePrize(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	companyId, _ := c.ParamsInt("companyId")
	prizeId, _ := c.ParamsInt("prizeId")

	if _, err := services.EnsureMemberRole(user, uint(companyId), models.RoleManager); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	prize, err := services.GetPrize(uint(prizeId))
	if err != nil || prize.CompanyID != uint(companyId) {
		return fiber.NewError(fiber.StatusNotFound, "prize was not found")
	}

	if err := services.DeletePrize(prize); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
