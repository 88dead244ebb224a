package api

import (
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/database"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/http/exts"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func getCompany(c *fiber.Ctx) error {
	companyId, _ := c.ParamsInt("companyId")

	company, err := services.GetCompany(uint(companyId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(company)
}

func createCompany(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Alias       string `json:"alias" validate:"required,lowercase,alphanum,min=2,max=32"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"max=1024"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	company := models.Company{
		Alias:       data.Alias,
		Name:        data.Name,
		Description: data.Description,
		Members: []models.CompanyMember{
			{Role: models.RoleAdmin, AccountID: user.ID},
		},
	}

	if err := database.C.Create(&company).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(company)
}

func listCompanyMembers(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	companyId, _ := c.ParamsInt("companyId")

	if _, err := services.EnsureMemberRole(user, uint(companyId), models.RoleMember); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	var members []models.CompanyMember
	if err := database.C.Where("company_id = ?", companyId).
		Preload("Account").
		Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(members)
}

func addCompanyMember(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	companyId, _ := c.ParamsInt("companyId")

	var data struct {
		AccountName string `json:"account_name" validate:"required"`
		Role        int    `json:"role" validate:"min=0,max=2"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EnsureMemberRole(user, uint(companyId), models.RoleAdmin); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	company, err := services.GetCompany(uint(companyId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var account models.Account
	if err := database.C.Where("name = ?", data.AccountName).First(&account).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	member, err := services.AddCompanyMember(company, account, data.Role)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(member)
}
