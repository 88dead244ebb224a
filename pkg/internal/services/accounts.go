package services

import (
	"errors"
	"fmt"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/database"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"gorm.io/gorm"
)

func GetAccount(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetCompany(id uint) (models.Company, error) {
	var company models.Company
	if err := database.C.Where("id = ?", id).First(&company).Error; err != nil {
		return company, err
	}
	return company, nil
}

func GetCompanyWithAlias(alias string) (models.Company, error) {
	var company models.Company
	if err := database.C.Where(models.Company{Alias: alias}).First(&company).Error; err != nil {
		return company, err
	}
	return company, nil
}

// GetCompanyMember resolves the membership of an account inside a
// company, a nil pointer with a nil error means not a member.
func GetCompanyMember(user models.Account, companyId uint) (*models.CompanyMember, error) {
	var member models.CompanyMember
	if err := database.C.Where("company_id = ? AND account_id = ?", companyId, user.ID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get company member: %v", err)
	}
	return &member, nil
}

func EnsureMemberRole(user models.Account, companyId uint, requiredRole int) (models.CompanyMember, error) {
	member, err := GetCompanyMember(user, companyId)
	if err != nil {
		return models.CompanyMember{}, err
	}
	if member == nil {
		return models.CompanyMember{}, fmt.Errorf("you are not a member of company #%d", companyId)
	}
	if member.Role < requiredRole {
		return *member, fmt.Errorf("you don't have enough permission to do that")
	}
	return *member, nil
}

func AddCompanyMember(company models.Company, account models.Account, role int) (models.CompanyMember, error) {
	var member models.CompanyMember
	if err := database.C.Where("company_id = ? AND account_id = ?", company.ID, account.ID).First(&member).Error; err == nil {
		return member, fmt.Errorf("membership already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return member, err
	}

	member = models.CompanyMember{
		Role:      role,
		CompanyID: company.ID,
		AccountID: account.ID,
	}

	err := database.C.Save(&member).Error
	return member, err
}
