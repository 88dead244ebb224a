package services

import (
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/database"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
)

func ListPrizes(companyId uint) ([]models.Prize, error) {
	var prizes []models.Prize
	err := database.C.Where("company_id = ?", companyId).
		Order("rank ASC NULLS LAST, created_at ASC").
		Find(&prizes).Error

	return prizes, err
}

func GetPrize(id uint) (models.Prize, error) {
	var prize models.Prize
	if err := database.C.Where("id = ?", id).First(&prize).Error; err != nil {
		return prize, err
	}
	return prize, nil
}

func NewPrize(prize models.Prize) (models.Prize, error) {
	if err := database.C.Create(&prize).Error; err != nil {
		return prize, err
	}
	return prize, nil
}

func EditPrize(prize models.Prize) (models.Prize, error) {
	if err := database.C.Save(&prize).Error; err != nil {
		return prize, err
	}
	return prize, nil
}

func DeletePrize(prize models.Prize) error {
	return database.C.Delete(&prize).Error
}
