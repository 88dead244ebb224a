package database

import (
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Company{},
	&models.CompanyMember{},
	&models.Survey{},
	&models.Question{},
	&models.Response{},
	&models.Prize{},
	&models.ChatMessage{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.GiveawayWinner{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
