package migration

import (
	"career-bridge/entities"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"admin", &entities.Admin{}},
		{"user points", &entities.UserPoints{}},
		{"points history", &entities.PointsHistory{}},
		{"withdrawal", &entities.Withdrawal{}},
		{"bank account", &entities.BankAccount{}},
		{"personal details", &entities.PersonalDetails{}},
		{"education details", &entities.EducationDetails{}},
		{"job details", &entities.JobDetails{}},
		{"college activity", &entities.CollegeActivity{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("error migrating %s database: %w", m.name, err)
		}
	}

	return nil
}
