package dbmodels

import (
	"recruitment-backend/models"

	"github.com/lib/pq"
)

type Vacancy struct {
	BaseCompanyModel
	Company      *Company
	AuthorID     string `gorm:"type:varchar(36)"`
	Author       *User  `gorm:"foreignKey:AuthorID"`
	Title        string `gorm:"type:varchar(255)"`
	Description  string
	Location     string         `gorm:"type:varchar(255)"`
	Skills       pq.StringArray `gorm:"type:text[]"`
	SalaryFrom   int
	SalaryTo     int
	Status       models.VacancyStatus `gorm:"type:varchar(50);index"`
	AssessmentID *string              `gorm:"type:varchar(36)"` // тест для этапа психологического тестирования
	Assessment   *Assessment
}

func (v Vacancy) IsOpen() bool {
	return v.Status == models.VacancyStatusOpen
}
