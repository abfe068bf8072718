package vacancyapimodels

import (
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type VacancyData struct {
	Title        string   `json:"title"`         // название вакансии
	Description  string   `json:"description"`   // описание, требования и условия
	Location     string   `json:"location"`      // место работы
	Skills       []string `json:"skills"`        // ключевые навыки
	SalaryFrom   int      `json:"salary_from"`   // зарплата от
	SalaryTo     int      `json:"salary_to"`     // зарплата до
	AssessmentID string   `json:"assessment_id"` // тест для этапа психологического тестирования
}

func (v VacancyData) Validate() error {
	if strings.TrimSpace(v.Title) == "" {
		return errors.New("не указано название вакансии")
	}
	if v.SalaryFrom < 0 || v.SalaryTo < 0 {
		return errors.New("зарплата не может быть отрицательной")
	}
	if v.SalaryTo != 0 && v.SalaryFrom > v.SalaryTo {
		return errors.New("зарплата 'от' больше зарплаты 'до'")
	}
	for _, skill := range v.Skills {
		if strings.TrimSpace(skill) == "" {
			return errors.New("указан пустой навык")
		}
	}
	return nil
}

type VacancyView struct {
	ID              string               `json:"id"`
	CompanyID       string               `json:"company_id"`
	CompanyName     string               `json:"company_name"`
	AuthorName      string               `json:"author_name,omitempty"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Location        string               `json:"location"`
	Skills          []string             `json:"skills"`
	SalaryFrom      int                  `json:"salary_from"`
	SalaryTo        int                  `json:"salary_to"`
	Status          models.VacancyStatus `json:"status"`
	StatusName      string               `json:"status_name"`
	AssessmentID    string               `json:"assessment_id,omitempty"`
	AssessmentTitle string               `json:"assessment_title,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

func Convert(rec dbmodels.Vacancy) VacancyView {
	result := VacancyView{
		ID:          rec.ID,
		CompanyID:   rec.CompanyID,
		Title:       rec.Title,
		Description: rec.Description,
		Location:    rec.Location,
		Skills:      []string(rec.Skills),
		SalaryFrom:  rec.SalaryFrom,
		SalaryTo:    rec.SalaryTo,
		Status:      rec.Status,
		StatusName:  rec.Status.ToHuman(),
		CreatedAt:   rec.CreatedAt,
	}
	if result.Skills == nil {
		result.Skills = []string{}
	}
	if rec.Company != nil {
		result.CompanyName = rec.Company.Name
	}
	if rec.Author != nil {
		result.AuthorName = rec.Author.GetFullName()
	}
	if rec.AssessmentID != nil {
		result.AssessmentID = *rec.AssessmentID
	}
	if rec.Assessment != nil {
		result.AssessmentTitle = rec.Assessment.Title
	}
	return result
}

// ConvertPublic вакансия для кандидатов, без служебных полей
func ConvertPublic(rec dbmodels.Vacancy) VacancyView {
	result := Convert(rec)
	result.AuthorName = ""
	result.AssessmentID = ""
	result.AssessmentTitle = ""
	return result
}

type VacancyFilter struct {
	apimodels.Pagination
	Search   string                 `json:"search"`   // поиск по названию и описанию
	Statuses []models.VacancyStatus `json:"statuses"` // фильтр по статусам
	Location string                 `json:"location"` // фильтр по месту работы
	Skill    string                 `json:"skill"`    // фильтр по навыку
}

type StatusChangeRequest struct {
	Status models.VacancyStatus `json:"status"`
}

func (r StatusChangeRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.Errorf("неизвестный статус вакансии (%v)", r.Status)
	}
	return nil
}
