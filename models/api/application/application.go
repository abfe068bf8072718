package applicationapimodels

import (
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type ApplyRequest struct {
	VacancyID   string `json:"vacancy_id"`   // вакансия
	CoverLetter string `json:"cover_letter"` // сопроводительное письмо
}

func (r ApplyRequest) Validate() error {
	if strings.TrimSpace(r.VacancyID) == "" {
		return errors.New("не указана вакансия")
	}
	return nil
}

// AdvanceRequest перевод заявки на этап или вынесение решения
type AdvanceRequest struct {
	Status      models.ApplicationStatus `json:"status"`       // целевой статус заявки
	StageStatus models.StageStatus       `json:"stage_status"` // статус этапа при входе (scheduled по умолчанию)
	Comment     string                   `json:"comment"`      // комментарий для истории
}

func (r AdvanceRequest) Validate() error {
	if r.Status == "" {
		return errors.New("не указан статус заявки")
	}
	return nil
}

type StageStatusRequest struct {
	Stage   models.ApplicationStatus `json:"stage"`  // этап, статус которого меняется
	Status  models.StageStatus       `json:"status"` // новый статус этапа
	Comment string                   `json:"comment"`
}

func (r StageStatusRequest) Validate() error {
	if r.Stage == "" {
		return errors.New("не указан этап")
	}
	if r.Status == "" {
		return errors.New("не указан статус этапа")
	}
	return nil
}

// SubmitAnswersRequest ответы кандидата на тест
type SubmitAnswersRequest struct {
	Answers map[string]string `json:"answers"` // вопрос -> выбранный вариант
	Essays  map[string]string `json:"essays"`  // вопрос -> свободный ответ
}

func (r SubmitAnswersRequest) Validate() error {
	if len(r.Answers) == 0 && len(r.Essays) == 0 {
		return errors.New("не переданы ответы")
	}
	return nil
}

// ReviewRequest решение HR по тесту со свободными ответами
type ReviewRequest struct {
	Passed  bool   `json:"passed"`
	Comment string `json:"comment"`
}

type ApplicationFilter struct {
	apimodels.Pagination
	VacancyID string                     `json:"vacancy_id"` // фильтр по вакансии
	Statuses  []models.ApplicationStatus `json:"statuses"`   // фильтр по статусам
	Search    string                     `json:"search"`     // поиск по ФИО и почте кандидата
}

func (r ApplicationFilter) Validate() error {
	if err := r.Pagination.Validate(); err != nil {
		return err
	}
	for _, status := range r.Statuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type ExportRequest struct {
	VacancyID string                     `json:"vacancy_id"`
	Statuses  []models.ApplicationStatus `json:"statuses"`
}

type StatusView struct {
	Value models.ApplicationStatus `json:"value"`
	Name  string                   `json:"name"`
}

func ConvertStatus(status models.ApplicationStatus) StatusView {
	return StatusView{Value: status, Name: status.ToHuman()}
}

type StageView struct {
	ID         string                   `json:"id"`
	Stage      models.ApplicationStatus `json:"stage"`
	StageName  string                   `json:"stage_name"`
	Status     models.StageStatus       `json:"status"`
	StatusName string                   `json:"status_name"`
	EnteredAt  time.Time                `json:"entered_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

type ApplicationView struct {
	ID             string                   `json:"id"`
	CandidateID    string                   `json:"candidate_id"`
	CandidateName  string                   `json:"candidate_name"`
	CandidateEmail string                   `json:"candidate_email"`
	CandidatePhone string                   `json:"candidate_phone,omitempty"`
	VacancyID      string                   `json:"vacancy_id"`
	VacancyTitle   string                   `json:"vacancy_title"`
	CompanyName    string                   `json:"company_name"`
	Status         models.ApplicationStatus `json:"status"`
	StatusName     string                   `json:"status_name"`
	CoverLetter    string                   `json:"cover_letter"`
	Stages         []StageView              `json:"stages"`                    // пройденные этапы в порядке входа
	AllowedTargets []StatusView             `json:"allowed_targets,omitempty"` // доступные переходы
	Assessment     *AssessmentResultView    `json:"assessment,omitempty"`      // результат теста
	DecidedAt      *time.Time               `json:"decided_at"`
	CreatedAt      time.Time                `json:"created_at"`
}

func Convert(rec dbmodels.Application) ApplicationView {
	result := ApplicationView{
		ID:          rec.ID,
		CandidateID: rec.CandidateID,
		VacancyID:   rec.VacancyID,
		Status:      rec.Status,
		StatusName:  rec.Status.ToHuman(),
		CoverLetter: rec.CoverLetter,
		Stages:      make([]StageView, 0, len(rec.StageHistory)),
		DecidedAt:   rec.DecidedAt,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Candidate != nil {
		result.CandidateName = rec.Candidate.GetFullName()
		result.CandidateEmail = rec.Candidate.Email
		result.CandidatePhone = rec.Candidate.Phone
	}
	if rec.Vacancy != nil {
		result.VacancyTitle = rec.Vacancy.Title
		if rec.Vacancy.Company != nil {
			result.CompanyName = rec.Vacancy.Company.Name
		}
	}
	for _, entry := range rec.StageHistory {
		result.Stages = append(result.Stages, StageView{
			ID:         entry.ID,
			Stage:      entry.Stage,
			StageName:  entry.Stage.ToHuman(),
			Status:     entry.Status,
			StatusName: entry.Status.ToHuman(),
			EnteredAt:  entry.EnteredAt,
			UpdatedAt:  entry.UpdatedAt,
		})
	}
	return result
}

type AssessmentResultView struct {
	AssessmentID  string        `json:"assessment_id"`
	Correct       int           `json:"correct"`        // правильных ответов
	Total         int           `json:"total"`          // вопросов с выбором ответа
	Score         float64       `json:"score"`          // доля правильных ответов
	Passed        *bool         `json:"passed"`         // пусто, пока ответы не проверены
	ReviewPending bool          `json:"review_pending"` // есть ответы для ручной проверки
	Answers       []AnswerCheck `json:"answers,omitempty"`
	Essays        []EssayAnswer `json:"essays,omitempty"`
	SubmittedAt   time.Time     `json:"submitted_at"`
}

type AnswerCheck struct {
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
}

type EssayAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// ConvertResult результат теста; withDetails добавляет проверку ответов (для HR)
func ConvertResult(rec dbmodels.AssessmentResult, withDetails bool) *AssessmentResultView {
	result := &AssessmentResultView{
		AssessmentID:  rec.AssessmentID,
		Correct:       rec.Correct,
		Total:         rec.Total,
		Score:         rec.Score,
		Passed:        rec.Passed,
		ReviewPending: rec.IsReviewPending(),
		SubmittedAt:   rec.SubmittedAt,
	}
	if !withDetails {
		return result
	}
	for _, check := range rec.Answers.Correctness {
		result.Answers = append(result.Answers, AnswerCheck{QuestionID: check.QuestionID, Correct: check.Correct})
	}
	for _, questionID := range rec.Answers.ManualReview {
		result.Essays = append(result.Essays, EssayAnswer{QuestionID: questionID, Answer: rec.Answers.Essays[questionID]})
	}
	return result
}
