package usersapimodels

import (
	"net/mail"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// UserData учетная запись HR специалиста, создается администратором
type UserData struct {
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Phone     string          `json:"phone"`
	Role      models.UserRole `json:"role"`       // HR_ROLE или ADMIN_ROLE
	CompanyID string          `json:"company_id"` // обязательно для HR_ROLE
}

func (r UserData) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if len(r.Password) < 8 {
		return errors.New("пароль должен содержать не менее 8 символов")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return errors.New("не указано имя")
	}
	if !r.Role.IsStaff() {
		return errors.Errorf("недопустимая роль пользователя (%v)", r.Role)
	}
	if r.Role == models.HRRole && r.CompanyID == "" {
		return errors.New("не указана компания HR специалиста")
	}
	return nil
}

type UserView struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Phone       string          `json:"phone"`
	Role        models.UserRole `json:"role"`
	RoleName    string          `json:"role_name"`
	CompanyID   string          `json:"company_id"`
	CompanyName string          `json:"company_name"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

func Convert(rec dbmodels.User) UserView {
	result := UserView{
		ID:        rec.ID,
		Email:     rec.Email,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Phone:     rec.Phone,
		Role:      rec.Role,
		RoleName:  rec.Role.ToHuman(),
		CompanyID: rec.GetCompanyID(),
		IsActive:  rec.IsActive,
		CreatedAt: rec.CreatedAt,
	}
	if rec.Company != nil {
		result.CompanyName = rec.Company.Name
	}
	return result
}

type UserFilter struct {
	apimodels.Pagination
	Search    string          `json:"search"`     // поиск по почте и ФИО
	Role      models.UserRole `json:"role"`       // фильтр по роли
	CompanyID string          `json:"company_id"` // фильтр по компании
}

type ActiveRequest struct {
	IsActive bool `json:"is_active"`
}
