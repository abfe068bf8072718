package authapimodels

import "recruitment-backend/models"

type MeView struct {
	ID          string                                `json:"id"`
	Email       string                                `json:"email"`
	FirstName   string                                `json:"first_name"`
	LastName    string                                `json:"last_name"`
	Phone       string                                `json:"phone"`
	Role        models.UserRole                       `json:"role"`
	RoleName    string                                `json:"role_name"`
	CompanyID   string                                `json:"company_id"`
	CompanyName string                                `json:"company_name"`
	Permissions map[models.Module][]models.Permission `json:"permissions"` // доступные разделы и действия
}
