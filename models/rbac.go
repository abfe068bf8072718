package models

// RbacFunc проверка доступа к маршруту; companyID пуст для кандидатов и администраторов без компании
type RbacFunc func(companyID, userID string, role UserRole, path string) bool

type Module string

const (
	UsersModule       Module = "USERS"
	CompanyModule     Module = "COMPANY"
	VacancyModule     Module = "VACANCY"
	AssessmentModule  Module = "ASSESSMENT"
	ApplicationModule Module = "APPLICATION"
	CandidateModule   Module = "CANDIDATE"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	FlowPermission   Permission = "FLOW"
	ExportPermission Permission = "EXPORT"
	ApplyPermission  Permission = "APPLY"
)
