package models

type UserRole string

const (
	AdminRole     UserRole = "ADMIN_ROLE"
	HRRole        UserRole = "HR_ROLE"
	CandidateRole UserRole = "CANDIDATE_ROLE"
)

var roleHumanName = map[UserRole]string{
	AdminRole:     "Администратор",
	HRRole:        "HR специалист",
	CandidateRole: "Кандидат",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}

// IsStaff роль сотрудника компании (не кандидата)
func (r UserRole) IsStaff() bool {
	return r == AdminRole || r == HRRole
}

const SystemUser = "Система"
