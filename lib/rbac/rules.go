package rbac

import (
	"recruitment-backend/models"
)

var (
	AdminRoleSet     = []models.UserRole{models.AdminRole}
	StaffRoleSet     = []models.UserRole{models.AdminRole, models.HRRole}
	CandidateRoleSet = []models.UserRole{models.CandidateRole}
)

func (i *impl) initRules() {
	i.addUsersRbac()
	i.addCompanyRbac()
	i.addVacancyRbac()
	i.addAssessmentRbac()
	i.addApplicationRbac()
	i.addCandidateRbac()
}

func (i *impl) mustRegister(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) {
	if err := i.RegisterRule(module, permission, roles, swaggerPattern, handler); err != nil {
		panic(err.Error())
	}
}

func (i *impl) addUsersRbac() {
	//VIEW
	i.mustRegister(models.UsersModule, models.ViewPermission, AdminRoleSet, "/api/v1/admin/users/list [post]", nil)
	//MANAGE
	i.mustRegister(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/admin/users [post]", nil)
	i.mustRegister(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/admin/users/{id}/active [put]", nil)
}

func (i *impl) addCompanyRbac() {
	//VIEW
	i.mustRegister(models.CompanyModule, models.ViewPermission, AdminRoleSet, "/api/v1/admin/company/list [post]", nil)
	i.mustRegister(models.CompanyModule, models.ViewPermission, AdminRoleSet, "/api/v1/admin/company/{id} [get]", nil)
	//MANAGE
	i.mustRegister(models.CompanyModule, models.ManagePermission, AdminRoleSet, "/api/v1/admin/company [post]", nil)
	i.mustRegister(models.CompanyModule, models.ManagePermission, AdminRoleSet, "/api/v1/admin/company/{id} [put]", nil)
	i.mustRegister(models.CompanyModule, models.ManagePermission, AdminRoleSet, "/api/v1/admin/company/{id} [delete]", nil)
}

func (i *impl) addVacancyRbac() {
	staff := CompanyStaffFunc(StaffRoleSet)
	// VIEW
	i.mustRegister(models.VacancyModule, models.ViewPermission, StaffRoleSet, "/api/v1/space/vacancy/list [post]", staff)
	i.mustRegister(models.VacancyModule, models.ViewPermission, StaffRoleSet, "/api/v1/space/vacancy/{id} [get]", staff)
	//CREATE/EDIT
	i.mustRegister(models.VacancyModule, models.CreatePermission, StaffRoleSet, "/api/v1/space/vacancy [post]", staff)
	i.mustRegister(models.VacancyModule, models.EditPermission, StaffRoleSet, "/api/v1/space/vacancy/{id} [put]", staff)
	i.mustRegister(models.VacancyModule, models.EditPermission, StaffRoleSet, "/api/v1/space/vacancy/{id} [delete]", staff)
	i.mustRegister(models.VacancyModule, models.EditPermission, StaffRoleSet, "/api/v1/space/vacancy/{id}/change_status [put]", staff)
}

func (i *impl) addAssessmentRbac() {
	staff := CompanyStaffFunc(StaffRoleSet)
	// VIEW
	i.mustRegister(models.AssessmentModule, models.ViewPermission, StaffRoleSet, "/api/v1/space/assessment/list [post]", staff)
	i.mustRegister(models.AssessmentModule, models.ViewPermission, StaffRoleSet, "/api/v1/space/assessment/{id} [get]", staff)
	//CREATE/EDIT
	i.mustRegister(models.AssessmentModule, models.CreatePermission, StaffRoleSet, "/api/v1/space/assessment [post]", staff)
	i.mustRegister(models.AssessmentModule, models.EditPermission, StaffRoleSet, "/api/v1/space/assessment/{id} [put]", staff)
	i.mustRegister(models.AssessmentModule, models.EditPermission, StaffRoleSet, "/api/v1/space/assessment/{id} [delete]", staff)
}

func (i *impl) addApplicationRbac() {
	staff := CompanyStaffFunc(StaffRoleSet)
	// VIEW
	i.mustRegister(models.ApplicationModule, models.ViewPermission, StaffRoleSet, "/api/v1/space/application/list [post]", staff)
	i.mustRegister(models.ApplicationModule, models.ViewPermission, StaffRoleSet, "/api/v1/space/application/{id} [get]", staff)
	i.mustRegister(models.ApplicationModule, models.ViewPermission, StaffRoleSet, "/api/v1/space/application/{id}/changes [post]", staff)
	//FLOW
	i.mustRegister(models.ApplicationModule, models.FlowPermission, StaffRoleSet, "/api/v1/space/application/{id}/advance [put]", staff)
	i.mustRegister(models.ApplicationModule, models.FlowPermission, StaffRoleSet, "/api/v1/space/application/{id}/stage_status [put]", staff)
	i.mustRegister(models.ApplicationModule, models.FlowPermission, StaffRoleSet, "/api/v1/space/application/{id}/review [put]", staff)
	//EXPORT
	i.mustRegister(models.ApplicationModule, models.ExportPermission, StaffRoleSet, "/api/v1/space/application/export [post]", staff)
	i.mustRegister(models.ApplicationModule, models.ExportPermission, StaffRoleSet, "/api/v1/space/application/{id}/report [get]", staff)
}

func (i *impl) addCandidateRbac() {
	//APPLY
	i.mustRegister(models.CandidateModule, models.ApplyPermission, CandidateRoleSet, "/api/v1/candidate/application [post]", nil)
	i.mustRegister(models.CandidateModule, models.ApplyPermission, CandidateRoleSet, "/api/v1/candidate/application/{id}/assessment [post]", nil)
	// VIEW
	i.mustRegister(models.CandidateModule, models.ViewPermission, CandidateRoleSet, "/api/v1/candidate/application/list [post]", nil)
	i.mustRegister(models.CandidateModule, models.ViewPermission, CandidateRoleSet, "/api/v1/candidate/application/{id} [get]", nil)
	i.mustRegister(models.CandidateModule, models.ViewPermission, CandidateRoleSet, "/api/v1/candidate/application/{id}/assessment [get]", nil)
}
