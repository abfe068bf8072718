package rbac

import (
	"recruitment-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`route template`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/space/application/{id}/advance [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		rule := routeRule{segments: splitPath(path)}

		require.True(t, rule.match(splitPath("/api/v1/space/application/123-321/advance")))
		require.False(t, rule.match(splitPath("/api/v1/space/application/advance")))
		require.False(t, rule.match(splitPath("/api/v1/space/application/123-321/advance/extra")))

		path, method, err = parseSwaggerPattern("/api/v1/space/vacancy/{id}/team/{user_id} [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		rule = routeRule{segments: splitPath(path)}

		require.True(t, rule.match(splitPath("/api/v1/space/vacancy/123-321/team/qwe-ewr123-wr-12")))
		require.False(t, rule.match(splitPath("/api/v1/space/vacancy/we-ewr123-wr-12/team")))
	})

	t.Run(`pattern without method`, func(t *testing.T) {
		_, _, err := parseSwaggerPattern("/api/v1/space/vacancy")
		require.NotNil(t, err)
		_, _, err = parseSwaggerPattern("/api/v1/space/vacancy []")
		require.NotNil(t, err)
	})

	t.Run(`normalize path`, func(t *testing.T) {
		require.Equal(t, "/", normalizePath(""))
		require.Equal(t, "/api/v1/space", normalizePath("api//v1/space/"))
	})
}

func TestRules(t *testing.T) {
	NewHandler()

	t.Run(`staff routes need company`, func(t *testing.T) {
		handler, found := Instance.GetRuleFunc("put", "/api/v1/space/application/app-1/advance")
		require.True(t, found)
		require.True(t, handler("company-1", "user-1", models.HRRole, ""))
		require.False(t, handler("", "user-1", models.HRRole, ""))
		require.False(t, handler("company-1", "user-1", models.CandidateRole, ""))
	})

	t.Run(`exact route before pattern`, func(t *testing.T) {
		handler, found := Instance.GetRuleFunc("POST", "/api/v1/space/application/export/")
		require.True(t, found)
		require.True(t, handler("company-1", "user-1", models.AdminRole, ""))
	})

	t.Run(`candidate routes`, func(t *testing.T) {
		handler, found := Instance.GetRuleFunc("POST", "/api/v1/candidate/application/app-1/assessment")
		require.True(t, found)
		require.True(t, handler("", "user-1", models.CandidateRole, ""))
		require.False(t, handler("company-1", "user-1", models.HRRole, ""))
	})

	t.Run(`unknown route`, func(t *testing.T) {
		_, found := Instance.GetRuleFunc("GET", "/api/v1/public/vacancy/list")
		require.False(t, found)
	})

	t.Run(`duplicate route`, func(t *testing.T) {
		err := Instance.RegisterRule(models.VacancyModule, models.ViewPermission, StaffRoleSet, "/api/v1/space/vacancy/{vacancy_id} [get]", nil)
		require.NotNil(t, err)
		err = Instance.RegisterRule(models.VacancyModule, models.ViewPermission, StaffRoleSet, "/api/v1/space/vacancy/list [post]", nil)
		require.NotNil(t, err)
	})

	t.Run(`permissions`, func(t *testing.T) {
		permissions := Instance.GetPermissions(models.HRRole)
		require.ElementsMatch(t, []models.Permission{models.ViewPermission, models.FlowPermission, models.ExportPermission},
			permissions[models.ApplicationModule])
		require.Empty(t, permissions[models.CompanyModule])
		require.Len(t, Instance.GetPermissions(models.CandidateRole)[models.CandidateModule], 2)
	})
}
