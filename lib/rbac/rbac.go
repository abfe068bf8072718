package rbac

import (
	"recruitment-backend/models"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error
	// GetPermissions права роли по модулям, отдаются фронту в /auth/me
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

var Instance Provider

func NewHandler() {
	i := &impl{
		rules:       map[HTTPMethod]*methodRules{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	Instance = i
	i.initRules()
}

type impl struct {
	rules       map[HTTPMethod]*methodRules
	permissions map[models.UserRole]map[models.Module][]models.Permission
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	rules, ok := i.rules[HTTPMethod(strings.ToUpper(method))]
	if !ok {
		return nil, false
	}
	path = normalizePath(path)
	if rule, ok := rules.exact[path]; ok {
		return rule.check, true
	}
	segments := splitPath(path)
	for _, rule := range rules.patterns {
		if rule.match(segments) {
			return rule.check, true
		}
	}
	return nil, false
}

func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		return err
	}
	rules, ok := i.rules[method]
	if !ok {
		rules = &methodRules{exact: map[string]routeRule{}}
		i.rules[method] = rules
	}
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	rule := routeRule{
		segments: splitPath(path),
		check:    handler,
	}
	if !strings.Contains(path, "{") {
		if _, exists := rules.exact[path]; exists {
			return errors.Errorf("правило для маршрута уже задано (%v)", swaggerPattern)
		}
		rules.exact[path] = rule
	} else {
		for _, existed := range rules.patterns {
			if existed.sameTemplate(rule.segments) {
				return errors.Errorf("правило для маршрута уже задано (%v)", swaggerPattern)
			}
		}
		rules.patterns = append(rules.patterns, rule)
	}
	i.addPermission(module, permission, roles)
	return nil
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	return i.permissions[role]
}

func (i *impl) addPermission(module models.Module, permission models.Permission, roles []models.UserRole) {
	for _, role := range roles {
		modules, ok := i.permissions[role]
		if !ok {
			modules = map[models.Module][]models.Permission{}
			i.permissions[role] = modules
		}
		if !slices.Contains(modules[module], permission) {
			modules[module] = append(modules[module], permission)
		}
	}
}

func AllowFunc() models.RbacFunc {
	return func(companyID, userID string, role models.UserRole, uri string) bool {
		return true
	}
}

// CompanyStaffFunc доступ сотрудникам из списка ролей, привязанным к компании
func CompanyStaffFunc(accessRoles []models.UserRole) models.RbacFunc {
	byRole := AllowByRoleFunc(accessRoles)
	return func(companyID, userID string, role models.UserRole, uri string) bool {
		return companyID != "" && byRole(companyID, userID, role, uri)
	}
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	allowMap := map[models.UserRole]bool{}
	for _, role := range accessRoles {
		allowMap[role] = true
	}
	return func(companyID, userID string, role models.UserRole, uri string) bool {
		return allowMap[role]
	}
}

// parseSwaggerPattern разбирает строку вида "/api/v1/space/vacancy/{id} [put]" из @router
func parseSwaggerPattern(pattern string) (path string, method HTTPMethod, err error) {
	pattern = strings.TrimSpace(pattern)
	start := strings.LastIndex(pattern, "[")
	end := strings.LastIndex(pattern, "]")
	if start == -1 || end < start {
		return "", "", errors.Errorf("не указан метод в шаблоне маршрута (%v)", pattern)
	}
	method = HTTPMethod(strings.ToUpper(strings.TrimSpace(pattern[start+1 : end])))
	if method == "" {
		return "", "", errors.Errorf("не указан метод в шаблоне маршрута (%v)", pattern)
	}
	return normalizePath(pattern[:start]), method, nil
}

func normalizePath(path string) string {
	return "/" + strings.Join(splitPath(path), "/")
}

func splitPath(path string) []string {
	return strings.FieldsFunc(strings.TrimSpace(path), func(r rune) bool {
		return r == '/'
	})
}
