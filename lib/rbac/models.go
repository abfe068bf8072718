package rbac

import (
	"recruitment-backend/models"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
)

// routeRule правило доступа к маршруту api
type routeRule struct {
	segments []string // сегменты шаблона, {param} совпадает с любым непустым значением
	check    models.RbacFunc
}

func (r routeRule) match(segments []string) bool {
	if len(r.segments) != len(segments) {
		return false
	}
	for n, tpl := range r.segments {
		if isParam(tpl) {
			if segments[n] == "" {
				return false
			}
			continue
		}
		if tpl != segments[n] {
			return false
		}
	}
	return true
}

// sameTemplate шаблоны совпадают с точностью до имен параметров
func (r routeRule) sameTemplate(segments []string) bool {
	if len(r.segments) != len(segments) {
		return false
	}
	for n, tpl := range r.segments {
		if isParam(tpl) != isParam(segments[n]) {
			return false
		}
		if !isParam(tpl) && tpl != segments[n] {
			return false
		}
	}
	return true
}

// methodRules правила одного http метода, точные пути проверяются раньше шаблонов
type methodRules struct {
	exact    map[string]routeRule
	patterns []routeRule
}

func isParam(segment string) bool {
	return len(segment) > 2 && segment[0] == '{' && segment[len(segment)-1] == '}'
}
