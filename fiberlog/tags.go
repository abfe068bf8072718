package fiberlog

import (
	authutils "recruitment-backend/lib/utils/auth-utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagStatus   = "status"
	TagLatency  = "latency"
	TagMethod   = "method"
	TagPath     = "path"
	TagIP       = "ip"
	TagBody     = "body"
	TagResBody  = "res_body"
	TagUserID   = "user_id"
	RequestID   = "request_id"
	maxBodySize = 2048
)

// FuncTag значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// тела запросов авторизации не пишутся в лог
var hiddenBodyPaths = []string{"/auth/login", "/auth/register", "/auth/refresh-token", "/admin/users"}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			for _, path := range hiddenBodyPaths {
				if strings.HasSuffix(c.Path(), path) {
					return ""
				}
			}
			return cut(string(c.Body()))
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			contentType := string(c.Response().Header.ContentType())
			if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
				return ""
			}
			return cut(string(c.Response().Body()))
		},
		TagUserID: func(c *fiber.Ctx, d *data) interface{} {
			userID, _ := authutils.GetClaims(c)["sub"].(string)
			return userID
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func cut(value string) string {
	if len(value) > maxBodySize {
		return value[:maxBodySize] + "..."
	}
	return value
}
