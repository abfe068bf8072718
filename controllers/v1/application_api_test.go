package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	applicationhandler "recruitment-backend/lib/application"
	"recruitment-backend/lib/recruitment"
	"recruitment-backend/lib/utils/lock"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	applicationapimodels "recruitment-backend/models/api/application"
	dbmodels "recruitment-backend/models/db"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testCompanyID = "company-1"
	testUserID    = "hr-1"
)

type fakeApplications struct {
	applicationhandler.Provider
	advanceErr error
	request    applicationapimodels.AdvanceRequest
	companyID  string
}

func (f *fakeApplications) Advance(ctx context.Context, companyID, userID, id string, request applicationapimodels.AdvanceRequest) (applicationapimodels.ApplicationView, error) {
	f.request = request
	f.companyID = companyID
	if f.advanceErr != nil {
		return applicationapimodels.ApplicationView{}, f.advanceErr
	}
	return applicationapimodels.ApplicationView{ID: id, Status: request.Status}, nil
}

func (f *fakeApplications) Export(companyID string, request applicationapimodels.ExportRequest) (*bytes.Buffer, error) {
	return bytes.NewBufferString("xlsx"), nil
}

func newTestApp(fake *fakeApplications) *fiber.App {
	applicationhandler.Instance = fake
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("user", &jwt.Token{Claims: jwt.MapClaims{
			"sub":     testUserID,
			"company": testCompanyID,
			"role":    string(models.HRRole),
		}})
		return ctx.Next()
	})
	InitApplicationApiRouters(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, apimodels.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.Nil(t, err)
	data, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	result := apimodels.Response{}
	require.Nil(t, json.Unmarshal(data, &result))
	return resp.StatusCode, result
}

func TestApplicationApi(t *testing.T) {
	t.Run(`advance`, func(t *testing.T) {
		fake := &fakeApplications{}
		app := newTestApp(fake)
		code, resp := doRequest(t, app, fiber.MethodPut, "/application/app-1/advance", `{"status":"administrative_selection"}`)
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, "success", resp.Status)
		require.Equal(t, models.StatusAdministrativeSelection, fake.request.Status)
		require.Equal(t, testCompanyID, fake.companyID)
	})

	t.Run(`advance without status`, func(t *testing.T) {
		app := newTestApp(&fakeApplications{})
		code, resp := doRequest(t, app, fiber.MethodPut, "/application/app-1/advance", `{}`)
		require.Equal(t, fiber.StatusBadRequest, code)
		require.Equal(t, "не указан статус заявки", resp.Message)
	})

	t.Run(`illegal transition`, func(t *testing.T) {
		_, engineErr := recruitment.Advance(dbmodels.Application{Status: models.StatusPending}, models.StatusInterview, "", time.Now())
		require.NotNil(t, engineErr)
		app := newTestApp(&fakeApplications{advanceErr: engineErr})
		code, resp := doRequest(t, app, fiber.MethodPut, "/application/app-1/advance", `{"status":"interview"}`)
		require.Equal(t, fiber.StatusBadRequest, code)
		require.Equal(t, engineErr.Error(), resp.Message)
	})

	t.Run(`not found`, func(t *testing.T) {
		app := newTestApp(&fakeApplications{advanceErr: apimodels.NewNotFoundError("заявка не найдена")})
		code, _ := doRequest(t, app, fiber.MethodPut, "/application/app-1/advance", `{"status":"interview"}`)
		require.Equal(t, fiber.StatusNotFound, code)
	})

	t.Run(`locked`, func(t *testing.T) {
		app := newTestApp(&fakeApplications{advanceErr: lock.ErrLockBusy})
		code, _ := doRequest(t, app, fiber.MethodPut, "/application/app-1/advance", `{"status":"interview"}`)
		require.Equal(t, fiber.StatusConflict, code)
	})

	t.Run(`internal error hidden`, func(t *testing.T) {
		app := newTestApp(&fakeApplications{advanceErr: io.ErrUnexpectedEOF})
		code, resp := doRequest(t, app, fiber.MethodPut, "/application/app-1/advance", `{"status":"interview"}`)
		require.Equal(t, fiber.StatusInternalServerError, code)
		require.Equal(t, "Ошибка перевода заявки", resp.Message)
	})

	t.Run(`export`, func(t *testing.T) {
		app := newTestApp(&fakeApplications{})
		req := httptest.NewRequest(fiber.MethodPost, "/application/export", strings.NewReader(`{}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".xlsx")
		data, err := io.ReadAll(resp.Body)
		require.Nil(t, err)
		require.Equal(t, "xlsx", string(data))
	})
}
