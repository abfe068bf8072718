package applicationhandler

import (
	"bytes"
	"context"
	"fmt"
	"recruitment-backend/config"
	"recruitment-backend/db"
	applicationhistoryhandler "recruitment-backend/lib/application-history"
	assessmentresultstore "recruitment-backend/lib/application/result-store"
	applicationstore "recruitment-backend/lib/application/store"
	assessmentscoring "recruitment-backend/lib/assessment/scoring"
	assessmentstore "recruitment-backend/lib/assessment/store"
	pdfexport "recruitment-backend/lib/export/pdf"
	xlsexport "recruitment-backend/lib/export/xls"
	"recruitment-backend/lib/recruitment"
	usersstore "recruitment-backend/lib/users/store"
	"recruitment-backend/lib/utils/lock"
	vacancystore "recruitment-backend/lib/vacancy/store"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	applicationapimodels "recruitment-backend/models/api/application"
	assessmentapimodels "recruitment-backend/models/api/assessment"
	dbmodels "recruitment-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Apply(ctx context.Context, candidateID string, request applicationapimodels.ApplyRequest) (id string, err error)
	GetByID(companyID, id string) (applicationapimodels.ApplicationView, error)
	List(companyID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error)
	GetOwn(candidateID, id string) (applicationapimodels.ApplicationView, error)
	ListOwn(candidateID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error)
	// Advance перевод заявки на следующий этап или вынесение решения
	Advance(ctx context.Context, companyID, userID, id string, request applicationapimodels.AdvanceRequest) (applicationapimodels.ApplicationView, error)
	// MarkStageStatus смена статуса текущего этапа
	MarkStageStatus(ctx context.Context, companyID, userID, id string, request applicationapimodels.StageStatusRequest) (applicationapimodels.ApplicationView, error)
	// GetAssessment тест для кандидата, без правильных ответов
	GetAssessment(candidateID, id string) (assessmentapimodels.AssessmentView, error)
	SubmitAssessment(ctx context.Context, candidateID, id string, request applicationapimodels.SubmitAnswersRequest) (*applicationapimodels.AssessmentResultView, error)
	// ReviewAssessment решение HR по тесту со свободными ответами
	ReviewAssessment(ctx context.Context, companyID, userID, id string, request applicationapimodels.ReviewRequest) (applicationapimodels.ApplicationView, error)
	Export(companyID string, request applicationapimodels.ExportRequest) (*bytes.Buffer, error)
	AssessmentReport(companyID, id string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:               applicationstore.NewInstance(db.DB),
		newStore:            applicationstore.NewInstance,
		resultStore:         assessmentresultstore.NewInstance(db.DB),
		newResultStore:      assessmentresultstore.NewInstance,
		vacancyStore:        vacancystore.NewInstance(db.DB),
		assessmentStore:     assessmentstore.NewInstance(db.DB),
		userStore:           usersstore.NewInstance(db.DB),
		history:             applicationhistoryhandler.Instance,
		xls:                 xlsexport.Instance,
		locker:              lock.Instance,
		lockWait:            time.Duration(config.Conf.Recruitment.LockWaitSec) * time.Second,
		defaultPassingScore: config.Conf.Recruitment.DefaultPassingScore,
		fontDir:             config.Conf.Report.FontDir,
		withTx: func(fn func(tx *gorm.DB) error) error {
			return db.DB.Transaction(fn)
		},
		now: time.Now,
	}
}

type impl struct {
	store               applicationstore.Provider
	newStore            func(tx *gorm.DB) applicationstore.Provider
	resultStore         assessmentresultstore.Provider
	newResultStore      func(tx *gorm.DB) assessmentresultstore.Provider
	vacancyStore        vacancystore.Provider
	assessmentStore     assessmentstore.Provider
	userStore           usersstore.Provider
	history             applicationhistoryhandler.Provider
	xls                 xlsexport.Provider
	locker              lock.Provider
	lockWait            time.Duration
	defaultPassingScore float64
	fontDir             string
	withTx              func(fn func(tx *gorm.DB) error) error
	now                 func() time.Time
}

// accessFunc проверка доступа к заявке, прочитанной под блокировкой
type accessFunc func(rec dbmodels.Application) error

// changeFunc изменение заявки внутри транзакции; возвращает новое состояние заявки
type changeFunc func(tx *gorm.DB, rec dbmodels.Application) (dbmodels.Application, error)

func (i impl) Apply(ctx context.Context, candidateID string, request applicationapimodels.ApplyRequest) (id string, err error) {
	logger := log.WithField("candidate_id", candidateID).WithField("vacancy_id", request.VacancyID)
	vacancy, err := i.vacancyStore.GetByID("", request.VacancyID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансии")
		return "", errors.New("ошибка получения вакансии")
	}
	if vacancy == nil {
		return "", apimodels.NewNotFoundError("вакансия не найдена")
	}
	if !vacancy.IsOpen() {
		return "", apimodels.NewValidationError("вакансия закрыта, отклик невозможен")
	}
	exist, err := i.store.ExistByCandidate(candidateID, request.VacancyID)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки отклика кандидата")
		return "", errors.New("ошибка создания заявки")
	}
	if exist {
		return "", apimodels.NewValidationError(applicationstore.ErrDuplicate.Error())
	}
	candidate, err := i.getUser(candidateID)
	if err != nil {
		return "", err
	}

	err = i.locker.WithLock(ctx, "vacancy:"+request.VacancyID+":"+candidateID, i.lockWait, func() error {
		return i.withTx(func(tx *gorm.DB) error {
			rec := dbmodels.Application{
				CandidateID:  candidateID,
				VacancyID:    request.VacancyID,
				Status:       models.StatusPending,
				StageHistory: dbmodels.StageHistory{},
				CoverLetter:  request.CoverLetter,
			}
			id, err = i.newStore(tx).Create(rec)
			if err != nil {
				return err
			}
			rec.ID = id
			return i.history.Save(tx, rec, candidate, dbmodels.HistoryTypeCreated, dbmodels.ApplicationChanges{Description: "Отклик на вакансию"})
		})
	})
	if err != nil {
		if errors.Is(err, applicationstore.ErrDuplicate) {
			return "", apimodels.NewValidationError(err.Error())
		}
		if errors.Is(err, lock.ErrLockBusy) {
			return "", err
		}
		logger.WithError(err).Error("ошибка создания заявки")
		return "", errors.New("ошибка создания заявки")
	}
	logger.
		WithField("application_id", id).
		Info("Создана заявка кандидата")
	return id, nil
}

func (i impl) GetByID(companyID, id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.get(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec.Vacancy == nil || rec.Vacancy.CompanyID != companyID {
		return applicationapimodels.ApplicationView{}, apimodels.NewNotFoundError("заявка не найдена")
	}
	result, err := i.resultStore.GetByApplication(id)
	if err != nil {
		log.WithField("application_id", id).WithError(err).Error("ошибка получения результата теста")
		return applicationapimodels.ApplicationView{}, errors.New("ошибка получения результата теста")
	}
	return i.toView(*rec, result, true), nil
}

func (i impl) List(companyID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	rowCount, err := i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	if filter.PastEnd(rowCount) {
		return []applicationapimodels.ApplicationView{}, rowCount, nil
	}

	list, err := i.store.List(companyID, filter)
	if err != nil {
		log.WithField("company_id", companyID).WithError(err).Error("ошибка получения списка заявок")
		return nil, 0, errors.New("ошибка получения списка заявок")
	}
	result, err := i.toViews(list, true)
	if err != nil {
		return nil, 0, err
	}
	return result, rowCount, nil
}

func (i impl) GetOwn(candidateID, id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.get(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec.CandidateID != candidateID {
		return applicationapimodels.ApplicationView{}, apimodels.NewNotFoundError("заявка не найдена")
	}
	result, err := i.resultStore.GetByApplication(id)
	if err != nil {
		log.WithField("application_id", id).WithError(err).Error("ошибка получения результата теста")
		return applicationapimodels.ApplicationView{}, errors.New("ошибка получения результата теста")
	}
	return i.toView(*rec, result, false), nil
}

func (i impl) ListOwn(candidateID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	list, rowCount, err := i.store.ListByCandidate(candidateID, filter)
	if err != nil {
		log.WithField("candidate_id", candidateID).WithError(err).Error("ошибка получения списка заявок кандидата")
		return nil, 0, errors.New("ошибка получения списка заявок")
	}
	result, err := i.toViews(list, false)
	if err != nil {
		return nil, 0, err
	}
	return result, rowCount, nil
}

func (i impl) Advance(ctx context.Context, companyID, userID, id string, request applicationapimodels.AdvanceRequest) (applicationapimodels.ApplicationView, error) {
	user, err := i.getUser(userID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	err = i.change(ctx, id, i.companyAccess(companyID), func(tx *gorm.DB, rec dbmodels.Application) (dbmodels.Application, error) {
		updated, err := recruitment.Advance(rec, request.Status, request.StageStatus, i.now())
		if err != nil {
			return dbmodels.Application{}, err
		}
		action := dbmodels.HistoryTypeStageChange
		switch {
		case updated.Status == models.StatusRejected:
			action = dbmodels.HistoryTypeReject
		case updated.Status.IsOutcome():
			action = dbmodels.HistoryTypeDecision
		}
		changes := applicationhistoryhandler.StatusChange(rec.Status, updated.Status, request.Comment)
		err = i.history.Save(tx, updated, user, action, changes)
		if err != nil {
			return dbmodels.Application{}, err
		}
		return updated, nil
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	i.getLogger(companyID, id, userID).
		WithField("status", request.Status).
		Info("Заявка переведена в новый статус")
	return i.GetByID(companyID, id)
}

func (i impl) MarkStageStatus(ctx context.Context, companyID, userID, id string, request applicationapimodels.StageStatusRequest) (applicationapimodels.ApplicationView, error) {
	user, err := i.getUser(userID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	err = i.change(ctx, id, i.companyAccess(companyID), func(tx *gorm.DB, rec dbmodels.Application) (dbmodels.Application, error) {
		return i.markStage(tx, rec, user, request.Stage, request.Status, dbmodels.HistoryTypeStageStatus, request.Comment)
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	return i.GetByID(companyID, id)
}

func (i impl) GetAssessment(candidateID, id string) (assessmentapimodels.AssessmentView, error) {
	rec, err := i.get(id)
	if err != nil {
		return assessmentapimodels.AssessmentView{}, err
	}
	if err = i.candidateAccess(candidateID)(*rec); err != nil {
		return assessmentapimodels.AssessmentView{}, err
	}
	if err = checkTestStage(*rec); err != nil {
		return assessmentapimodels.AssessmentView{}, err
	}
	assessment, err := i.getAssessment(*rec)
	if err != nil {
		return assessmentapimodels.AssessmentView{}, err
	}
	return assessmentapimodels.ConvertForCandidate(*assessment), nil
}

func (i impl) SubmitAssessment(ctx context.Context, candidateID, id string, request applicationapimodels.SubmitAnswersRequest) (*applicationapimodels.AssessmentResultView, error) {
	logger := log.WithField("candidate_id", candidateID).WithField("application_id", id)
	candidate, err := i.getUser(candidateID)
	if err != nil {
		return nil, err
	}
	var resultRec dbmodels.AssessmentResult
	err = i.change(ctx, id, i.candidateAccess(candidateID), func(tx *gorm.DB, rec dbmodels.Application) (dbmodels.Application, error) {
		if err := checkTestStage(rec); err != nil {
			return dbmodels.Application{}, err
		}
		resultStore := i.newResultStore(tx)
		exist, err := resultStore.GetByApplication(rec.ID)
		if err != nil {
			return dbmodels.Application{}, errors.Wrap(err, "ошибка получения результата теста")
		}
		if exist != nil {
			return dbmodels.Application{}, apimodels.NewValidationError("тест уже пройден")
		}
		assessment, err := i.getAssessment(rec)
		if err != nil {
			return dbmodels.Application{}, err
		}
		if err = checkEssays(*assessment, request.Essays); err != nil {
			return dbmodels.Application{}, err
		}
		score, err := assessmentscoring.Score(*assessment, request.Answers)
		if err != nil {
			return dbmodels.Application{}, err
		}

		now := i.now()
		updated := rec
		current, _ := rec.CurrentStage()
		if current.Status == models.StageScheduled {
			updated, err = recruitment.MarkStageStatus(updated, rec.Status, models.StageInProgress, now)
			if err != nil {
				return dbmodels.Application{}, err
			}
		}
		passingScore := assessment.GetPassingScore(i.defaultPassingScore)
		passed, decided := score.Passed(passingScore)
		if decided {
			updated, err = recruitment.MarkStageStatus(updated, rec.Status, stageResult(passed), now)
			if err != nil {
				return dbmodels.Application{}, err
			}
		}

		resultRec = dbmodels.AssessmentResult{
			ApplicationID: rec.ID,
			AssessmentID:  assessment.ID,
			Correct:       score.Correct,
			Total:         score.Total,
			Score:         score.Score,
			Answers:       answerSheet(score, request),
			SubmittedAt:   now,
		}
		if decided {
			resultRec.Passed = &passed
		}
		resultRec.ID, err = resultStore.Create(resultRec)
		if err != nil {
			return dbmodels.Application{}, errors.Wrap(err, "ошибка сохранения результата теста")
		}

		next, _ := updated.CurrentStage()
		changes := applicationhistoryhandler.StageStatusChange(rec.Status, current.Status, next.Status,
			fmt.Sprintf("Результат теста: %v из %v (%.0f%%)", score.Correct, score.Total, score.Score*100))
		err = i.history.Save(tx, updated, candidate, dbmodels.HistoryTypeAssessment, changes)
		if err != nil {
			return dbmodels.Application{}, err
		}
		return updated, nil
	})
	if err != nil {
		return nil, err
	}
	logger.
		WithField("score", resultRec.Score).
		Info("Кандидат прошел тест")
	return applicationapimodels.ConvertResult(resultRec, false), nil
}

func (i impl) ReviewAssessment(ctx context.Context, companyID, userID, id string, request applicationapimodels.ReviewRequest) (applicationapimodels.ApplicationView, error) {
	user, err := i.getUser(userID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	err = i.change(ctx, id, i.companyAccess(companyID), func(tx *gorm.DB, rec dbmodels.Application) (dbmodels.Application, error) {
		resultStore := i.newResultStore(tx)
		result, err := resultStore.GetByApplication(rec.ID)
		if err != nil {
			return dbmodels.Application{}, errors.Wrap(err, "ошибка получения результата теста")
		}
		if result == nil {
			return dbmodels.Application{}, apimodels.NewValidationError("кандидат еще не прошел тест")
		}
		if !result.IsReviewPending() {
			return dbmodels.Application{}, apimodels.NewValidationError("результат теста уже определен")
		}
		if err = checkTestStage(rec); err != nil {
			return dbmodels.Application{}, err
		}
		updated, err := i.markStage(tx, rec, user, rec.Status, stageResult(request.Passed), dbmodels.HistoryTypeReview, request.Comment)
		if err != nil {
			return dbmodels.Application{}, err
		}
		err = resultStore.Update(result.ID, map[string]interface{}{
			"passed":      request.Passed,
			"reviewed_by": user.ID,
		})
		if err != nil {
			return dbmodels.Application{}, errors.Wrap(err, "ошибка сохранения результата проверки")
		}
		return updated, nil
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	return i.GetByID(companyID, id)
}

func (i impl) Export(companyID string, request applicationapimodels.ExportRequest) (*bytes.Buffer, error) {
	logger := log.WithField("company_id", companyID)
	list, err := i.store.ListForExport(companyID, request)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка заявок для выгрузки")
		return nil, errors.New("ошибка получения списка заявок")
	}
	ids := make([]string, 0, len(list))
	for _, rec := range list {
		ids = append(ids, rec.ID)
	}
	results, err := i.resultStore.GetByApplications(ids)
	if err != nil {
		logger.WithError(err).Error("ошибка получения результатов тестов для выгрузки")
		return nil, errors.New("ошибка получения результатов тестов")
	}
	buf, err := i.xls.ExportApplicationList(list, results)
	if err != nil {
		logger.WithError(err).Error("ошибка выгрузки заявок в xlsx")
		return nil, errors.New("ошибка выгрузки заявок")
	}
	return buf, nil
}

func (i impl) AssessmentReport(companyID, id string) ([]byte, error) {
	logger := log.WithField("company_id", companyID).WithField("application_id", id)
	rec, err := i.get(id)
	if err != nil {
		return nil, err
	}
	if err = i.companyAccess(companyID)(*rec); err != nil {
		return nil, err
	}
	result, err := i.resultStore.GetByApplication(id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения результата теста")
		return nil, errors.New("ошибка получения результата теста")
	}
	if result == nil {
		return nil, apimodels.NewNotFoundError("кандидат еще не прошел тест")
	}
	assessment, err := i.assessmentStore.GetByID(companyID, result.AssessmentID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения теста")
		return nil, errors.New("ошибка получения теста")
	}
	if assessment == nil {
		return nil, apimodels.NewNotFoundError("тест не найден")
	}
	file, err := pdfexport.AssessmentReport(i.fontDir, reportData(*rec, *assessment, *result, i.defaultPassingScore))
	if err != nil {
		logger.WithError(err).Error("ошибка формирования отчета по тесту")
		return nil, errors.New("ошибка формирования отчета по тесту")
	}
	return file, nil
}

// change изменяет заявку под блокировкой по ключу заявки и в транзакции с блокировкой строки
func (i impl) change(ctx context.Context, id string, access accessFunc, fn changeFunc) error {
	return i.locker.WithLock(ctx, "application:"+id, i.lockWait, func() error {
		return i.withTx(func(tx *gorm.DB) error {
			store := i.newStore(tx)
			rec, err := store.GetForUpdate(id)
			if err != nil {
				return errors.Wrap(err, "ошибка получения заявки")
			}
			if rec == nil {
				return apimodels.NewNotFoundError("заявка не найдена")
			}
			if err = access(*rec); err != nil {
				return err
			}
			updated, err := fn(tx, *rec)
			if err != nil {
				return err
			}
			updated.ID = rec.ID
			err = store.SaveState(updated)
			if err != nil {
				return errors.Wrap(err, "ошибка сохранения заявки")
			}
			return nil
		})
	})
}

func (i impl) markStage(tx *gorm.DB, rec dbmodels.Application, user *dbmodels.User, stage models.ApplicationStatus, status models.StageStatus, action dbmodels.ActionType, comment string) (dbmodels.Application, error) {
	current, _ := rec.CurrentStage()
	updated, err := recruitment.MarkStageStatus(rec, stage, status, i.now())
	if err != nil {
		return dbmodels.Application{}, err
	}
	changes := applicationhistoryhandler.StageStatusChange(stage, current.Status, status, comment)
	err = i.history.Save(tx, updated, user, action, changes)
	if err != nil {
		return dbmodels.Application{}, err
	}
	return updated, nil
}

func (i impl) companyAccess(companyID string) accessFunc {
	return func(rec dbmodels.Application) error {
		vacancy, err := i.vacancyStore.GetByID(companyID, rec.VacancyID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения вакансии")
		}
		if vacancy == nil {
			return apimodels.NewNotFoundError("заявка не найдена")
		}
		return nil
	}
}

func (i impl) candidateAccess(candidateID string) accessFunc {
	return func(rec dbmodels.Application) error {
		if rec.CandidateID != candidateID {
			return apimodels.NewNotFoundError("заявка не найдена")
		}
		return nil
	}
}

func (i impl) get(id string) (*dbmodels.Application, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("application_id", id).WithError(err).Error("ошибка получения заявки")
		return nil, errors.New("ошибка получения заявки")
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("заявка не найдена")
	}
	return rec, nil
}

func (i impl) getUser(userID string) (*dbmodels.User, error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка получения пользователя")
		return nil, errors.New("ошибка получения пользователя")
	}
	if user == nil {
		return nil, apimodels.NewNotFoundError("пользователь не найден")
	}
	return user, nil
}

// getAssessment тест, назначенный вакансии заявки
func (i impl) getAssessment(rec dbmodels.Application) (*dbmodels.Assessment, error) {
	vacancy, err := i.vacancyStore.GetByID("", rec.VacancyID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if vacancy == nil {
		return nil, apimodels.NewNotFoundError("вакансия не найдена")
	}
	if vacancy.AssessmentID == nil {
		return nil, apimodels.NewValidationError("для вакансии не назначен тест")
	}
	assessment, err := i.assessmentStore.GetByID(vacancy.CompanyID, *vacancy.AssessmentID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения теста")
	}
	if assessment == nil {
		return nil, apimodels.NewNotFoundError("тест не найден")
	}
	return assessment, nil
}

func (i impl) toView(rec dbmodels.Application, result *dbmodels.AssessmentResult, forStaff bool) applicationapimodels.ApplicationView {
	view := applicationapimodels.Convert(rec)
	if forStaff {
		for _, target := range recruitment.AllowedTargets(rec) {
			view.AllowedTargets = append(view.AllowedTargets, applicationapimodels.ConvertStatus(target))
		}
	}
	if result != nil {
		view.Assessment = applicationapimodels.ConvertResult(*result, forStaff)
	}
	return view
}

func (i impl) toViews(list []dbmodels.Application, forStaff bool) ([]applicationapimodels.ApplicationView, error) {
	ids := make([]string, 0, len(list))
	for _, rec := range list {
		ids = append(ids, rec.ID)
	}
	results, err := i.resultStore.GetByApplications(ids)
	if err != nil {
		log.WithError(err).Error("ошибка получения результатов тестов")
		return nil, errors.New("ошибка получения результатов тестов")
	}
	views := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		var result *dbmodels.AssessmentResult
		if item, ok := results[rec.ID]; ok {
			result = &item
		}
		views = append(views, i.toView(rec, result, forStaff))
	}
	return views, nil
}

func (i impl) getLogger(companyID, applicationID, userID string) *log.Entry {
	return log.WithField("company_id", companyID).
		WithField("application_id", applicationID).
		WithField("user_id", userID)
}

// checkTestStage заявка находится на незавершенном этапе психологического тестирования
func checkTestStage(rec dbmodels.Application) error {
	current, ok := rec.CurrentStage()
	if rec.Status != models.StatusPsychologicalTest || !ok || current.Status.IsClosed() {
		return apimodels.NewValidationError("тест доступен только на этапе психологического тестирования")
	}
	return nil
}

// checkEssays свободные ответы даются только на вопросы со свободным ответом
func checkEssays(assessment dbmodels.Assessment, essays map[string]string) error {
	questionTypes := make(map[string]models.QuestionType, len(assessment.Questions))
	for _, question := range assessment.Questions {
		questionTypes[question.ID] = question.QuestionType
	}
	for questionID := range essays {
		questionType, ok := questionTypes[questionID]
		if !ok {
			return errors.Wrapf(assessmentscoring.ErrUnknownQuestion, "вопрос %v", questionID)
		}
		if questionType != models.QuestionEssay {
			return errors.Wrapf(assessmentscoring.ErrUnknownChoice, "вопрос %v не предполагает свободного ответа", questionID)
		}
	}
	return nil
}

func stageResult(passed bool) models.StageStatus {
	if passed {
		return models.StageCompleted
	}
	return models.StageFailed
}

func answerSheet(score assessmentscoring.Result, request applicationapimodels.SubmitAnswersRequest) dbmodels.AnswerSheet {
	sheet := dbmodels.AnswerSheet{
		Choices:      request.Answers,
		Essays:       request.Essays,
		Correctness:  make([]dbmodels.AnswerCheck, 0, len(score.Questions)),
		ManualReview: score.ManualReview,
	}
	for _, question := range score.Questions {
		sheet.Correctness = append(sheet.Correctness, dbmodels.AnswerCheck{
			QuestionID: question.QuestionID,
			Correct:    question.Correct,
		})
	}
	return sheet
}

func reportData(rec dbmodels.Application, assessment dbmodels.Assessment, result dbmodels.AssessmentResult, defaultPassingScore float64) models.AssessmentReportData {
	data := models.AssessmentReportData{
		AssessmentTitle: assessment.Title,
		TestType:        assessment.TestType,
		SubmittedAt:     result.SubmittedAt,
		Correct:         result.Correct,
		Total:           result.Total,
		Score:           result.Score,
		PassingScore:    assessment.GetPassingScore(defaultPassingScore),
		Passed:          result.Passed,
	}
	if rec.Candidate != nil {
		data.CandidateName = rec.Candidate.GetFullName()
		data.CandidateEmail = rec.Candidate.Email
	}
	if rec.Vacancy != nil {
		data.VacancyTitle = rec.Vacancy.Title
		if rec.Vacancy.Company != nil {
			data.CompanyName = rec.Vacancy.Company.Name
		}
	}
	correct := make(map[string]bool, len(result.Answers.Correctness))
	for _, check := range result.Answers.Correctness {
		correct[check.QuestionID] = check.Correct
	}
	for _, question := range assessment.Sorted().Questions {
		item := models.AssessmentReportQuestion{
			Text:         question.QuestionText,
			QuestionType: question.QuestionType,
			Correct:      correct[question.ID],
		}
		if question.QuestionType == models.QuestionEssay {
			item.Answer = result.Answers.Essays[question.ID]
		} else {
			item.Answer = question.ChoiceText(result.Answers.Choices[question.ID])
		}
		data.Questions = append(data.Questions, item)
	}
	return data
}
