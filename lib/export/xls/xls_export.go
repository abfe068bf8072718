package xlsexport

import (
	"bytes"
	"fmt"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.Application, results map[string]dbmodels.AssessmentResult) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"ФИО", "Почта", "Телефон", "Вакансия", "Дата отклика", "Статус", "Текущий этап", "Статус этапа", "Балл теста", "Дата решения"}

func (i impl) ExportApplicationList(list []dbmodels.Application, results map[string]dbmodels.AssessmentResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeApplicationData(f, sheet, list, results, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, "Заявки"); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.Application, results map[string]dbmodels.AssessmentResult, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := make([]interface{}, 0, len(applicationHeaders))
		if item.Candidate != nil {
			values = append(values, item.Candidate.GetFullName(), item.Candidate.Email, item.Candidate.Phone)
		} else {
			values = append(values, "", "", "")
		}
		if item.Vacancy != nil {
			values = append(values, item.Vacancy.Title)
		} else {
			values = append(values, "")
		}
		values = append(values, item.CreatedAt.Format("02.01.2006"), item.Status.ToHuman())

		if current, ok := item.CurrentStage(); ok {
			values = append(values, current.Stage.ToHuman(), current.Status.ToHuman())
		} else {
			values = append(values, "", "")
		}

		if result, ok := results[item.ID]; ok {
			values = append(values, fmt.Sprintf("%.0f%%", result.Score*100))
		} else {
			values = append(values, "")
		}

		if item.DecidedAt != nil {
			values = append(values, item.DecidedAt.Format("02.01.2006"))
		} else {
			values = append(values, "")
		}

		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
