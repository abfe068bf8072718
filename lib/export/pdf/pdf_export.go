package pdfexport

import (
	"bytes"
	"fmt"
	"recruitment-backend/models"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	reportFont     = "DejaVu"
	reportFontFile = "DejaVuSans.ttf"
	reportBoldFile = "DejaVuSans-Bold.ttf"
	coreFont       = "Helvetica"
)

// AssessmentReport отчет по результатам теста кандидата.
// Кириллица выводится только при заданном fontDir с TTF шрифтами DejaVu,
// без него используется встроенный шрифт.
func AssessmentReport(fontDir string, data models.AssessmentReportData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("AssessmentReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", fontDir)
	family := coreFont
	tr := func(s string) string { return s }
	if fontDir != "" {
		pdf.AddUTF8Font(reportFont, "", reportFontFile)
		pdf.AddUTF8Font(reportFont, "B", reportBoldFile)
		family = reportFont
	} else {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.SetTitle(tr(data.AssessmentTitle), fontDir != "")
	pdf.AddPage()
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.SetFont(family, "B", 16)
	pdf.MultiCell(0, 10, tr("Результаты тестирования"), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont(family, "", 12)
	_, lineHt := pdf.GetFontSize()
	lineHt += 2
	writeLine := func(label, value string) {
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(55, lineHt, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont(family, "", 12)
		pdf.MultiCell(0, lineHt, tr(value), "", "L", false)
	}
	writeLine("Кандидат:", data.CandidateName)
	writeLine("Почта:", data.CandidateEmail)
	writeLine("Вакансия:", data.VacancyTitle)
	writeLine("Компания:", data.CompanyName)
	writeLine("Тест:", fmt.Sprintf("%v (%v)", data.AssessmentTitle, data.TestType.ToHuman()))
	if !data.SubmittedAt.IsZero() {
		writeLine("Дата прохождения:", data.SubmittedAt.Format("02.01.2006 15:04"))
	}
	writeLine("Правильных ответов:", fmt.Sprintf("%v из %v", data.Correct, data.Total))
	writeLine("Балл:", fmt.Sprintf("%.0f%% (проходной %.0f%%)", data.Score*100, data.PassingScore*100))
	writeLine("Итог:", resultName(data.Passed))
	pdf.Ln(4)

	if len(data.Questions) != 0 {
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(10, lineHt, "#", "1", 0, "C", false, 0, "")
		pdf.CellFormat(120, lineHt, tr("Вопрос"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, lineHt, tr("Результат"), "1", 1, "L", false, 0, "")
		pdf.SetFont(family, "", 11)
		for idx, question := range data.Questions {
			pdf.CellFormat(10, lineHt, fmt.Sprint(idx+1), "1", 0, "C", false, 0, "")
			pdf.CellFormat(120, lineHt, tr(cut(question.Text, 60)), "1", 0, "L", false, 0, "")
			pdf.CellFormat(0, lineHt, tr(questionResult(question)), "1", 1, "L", false, 0, "")
		}
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func resultName(passed *bool) string {
	switch {
	case passed == nil:
		return "ожидает проверки"
	case *passed:
		return "тест пройден"
	}
	return "тест не пройден"
}

func questionResult(question models.AssessmentReportQuestion) string {
	if question.QuestionType == models.QuestionEssay {
		return "свободный ответ"
	}
	if question.Answer == "" {
		return "нет ответа"
	}
	if question.Correct {
		return "верно"
	}
	return "неверно"
}

func cut(value string, size int) string {
	runes := []rune(value)
	if len(runes) > size {
		return string(runes[:size]) + "..."
	}
	return value
}
