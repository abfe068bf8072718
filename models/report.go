package models

import "time"

// AssessmentReportData данные для формирования отчета по результатам теста
type AssessmentReportData struct {
	CandidateName   string
	CandidateEmail  string
	VacancyTitle    string
	CompanyName     string
	AssessmentTitle string
	TestType        TestType
	SubmittedAt     time.Time
	Correct         int
	Total           int
	Score           float64
	PassingScore    float64
	Passed          *bool
	Questions       []AssessmentReportQuestion
}

type AssessmentReportQuestion struct {
	Text         string
	QuestionType QuestionType
	Correct      bool
	Answer       string
}
