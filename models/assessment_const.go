package models

type TestType string

const (
	TestTypePsychological TestType = "psychological"
	TestTypeCognitive     TestType = "cognitive"
	TestTypePersonality   TestType = "personality"
	TestTypeTechnical     TestType = "technical"
)

var testTypeHumanName = map[TestType]string{
	TestTypePsychological: "Психологический тест",
	TestTypeCognitive:     "Тест когнитивных способностей",
	TestTypePersonality:   "Личностный опросник",
	TestTypeTechnical:     "Технический тест",
}

func (t TestType) IsValid() bool {
	_, ok := testTypeHumanName[t]
	return ok
}

func (t TestType) ToHuman() string {
	if human, exist := testTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionEssay          QuestionType = "essay"
)

func (q QuestionType) IsValid() bool {
	return q == QuestionMultipleChoice || q == QuestionEssay
}

// DefaultPassingScore доля правильных ответов для автоматического прохождения теста
const DefaultPassingScore = 0.6

type VacancyStatus string

const (
	VacancyStatusOpen   VacancyStatus = "open"
	VacancyStatusClosed VacancyStatus = "closed"
)

var vacancyStatusHumanName = map[VacancyStatus]string{
	VacancyStatusOpen:   "Открыта",
	VacancyStatusClosed: "Закрыта",
}

func (s VacancyStatus) IsValid() bool {
	_, ok := vacancyStatusHumanName[s]
	return ok
}

func (s VacancyStatus) ToHuman() string {
	if human, exist := vacancyStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
