package models

import "github.com/pkg/errors"

// ApplicationStatus текущее состояние заявки кандидата.
// Значения делятся на два семейства: этапы подбора (имеют порядковый номер)
// и итоги (Pending, Accepted, Rejected).
type ApplicationStatus string

const (
	StatusAdministrativeSelection ApplicationStatus = "administrative_selection"
	StatusPsychologicalTest       ApplicationStatus = "psychological_test"
	StatusInterview               ApplicationStatus = "interview"
	StatusPending                 ApplicationStatus = "pending"
	StatusAccepted                ApplicationStatus = "accepted"
	StatusRejected                ApplicationStatus = "rejected"
)

type StatusKind string

const (
	StageKind   StatusKind = "stage"
	OutcomeKind StatusKind = "outcome"
)

// порядок этапов подбора, единственный источник для Order/Stages/StageByOrder
var stageOrder = map[ApplicationStatus]int{
	StatusAdministrativeSelection: 1,
	StatusPsychologicalTest:       2,
	StatusInterview:               3,
}

var applicationStatusHumanName = map[ApplicationStatus]string{
	StatusAdministrativeSelection: "Administrative Selection",
	StatusPsychologicalTest:       "Psychological Test",
	StatusInterview:               "Interview",
	StatusPending:                 "Pending",
	StatusAccepted:                "Accepted",
	StatusRejected:                "Rejected",
}

func ParseApplicationStatus(value string) (ApplicationStatus, error) {
	status := ApplicationStatus(value)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s ApplicationStatus) Validate() error {
	if _, ok := applicationStatusHumanName[s]; !ok {
		return errors.Errorf("неизвестный статус заявки (%v)", string(s))
	}
	return nil
}

// Kind семейство значения. Для неизвестного значения возвращает пустую строку.
func (s ApplicationStatus) Kind() StatusKind {
	switch s {
	case StatusAdministrativeSelection, StatusPsychologicalTest, StatusInterview:
		return StageKind
	case StatusPending, StatusAccepted, StatusRejected:
		return OutcomeKind
	}
	return ""
}

func (s ApplicationStatus) IsStage() bool {
	return s.Kind() == StageKind
}

func (s ApplicationStatus) IsOutcome() bool {
	return s.Kind() == OutcomeKind
}

// IsFinal решение по заявке принято, дальнейшие изменения запрещены
func (s ApplicationStatus) IsFinal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Order порядковый номер этапа подбора, для итоговых статусов ok = false
func (s ApplicationStatus) Order() (order int, ok bool) {
	order, ok = stageOrder[s]
	return order, ok
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// Stages этапы подбора в порядке прохождения
func Stages() []ApplicationStatus {
	result := make([]ApplicationStatus, len(stageOrder))
	for stage, order := range stageOrder {
		result[order-1] = stage
	}
	return result
}

func StageByOrder(order int) (ApplicationStatus, bool) {
	for stage, stageNum := range stageOrder {
		if stageNum == order {
			return stage, true
		}
	}
	return "", false
}

// FirstStage этап, с которого начинается подбор
func FirstStage() ApplicationStatus {
	stage, _ := StageByOrder(1)
	return stage
}

// LastStage завершающий этап подбора, после него возможно только решение по заявке
func LastStage() ApplicationStatus {
	stage, _ := StageByOrder(len(stageOrder))
	return stage
}
