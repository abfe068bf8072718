package models

import "github.com/pkg/errors"

// StageStatus ход прохождения одного этапа подбора
type StageStatus string

const (
	StageScheduled  StageStatus = "scheduled"
	StageInProgress StageStatus = "in_progress"
	StageCompleted  StageStatus = "completed"
	StageFailed     StageStatus = "failed"
)

var stageStatusHumanName = map[StageStatus]string{
	StageScheduled:  "Scheduled",
	StageInProgress: "In Progress",
	StageCompleted:  "Completed",
	StageFailed:     "Failed",
}

// допустимые переходы внутри этапа
var stageStatusTransitions = map[StageStatus][]StageStatus{
	StageScheduled:  {StageInProgress, StageFailed},
	StageInProgress: {StageCompleted, StageFailed},
}

func ParseStageStatus(value string) (StageStatus, error) {
	status := StageStatus(value)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s StageStatus) Validate() error {
	if _, ok := stageStatusHumanName[s]; !ok {
		return errors.Errorf("неизвестный статус этапа (%v)", string(s))
	}
	return nil
}

func (s StageStatus) ToHuman() string {
	if human, exist := stageStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsClosed этап завершен (успешно или нет), статус больше не меняется
func (s StageStatus) IsClosed() bool {
	return s == StageCompleted || s == StageFailed
}

// IsInitial статус, с которым допускается вход на этап
func (s StageStatus) IsInitial() bool {
	return s == StageScheduled || s == StageInProgress
}

func (s StageStatus) CanTransitTo(next StageStatus) bool {
	for _, allowed := range stageStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
