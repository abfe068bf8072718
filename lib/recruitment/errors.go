package recruitment

import "github.com/pkg/errors"

var (
	// ErrInvalidTransition изменение заявки, по которой уже принято решение, либо переход,
	// не допустимый в текущем состоянии
	ErrInvalidTransition = errors.New("недопустимый переход заявки")
	// ErrOutOfOrderTransition пропуск этапа или возврат на предыдущий
	ErrOutOfOrderTransition = errors.New("нарушен порядок этапов подбора")
	// ErrInvalidSubStatusTransition недопустимая смена статуса этапа
	ErrInvalidSubStatusTransition = errors.New("недопустимая смена статуса этапа")
)

// IsValidationError ошибка проверки перехода, которую следует показать пользователю
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrOutOfOrderTransition) ||
		errors.Is(err, ErrInvalidSubStatusTransition)
}
