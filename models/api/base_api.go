package apimodels

const (
	StatusSuccess = "success"
	StatusFail    = "fail"

	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Response общий конверт ответа api
type Response struct {
	Status  string      `json:"status"`            // success или fail
	Message string      `json:"message,omitempty"` // текст ошибки для пользователя
	Data    interface{} `json:"data,omitempty"`
}

// ScrollerResponse ответ со страницей списка
type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` // всего записей с учетом фильтра
}

func NewError(message string) Response {
	return Response{
		Status:  StatusFail,
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: NewResponse(data),
		RowCount: rowCount,
	}
}

// Pagination страница списка, встраивается в фильтры
type Pagination struct {
	Limit int `json:"limit"` // записей на странице, не больше MaxPageLimit
	Page  int `json:"page"`  // номер страницы с 1
}

func (r Pagination) Validate() error {
	if r.Page < 0 {
		return NewValidationError("номер страницы не может быть отрицательным")
	}
	if r.Limit < 0 {
		return NewValidationError("размер страницы не может быть отрицательным")
	}
	return nil
}

// GetPage номер и размер страницы с учетом значений по умолчанию
func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = DefaultPageLimit
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

func (r Pagination) Offset() int {
	page, limit := r.GetPage()
	return (page - 1) * limit
}

// PastEnd страница начинается за последней записью, запрос списка не нужен
func (r Pagination) PastEnd(rowCount int64) bool {
	return int64(r.Offset()) > rowCount
}
