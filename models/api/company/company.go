package companyapimodels

import (
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type CompanyData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

func (c CompanyData) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("не указано название компании")
	}
	return nil
}

type CompanyView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
}

func Convert(rec dbmodels.Company) CompanyView {
	return CompanyView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Website:     rec.Website,
		CreatedAt:   rec.CreatedAt,
	}
}

type CompanyFilter struct {
	apimodels.Pagination
	Search string `json:"search"`
}
