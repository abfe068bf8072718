package dbmodels

import (
	"github.com/pkg/errors"
)

type Company struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex"`
	Description string
	Website     string `gorm:"type:varchar(255)"`
}

func (c Company) Validate() error {
	if c.Name == "" {
		return errors.New("не указано название компании")
	}
	return nil
}
