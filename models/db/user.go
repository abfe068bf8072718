package dbmodels

import (
	"fmt"
	"recruitment-backend/models"
	"strings"
)

type User struct {
	BaseModel
	Email     string          `gorm:"type:varchar(255);uniqueIndex"`
	Password  string          `gorm:"type:varchar(128)"`
	FirstName string          `gorm:"type:varchar(255)"`
	LastName  string          `gorm:"type:varchar(255)"`
	Phone     string          `gorm:"type:varchar(50)"`
	Role      models.UserRole `gorm:"type:varchar(50)"`
	CompanyID *string         `gorm:"type:varchar(36);index"`
	Company   *Company
	IsActive  bool `gorm:"default:true"`
}

func (u User) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v", u.FirstName, u.LastName))
}

func (u User) GetCompanyID() string {
	if u.CompanyID == nil {
		return ""
	}
	return *u.CompanyID
}
