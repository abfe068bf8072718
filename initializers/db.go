package initializers

import (
	"recruitment-backend/db"
)

func InitDBConnection() {
	if err := db.Connect(); err != nil {
		panic(err.Error())
	}

	db.InitPreload()
}
