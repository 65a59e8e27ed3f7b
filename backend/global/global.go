package global

import (
	"recipe-book/backend/config"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	Config *config.Config
	Logger = zerolog.Nop()
	Mdb    *gorm.DB
)
