package service

import (
	"github.com/avdeev/go-coursebook/internal/config"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/store"
	"github.com/avdeev/go-coursebook/internal/validators"
)

type Services struct {
	UserService   UserService
	CourseService CourseService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	requestValidator := validators.NewRequestValidator()

	return &Services{
		UserService:   NewUserService(storages.UserRepository, requestValidator, cfg.App, logger),
		CourseService: NewCourseService(storages.CourseRepository, requestValidator, logger),
	}
}
