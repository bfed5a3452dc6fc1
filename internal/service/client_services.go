package service

import (
	"github.com/avdeev/go-coursebook/internal/adapter"
	"github.com/avdeev/go-coursebook/internal/config"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/store"
)

type ClientServices struct {
	SessionService SessionService
	CourseService  CourseClientService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientSession, logger *logger.Logger) *ClientServices {
	sessionSvc := NewSessionService(storages.SessionRepository, serverAdapter, cfg, logger)

	return &ClientServices{
		SessionService: sessionSvc,
		CourseService:  NewCourseClientService(serverAdapter, logger),
	}
}
