package service

import (
	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-climate-intel/internal/adapter"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/store"
)

type ClientServices struct {
	Sessions   SessionStore
	Auth       AuthFlowController
	Climate    ClimateFetcher
	Chat       ChatRelay
	RefreshJob ClientRefreshJob
	Adapter    adapter.ServerAdapter
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	sessions := NewSessionStore(storages.SessionRepository, serverAdapter, logger)
	climate := NewClimateFetcher(serverAdapter, logger)

	return &ClientServices{
		Sessions:   sessions,
		Auth:       NewAuthFlowController(serverAdapter, sessions, logger),
		Climate:    climate,
		Chat:       NewChatRelay(serverAdapter, logger),
		RefreshJob: NewClientRefreshJob(climate, clockwork.NewRealClock(), logger),
		Adapter:    serverAdapter,
	}
}
