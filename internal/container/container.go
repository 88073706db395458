package container

import (
	app "ai-diagnostics/internal/application"
	"ai-diagnostics/internal/domain/port"
)

type Container struct {
	SessionService     *app.SessionService
	DiagnosticsService *app.DiagnosticsService
	Decoder            port.ImageDecoder
}

func New(sessionRepo port.SessionRepository, catalog port.FindingsCatalog, decoder port.ImageDecoder, simulator *app.Simulator) *Container {
	return &Container{
		SessionService:     app.NewSessionService(sessionRepo),
		DiagnosticsService: app.NewDiagnosticsService(catalog, simulator),
		Decoder:            decoder,
	}
}
