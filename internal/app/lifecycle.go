package app

import (
	"fyne.io/fyne/v2"

	"workout-logger/internal/logger"
	"workout-logger/internal/services"
	"workout-logger/internal/shutdown"
)

// Lifecycle owns the shutdown sequence: the workout service gets a last
// chance to write a pending snapshot before the process exits.
type Lifecycle struct {
	manager *shutdown.Manager
	fyneApp fyne.App
	logger  logger.Logger
}

func NewLifecycle(fyneApp fyne.App, service *services.WorkoutService, log logger.Logger) *Lifecycle {
	manager := shutdown.NewManager(log)
	manager.Register("workout service", service)

	return &Lifecycle{
		manager: manager,
		fyneApp: fyneApp,
		logger:  log.With("Lifecycle"),
	}
}

// Listen handles SIGINT/SIGTERM by shutting down and quitting the UI loop.
func (l *Lifecycle) Listen() {
	l.manager.Listen(func() {
		fyne.Do(func() {
			l.fyneApp.Quit()
		})
	})
}

// Shutdown is safe to call more than once.
func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
