package app

import (
	"fmt"

	"fyne.io/fyne/v2"

	"workout-logger/internal/config"
	"workout-logger/internal/controllers"
	"workout-logger/internal/logger"
	"workout-logger/internal/services"
	"workout-logger/internal/storage"
	"workout-logger/internal/views"
)

// Application wires the store, service, controller and view into one window.
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	logger     logger.Logger
	store      storage.Store
	service    *services.WorkoutService
	controller *controllers.FormController
	view       *views.MainView
	lifecycle  *Lifecycle
}

// NewApplication builds the application on top of an existing fyne app and
// loads the stored workout log.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	appLogger := log.With("Application")

	store, err := storage.Open(cfg.Store, cfg.DataDir, fyneApp.Preferences())
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}

	window := fyneApp.NewWindow(config.AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	service := services.NewWorkoutService(store, cfg.StorageKey, log)
	controller := controllers.NewFormController(service, log)
	view := views.NewMainView(window)
	controller.SetView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     appLogger,
		store:      store,
		service:    service,
		controller: controller,
		view:       view,
	}
	application.lifecycle = NewLifecycle(fyneApp, service, log)

	application.setupHandlers()
	controller.Start()

	appLogger.Info("initialization complete", map[string]interface{}{
		"store":   cfg.Store,
		"key":     cfg.StorageKey,
		"entries": service.Len(),
		"state":   controller.State().String(),
	})
	return application, nil
}

func (a *Application) setupHandlers() {
	a.view.SetFieldChangeHandler(a.controller.UpdateField)
	a.view.SetSubmitHandler(a.handleSubmit)
	a.view.SetDeleteHandler(a.controller.DeleteAt)
	a.view.SetClearAllHandler(a.controller.ClearAll)
	a.view.SetupMenus(a.controller.ClearAll, a.Quit)
}

func (a *Application) handleSubmit() {
	if a.controller.Submit() {
		a.view.Focus()
	}
}

// Run shows the window and blocks until the UI loop exits.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("window close requested", nil)
		a.Quit()
	})

	a.lifecycle.Listen()

	a.view.Show()
	a.view.Focus()
	a.logger.Info("GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

// Quit flushes state and closes the window, ending Run.
func (a *Application) Quit() {
	a.lifecycle.Shutdown()
	a.window.Close()
}

func (a *Application) Controller() *controllers.FormController {
	return a.controller
}

func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) Service() *services.WorkoutService {
	return a.service
}
