package controllers

import (
	"errors"
	"fmt"

	"workout-logger/internal/logger"
	"workout-logger/internal/models"
	"workout-logger/internal/services"
)

// View is the rendering surface the controller drives.
type View interface {
	Render(summary models.Summary)
	SetDraft(draft models.Draft)
	ShowFieldErrors(errs models.ValidationErrors)
	ShowStatus(message string)
	ShowWarning(message string)
	// Confirm asks a yes/no question. The callback runs once with the answer.
	Confirm(title, message string, callback func(bool))
}

// FormController holds the draft being typed and turns form events into log
// mutations. It runs on the UI goroutine only.
type FormController struct {
	service *services.WorkoutService
	view    View
	logger  logger.Logger

	draft models.Draft
	state State
}

// State is the controller's lifecycle stage.
type State int

const (
	StateLoading State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "loading"
}

func NewFormController(service *services.WorkoutService, log logger.Logger) *FormController {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &FormController{
		service: service,
		logger:  log.With("FormController"),
	}
}

// SetView associates the view with this controller.
func (fc *FormController) SetView(view View) {
	fc.view = view
}

// Start loads the stored log and draws the first frame.
func (fc *FormController) Start() {
	fc.service.Load()
	fc.state = StateReady

	if backup := fc.service.RecoveredTo(); backup != "" {
		fc.warn(fmt.Sprintf("Saved workouts were unreadable and have been moved to %q", backup))
	} else {
		fc.status(fmt.Sprintf("Loaded %d workouts", fc.service.Len()))
	}
	fc.render()
}

func (fc *FormController) State() State {
	return fc.state
}

// Draft returns the current field values.
func (fc *FormController) Draft() models.Draft {
	return fc.draft
}

// UpdateField stores raw text for a field. Nothing is validated until Submit.
func (fc *FormController) UpdateField(field models.Field, raw string) {
	fc.draft.Set(field, raw)
}

// Submit validates the draft and, if it is complete, appends it to the log
// and clears the form. It reports whether an entry was added.
func (fc *FormController) Submit() bool {
	entry, err := models.ValidateDraft(fc.draft)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) && fc.view != nil {
			fc.view.ShowFieldErrors(verrs)
		}
		fc.logger.Debug("submit rejected", map[string]interface{}{"reason": err.Error()})
		return false
	}

	persistErr := fc.service.Add(entry)

	fc.draft = models.Draft{}
	if fc.view != nil {
		fc.view.ShowFieldErrors(nil)
		fc.view.SetDraft(fc.draft)
	}
	fc.render()

	if persistErr != nil {
		fc.warnPersist(persistErr)
	} else {
		fc.status(fmt.Sprintf("Added %s", entry.Exercise))
	}
	return true
}

// DeleteAt removes one row. Out-of-range indexes are ignored.
func (fc *FormController) DeleteAt(index int) {
	deleted, err := fc.service.DeleteAt(index)
	if !deleted {
		fc.logger.Debug("delete ignored", map[string]interface{}{"index": index})
		return
	}
	fc.render()

	if err != nil {
		fc.warnPersist(err)
	} else {
		fc.status("Workout deleted")
	}
}

// ClearAll asks for confirmation and empties the log if the user agrees.
func (fc *FormController) ClearAll() {
	if fc.view == nil {
		return
	}
	fc.view.Confirm("Clear Workouts", "Clear all workouts?", func(confirmed bool) {
		if !confirmed {
			fc.logger.Debug("clear all declined", nil)
			return
		}
		err := fc.service.Clear()
		fc.render()
		if err != nil {
			fc.warnPersist(err)
		} else {
			fc.status("All workouts cleared")
		}
	})
}

func (fc *FormController) render() {
	if fc.view == nil {
		return
	}
	fc.view.Render(fc.service.Summary())
}

func (fc *FormController) status(message string) {
	if fc.view != nil {
		fc.view.ShowStatus(message)
	}
}

func (fc *FormController) warn(message string) {
	if fc.view != nil {
		fc.view.ShowWarning(message)
	}
}

func (fc *FormController) warnPersist(err error) {
	fc.logger.Warning("change kept in memory only", map[string]interface{}{"error": err.Error()})
	fc.warn("Could not save workouts; changes are kept until the app closes")
}
