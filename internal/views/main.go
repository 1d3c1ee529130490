package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"workout-logger/internal/models"
	"workout-logger/internal/views/components"
)

// ConfirmFunc shows a modal yes/no question and reports the answer.
type ConfirmFunc func(title, message string, callback func(bool), parent fyne.Window)

// MainView is the workout logger window content. It satisfies
// controllers.View.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	form          *components.WorkoutForm
	list          *components.WorkoutList
	statusBar     *components.StatusBar

	confirm ConfirmFunc

	fieldChangeHandler func(models.Field, string)
	submitHandler      func()
	deleteHandler      func(int)
	clearAllHandler    func()
}

// NewMainView creates the view and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window:  window,
		confirm: dialog.ShowConfirm,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.form = components.NewWorkoutForm()
	mv.list = components.NewWorkoutList()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		container.NewVBox(mv.form.GetContainer(), widget.NewSeparator()),
		container.NewVBox(widget.NewSeparator(), mv.statusBar.GetContainer()),
		nil,
		nil,
		mv.list.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects component events to the handlers the
// controller installs
func (mv *MainView) setupEventHandlers() {
	mv.form.SetFieldChangeHandler(func(field models.Field, text string) {
		if mv.fieldChangeHandler != nil {
			mv.fieldChangeHandler(field, text)
		}
	})

	mv.form.SetSubmitHandler(func() {
		if mv.submitHandler != nil {
			mv.submitHandler()
		}
	})

	mv.list.SetDeleteHandler(func(index int) {
		if mv.deleteHandler != nil {
			mv.deleteHandler(index)
		}
	})

	mv.list.SetClearAllHandler(func() {
		if mv.clearAllHandler != nil {
			mv.clearAllHandler()
		}
	})
}

// Event handler setters - called by the application wiring

func (mv *MainView) SetFieldChangeHandler(handler func(models.Field, string)) {
	mv.fieldChangeHandler = handler
}

func (mv *MainView) SetSubmitHandler(handler func()) {
	mv.submitHandler = handler
}

func (mv *MainView) SetDeleteHandler(handler func(int)) {
	mv.deleteHandler = handler
}

func (mv *MainView) SetClearAllHandler(handler func()) {
	mv.clearAllHandler = handler
}

// SetConfirmFunc replaces the confirmation dialog, e.g. in tests.
func (mv *MainView) SetConfirmFunc(confirm ConfirmFunc) {
	mv.confirm = confirm
}

// UI update methods - called by the controller on the UI goroutine

// Render redraws the total, the clear-all button and the rows
func (mv *MainView) Render(summary models.Summary) {
	mv.list.Update(summary)
}

// SetDraft writes draft values into the form inputs
func (mv *MainView) SetDraft(draft models.Draft) {
	mv.form.SetDraft(draft)
}

// ShowFieldErrors shows validation messages under the failing inputs
func (mv *MainView) ShowFieldErrors(errs models.ValidationErrors) {
	mv.form.ShowErrors(errs)
}

// ShowStatus updates the status bar message and clears any warning
func (mv *MainView) ShowStatus(message string) {
	mv.statusBar.SetStatus(message)
	mv.statusBar.SetWarning("")
}

// ShowWarning displays a non-blocking warning in the status bar
func (mv *MainView) ShowWarning(message string) {
	mv.statusBar.SetWarning(message)
}

// Confirm displays a modal confirmation dialog
func (mv *MainView) Confirm(title, message string, callback func(bool)) {
	mv.confirm(title, message, callback, mv.window)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// Focus puts the cursor in the exercise name field
func (mv *MainView) Focus() {
	if c := mv.window.Canvas(); c != nil {
		c.Focus(mv.form.FocusFirst())
	}
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}

// Close closes the view
func (mv *MainView) Close() {
	mv.window.Close()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Form returns the entry form component
func (mv *MainView) Form() *components.WorkoutForm {
	return mv.form
}

// List returns the workout list component
func (mv *MainView) List() *components.WorkoutList {
	return mv.list
}

// StatusBar returns the status bar component
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}
