package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"workout-logger/internal/models"
)

// WorkoutForm is the entry form: exercise name, reps and weight plus the
// "Add Workout" button. It keeps no state of its own beyond the widgets.
type WorkoutForm struct {
	container    *fyne.Container
	entries      map[models.Field]*widget.Entry
	errorLabels  map[models.Field]*widget.Label
	submitButton *widget.Button

	fieldChangeHandler func(models.Field, string)
	submitHandler      func()
	updating           bool
}

// NewWorkoutForm creates the form component
func NewWorkoutForm() *WorkoutForm {
	wf := &WorkoutForm{
		entries:     make(map[models.Field]*widget.Entry),
		errorLabels: make(map[models.Field]*widget.Label),
	}
	wf.createComponents()
	wf.buildLayout()
	return wf
}

func (wf *WorkoutForm) createComponents() {
	placeholders := map[models.Field]string{
		models.FieldExercise: "Exercise name",
		models.FieldReps:     "Reps",
		models.FieldWeight:   "Weight (lbs)",
	}

	for _, field := range models.Fields {
		field := field // per-iteration copy; go directive is < 1.22
		entry := widget.NewEntry()
		entry.SetPlaceHolder(placeholders[field])
		entry.OnChanged = func(text string) {
			wf.onFieldChanged(field, text)
		}
		entry.OnSubmitted = func(string) {
			wf.onSubmit()
		}
		wf.entries[field] = entry

		errLabel := widget.NewLabel("")
		errLabel.Importance = widget.DangerImportance
		errLabel.Hide()
		wf.errorLabels[field] = errLabel
	}

	// Hints only; the controller has the final say on submit.
	wf.entries[models.FieldReps].Validator = validation.NewRegexp(`^\s*\d+\s*$`, "whole number")
	wf.entries[models.FieldWeight].Validator = validation.NewRegexp(`^\s*\d*\.?\d+\s*$`, "number")

	wf.submitButton = widget.NewButtonWithIcon("Add Workout", theme.ContentAddIcon(), wf.onSubmit)
	wf.submitButton.Importance = widget.HighImportance
}

func (wf *WorkoutForm) buildLayout() {
	heading := widget.NewLabelWithStyle("Log Your Workout", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	fields := container.NewVBox()
	for _, field := range models.Fields {
		fields.Add(wf.entries[field])
		fields.Add(wf.errorLabels[field])
	}

	wf.container = container.NewVBox(
		heading,
		fields,
		wf.submitButton,
	)
}

func (wf *WorkoutForm) onFieldChanged(field models.Field, text string) {
	if wf.updating || wf.fieldChangeHandler == nil {
		return
	}
	wf.fieldChangeHandler(field, text)
}

func (wf *WorkoutForm) onSubmit() {
	if wf.submitHandler != nil {
		wf.submitHandler()
	}
}

// SetFieldChangeHandler sets the handler called on every keystroke
func (wf *WorkoutForm) SetFieldChangeHandler(handler func(models.Field, string)) {
	wf.fieldChangeHandler = handler
}

// SetSubmitHandler sets the handler for the add button and Enter key
func (wf *WorkoutForm) SetSubmitHandler(handler func()) {
	wf.submitHandler = handler
}

// SetDraft writes draft values into the inputs without echoing them back
// through the change handler.
func (wf *WorkoutForm) SetDraft(draft models.Draft) {
	wf.updating = true
	defer func() { wf.updating = false }()

	for _, field := range models.Fields {
		entry := wf.entries[field]
		if entry.Text != draft.Get(field) {
			entry.SetText(draft.Get(field))
		}
	}
}

// ShowErrors shows the message under each failing field and hides the rest.
func (wf *WorkoutForm) ShowErrors(errs models.ValidationErrors) {
	for _, field := range models.Fields {
		label := wf.errorLabels[field]
		msg := errs.For(field)
		label.SetText(msg)
		if msg == "" {
			label.Hide()
		} else {
			label.Show()
		}
	}
}

// FieldError returns the message currently shown under a field.
func (wf *WorkoutForm) FieldError(field models.Field) string {
	label := wf.errorLabels[field]
	if !label.Visible() {
		return ""
	}
	return label.Text
}

// Entry returns the input widget for a field
func (wf *WorkoutForm) Entry(field models.Field) *widget.Entry {
	return wf.entries[field]
}

// SubmitButton returns the add button
func (wf *WorkoutForm) SubmitButton() *widget.Button {
	return wf.submitButton
}

// FocusFirst returns the widget that should receive focus when the window opens.
func (wf *WorkoutForm) FocusFirst() fyne.Focusable {
	return wf.entries[models.FieldExercise]
}

// GetContainer returns the form container
func (wf *WorkoutForm) GetContainer() *fyne.Container {
	return wf.container
}
