package views

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-logger/internal/controllers"
	"workout-logger/internal/logger"
	"workout-logger/internal/models"
	"workout-logger/internal/services"
	"workout-logger/internal/storage"
)

var _ controllers.View = (*MainView)(nil)

type harness struct {
	view    *MainView
	ctrl    *controllers.FormController
	store   *storage.PreferencesStore
	answer  bool
	prompts []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("Workout Logger")
	t.Cleanup(w.Close)

	h := &harness{store: storage.NewPreferencesStore(a.Preferences())}
	svc := services.NewWorkoutService(h.store, services.DefaultStorageKey, logger.NopLogger{})

	h.view = NewMainView(w)
	h.view.SetConfirmFunc(func(title, message string, callback func(bool), _ fyne.Window) {
		h.prompts = append(h.prompts, message)
		callback(h.answer)
	})

	h.ctrl = controllers.NewFormController(svc, logger.NopLogger{})
	h.ctrl.SetView(h.view)
	h.view.SetFieldChangeHandler(h.ctrl.UpdateField)
	h.view.SetSubmitHandler(func() { h.ctrl.Submit() })
	h.view.SetDeleteHandler(h.ctrl.DeleteAt)
	h.view.SetClearAllHandler(h.ctrl.ClearAll)
	h.ctrl.Start()
	return h
}

func (h *harness) add(exercise, reps, weight string) {
	form := h.view.Form()
	test.Type(form.Entry(models.FieldExercise), exercise)
	test.Type(form.Entry(models.FieldReps), reps)
	test.Type(form.Entry(models.FieldWeight), weight)
	test.Tap(form.SubmitButton())
}

func TestMainView_AddDeleteClear(t *testing.T) {
	h := newHarness(t)
	list := h.view.List()

	assert.False(t, list.TotalLabel().Visible())
	assert.False(t, list.ClearButton().Visible())

	h.add("Bench Press", "10", "135")
	h.add("Squat", "5", "225")

	require.Equal(t, 2, list.RowCount())
	assert.Equal(t, "Bench Press — 10 reps @ 135 lbs", list.RowText(0))
	assert.Equal(t, "Total Volume: 2475 lbs", list.TotalLabel().Text)
	assert.True(t, list.ClearButton().Visible())
	assert.Empty(t, h.view.Form().Entry(models.FieldExercise).Text, "form resets after submit")

	test.Tap(list.DeleteButton(0))
	require.Equal(t, 1, list.RowCount())
	assert.Equal(t, "Squat — 5 reps @ 225 lbs", list.RowText(0))
	assert.Equal(t, "Total Volume: 1125 lbs", list.TotalLabel().Text)

	h.answer = false
	test.Tap(list.ClearButton())
	assert.Equal(t, 1, list.RowCount())

	h.answer = true
	test.Tap(list.ClearButton())
	assert.Equal(t, []string{"Clear all workouts?", "Clear all workouts?"}, h.prompts)
	assert.Zero(t, list.RowCount())
	assert.False(t, list.TotalLabel().Visible())

	raw, ok, err := h.store.Get(services.DefaultStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestMainView_InvalidSubmitShowsErrors(t *testing.T) {
	h := newHarness(t)

	h.add("Deadlift", "0", "")

	assert.Zero(t, h.view.List().RowCount())
	form := h.view.Form()
	assert.Empty(t, form.FieldError(models.FieldExercise))
	assert.NotEmpty(t, form.FieldError(models.FieldReps))
	assert.NotEmpty(t, form.FieldError(models.FieldWeight))
	assert.Equal(t, "Deadlift", form.Entry(models.FieldExercise).Text)
}

func TestMainView_StatusAndWarning(t *testing.T) {
	h := newHarness(t)

	h.view.ShowWarning("Could not save workouts")
	assert.Equal(t, "Could not save workouts", h.view.StatusBar().GetWarning())

	h.view.ShowStatus("Added Squat")
	assert.Equal(t, "Added Squat", h.view.StatusBar().GetStatus())
	assert.Empty(t, h.view.StatusBar().GetWarning())
}
