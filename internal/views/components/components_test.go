package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-logger/internal/models"
)

func TestWorkoutForm_ForwardsTypingAndSubmit(t *testing.T) {
	test.NewTempApp(t)
	form := NewWorkoutForm()

	typed := models.Draft{}
	submits := 0
	form.SetFieldChangeHandler(func(f models.Field, text string) { typed.Set(f, text) })
	form.SetSubmitHandler(func() { submits++ })

	test.Type(form.Entry(models.FieldExercise), "Squat")
	test.Type(form.Entry(models.FieldReps), "5")
	test.Type(form.Entry(models.FieldWeight), "225")
	test.Tap(form.SubmitButton())

	assert.Equal(t, models.Draft{Exercise: "Squat", Reps: "5", Weight: "225"}, typed)
	assert.Equal(t, 1, submits)
	assert.Equal(t, "Exercise name", form.Entry(models.FieldExercise).PlaceHolder)
	assert.Equal(t, "Weight (lbs)", form.Entry(models.FieldWeight).PlaceHolder)
}

func TestWorkoutForm_SetDraftDoesNotEcho(t *testing.T) {
	test.NewTempApp(t)
	form := NewWorkoutForm()

	calls := 0
	form.SetFieldChangeHandler(func(models.Field, string) { calls++ })

	form.SetDraft(models.Draft{Exercise: "Row", Reps: "8", Weight: "95"})
	assert.Equal(t, "Row", form.Entry(models.FieldExercise).Text)
	form.SetDraft(models.Draft{})
	assert.Empty(t, form.Entry(models.FieldReps).Text)
	assert.Zero(t, calls)
}

func TestWorkoutForm_ShowErrors(t *testing.T) {
	test.NewTempApp(t)
	form := NewWorkoutForm()

	form.ShowErrors(models.ValidationErrors{{Field: models.FieldReps, Message: "reps are required"}})
	assert.Equal(t, "reps are required", form.FieldError(models.FieldReps))
	assert.Empty(t, form.FieldError(models.FieldExercise))

	form.ShowErrors(nil)
	assert.Empty(t, form.FieldError(models.FieldReps))
}

func TestWorkoutList_Update(t *testing.T) {
	test.NewTempApp(t)
	list := NewWorkoutList()

	assert.False(t, list.TotalLabel().Visible())
	assert.False(t, list.ClearButton().Visible())

	var deleted []int
	clears := 0
	list.SetDeleteHandler(func(i int) { deleted = append(deleted, i) })
	list.SetClearAllHandler(func() { clears++ })

	list.Update(models.Summarize([]models.Entry{
		{Exercise: "Bench Press", Reps: 10, Weight: 135},
		{Exercise: "Squat", Reps: 5, Weight: 225},
	}))

	require.Equal(t, 2, list.RowCount())
	assert.Equal(t, "Squat — 5 reps @ 225 lbs", list.RowText(1))
	assert.True(t, list.TotalLabel().Visible())
	assert.Equal(t, "Total Volume: 2475 lbs", list.TotalLabel().Text)
	assert.True(t, list.ClearButton().Visible())

	test.Tap(list.DeleteButton(1))
	test.Tap(list.ClearButton())
	assert.Equal(t, []int{1}, deleted)
	assert.Equal(t, 1, clears)

	list.Update(models.Summarize(nil))
	assert.Zero(t, list.RowCount())
	assert.False(t, list.TotalLabel().Visible())
	assert.False(t, list.ClearButton().Visible())
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)
	sb := NewStatusBar()

	assert.Equal(t, "Ready", sb.GetStatus())
	assert.Empty(t, sb.GetWarning())

	sb.SetStatus("Added Squat")
	sb.SetWarning("Could not save workouts")
	assert.Equal(t, "Added Squat", sb.GetStatus())
	assert.Equal(t, "Could not save workouts", sb.GetWarning())

	sb.Reset()
	assert.Equal(t, "Ready", sb.GetStatus())
	assert.Empty(t, sb.GetWarning())
}
