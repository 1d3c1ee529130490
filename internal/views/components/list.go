package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"workout-logger/internal/models"
)

// WorkoutList shows the total volume, the clear-all button and one row per
// logged entry. It is rebuilt from a Summary on every update.
type WorkoutList struct {
	container   *fyne.Container
	totalLabel  *widget.Label
	clearButton *widget.Button
	rows        *fyne.Container

	deleteButtons []*widget.Button
	rowLabels     []*widget.Label

	deleteHandler   func(int)
	clearAllHandler func()
}

func NewWorkoutList() *WorkoutList {
	wl := &WorkoutList{}
	wl.createComponents()
	wl.buildLayout()
	return wl
}

func (wl *WorkoutList) createComponents() {
	wl.totalLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	wl.totalLabel.Hide()

	wl.clearButton = widget.NewButtonWithIcon("Clear All Workouts", theme.ContentClearIcon(), func() {
		if wl.clearAllHandler != nil {
			wl.clearAllHandler()
		}
	})
	wl.clearButton.Importance = widget.WarningImportance
	wl.clearButton.Hide()

	wl.rows = container.NewVBox()
}

func (wl *WorkoutList) buildLayout() {
	wl.container = container.NewBorder(
		container.NewVBox(wl.totalLabel, wl.clearButton),
		nil,
		nil,
		nil,
		container.NewVScroll(wl.rows),
	)
}

// Update redraws the list from a summary
func (wl *WorkoutList) Update(summary models.Summary) {
	wl.totalLabel.SetText(summary.TotalText())
	setVisible(wl.totalLabel, summary.ShowTotal)
	setVisible(wl.clearButton, summary.ShowClearAll)

	objects := make([]fyne.CanvasObject, 0, len(summary.Rows))
	wl.deleteButtons = make([]*widget.Button, 0, len(summary.Rows))
	wl.rowLabels = make([]*widget.Label, 0, len(summary.Rows))

	for _, row := range summary.Rows {
		index := row.Index
		text := widget.NewLabel(row.Text())
		volume := widget.NewLabelWithStyle(row.VolumeText(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		del := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			if wl.deleteHandler != nil {
				wl.deleteHandler(index)
			}
		})
		del.Importance = widget.LowImportance

		wl.rowLabels = append(wl.rowLabels, text)
		wl.deleteButtons = append(wl.deleteButtons, del)
		objects = append(objects, container.NewBorder(nil, nil, nil, del, container.NewHBox(text, volume)))
	}

	wl.rows.Objects = objects
	wl.rows.Refresh()
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}

// SetDeleteHandler sets the handler for per-row delete buttons
func (wl *WorkoutList) SetDeleteHandler(handler func(int)) {
	wl.deleteHandler = handler
}

// SetClearAllHandler sets the handler for the clear-all button
func (wl *WorkoutList) SetClearAllHandler(handler func()) {
	wl.clearAllHandler = handler
}

func (wl *WorkoutList) RowCount() int {
	return len(wl.deleteButtons)
}

// RowText returns the main line of row i.
func (wl *WorkoutList) RowText(i int) string {
	return wl.rowLabels[i].Text
}

func (wl *WorkoutList) DeleteButton(i int) *widget.Button {
	return wl.deleteButtons[i]
}

func (wl *WorkoutList) TotalLabel() *widget.Label {
	return wl.totalLabel
}

func (wl *WorkoutList) ClearButton() *widget.Button {
	return wl.clearButton
}

func (wl *WorkoutList) GetContainer() *fyne.Container {
	return wl.container
}
