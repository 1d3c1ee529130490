package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and any storage warning
type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	warningLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.warningLabel = widget.NewLabel("")
	sb.warningLabel.Importance = widget.WarningImportance
	sb.warningLabel.Hide()
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(
		nil, nil,
		sb.statusLabel,
		sb.warningLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetWarning shows a warning next to the status. An empty message hides it.
func (sb *StatusBar) SetWarning(message string) {
	sb.warningLabel.SetText(message)
	setVisible(sb.warningLabel, message != "")
}

// GetWarning returns the visible warning, if any
func (sb *StatusBar) GetWarning() string {
	if !sb.warningLabel.Visible() {
		return ""
	}
	return sb.warningLabel.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.SetWarning("")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
