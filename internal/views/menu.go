package views

import "fyne.io/fyne/v2"

// SetupMenus installs the File menu. onClear and onQuit are invoked from the
// menu items.
func (mv *MainView) SetupMenus(onClear, onQuit func()) {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Clear All Workouts...", onClear),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", onQuit),
	)
	fileMenu.Items[2].IsQuit = true

	mv.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}
