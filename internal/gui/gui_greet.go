package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// GreetPanel is the greet form: a name entry, a submit button, and the reply
// text. Submission fires only on the button or the entry's submit action,
// never per keystroke.
type GreetPanel struct {
	container   *fyne.Container
	nameEntry   *widget.Entry
	greetButton *widget.Button
	replyLabel  *widget.Label

	onGreet func(string)
}

func NewGreetPanel(onGreet func(string)) *GreetPanel {
	panel := &GreetPanel{onGreet: onGreet}
	panel.setupForm()
	return panel
}

func (gp *GreetPanel) setupForm() {
	gp.nameEntry = widget.NewEntry()
	gp.nameEntry.SetPlaceHolder("Enter a name...")
	gp.nameEntry.OnSubmitted = func(string) { gp.submit() }

	gp.greetButton = widget.NewButton("Greet", gp.submit)
	gp.greetButton.Importance = widget.HighImportance

	gp.replyLabel = widget.NewLabel("")
	gp.replyLabel.Alignment = fyne.TextAlignCenter

	form := container.NewBorder(
		nil, nil,
		nil, gp.greetButton,
		gp.nameEntry,
	)

	gp.container = container.NewVBox(
		form,
		gp.replyLabel,
	)
}

func (gp *GreetPanel) GetContainer() *fyne.Container {
	return gp.container
}

// submit captures the entry text at invocation time and hands it off. Each
// trigger is an independent request; rapid repeats are not queued.
func (gp *GreetPanel) submit() {
	if gp.onGreet == nil {
		return
	}
	gp.onGreet(gp.nameEntry.Text)
}

// SetReply shows the latest greet response. Called from the invoker
// goroutine.
func (gp *GreetPanel) SetReply(text string) {
	fyne.Do(func() {
		gp.replyLabel.SetText(text)
	})
}
