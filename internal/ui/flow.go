package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/nebula-notes/internal/notes"
	"github.com/gravitrone/nebula-notes/internal/store"
	"github.com/gravitrone/nebula-notes/internal/ui/components"
)

// lineLimit bounds the line-number prompt.
const lineLimit = 9

type flowKind int

const (
	flowAdd flowKind = iota
	flowEditByNumber
	flowEditFromSelection
)

func (k flowKind) String() string {
	switch k {
	case flowAdd:
		return "add"
	case flowEditByNumber:
		return "edit-by-number"
	case flowEditFromSelection:
		return "edit-from-selection"
	}
	return "unknown"
}

type flowStep int

const (
	stepSelectLine flowStep = iota
	stepTitle
	stepBody
)

func (s flowStep) String() string {
	switch s {
	case stepSelectLine:
		return "line"
	case stepTitle:
		return "title"
	case stepBody:
		return "body"
	}
	return "unknown"
}

// noteFlow is an in-progress add or edit. The App holds at most one; nil means
// no flow is running and the list keys are live.
type noteFlow struct {
	kind   flowKind
	step   flowStep
	target int
	draft  notes.Note
	line   string
	err    string
}

func newAddFlow() *noteFlow {
	return &noteFlow{kind: flowAdd, step: stepTitle}
}

func newEditByNumberFlow() *noteFlow {
	return &noteFlow{kind: flowEditByNumber, step: stepSelectLine}
}

func newEditFlow(target int) *noteFlow {
	return &noteFlow{kind: flowEditFromSelection, step: stepTitle, target: target}
}

func (f *noteFlow) editing() bool {
	return f.kind != flowAdd
}

// field returns the buffer the current step types into and its byte limit.
func (f *noteFlow) field() (*string, int) {
	switch f.step {
	case stepSelectLine:
		return &f.line, lineLimit
	case stepTitle:
		return &f.draft.Title, store.FieldWidth
	default:
		return &f.draft.Body, store.FieldWidth
	}
}

func (f *noteFlow) dialogTitle() string {
	switch {
	case f.step == stepSelectLine:
		return "Edit note line number"
	case f.kind == flowAdd && f.step == stepTitle:
		return "New Note Title"
	case f.kind == flowAdd:
		return "New Note Body"
	case f.step == stepTitle:
		return "Edit note title"
	default:
		return "Edit note body"
	}
}

// --- Flow Handling ---

func (a *App) startFlow(f *noteFlow) {
	a.flow = f
	a.logger.Debug("flow started", "kind", f.kind, "step", f.step, "target", f.target)
}

func (a *App) endFlow(reason string) {
	if a.flow != nil {
		a.logger.Debug("flow ended", "kind", a.flow.kind, "step", a.flow.step, "reason", reason)
	}
	a.flow = nil
}

func (a *App) handleFlowKey(msg tea.KeyMsg) tea.Cmd {
	f := a.flow
	buf, limit := f.field()
	switch editField(a.keys.field, buf, limit, msg) {
	case fieldEdited:
		f.err = ""
	case fieldFull:
		f.err = "field is full"
	case fieldCancel:
		a.endFlow("cancelled")
	case fieldCopy:
		return a.copyFromTarget()
	case fieldCommit:
		return a.commitStep()
	}
	return nil
}

func (a *App) commitStep() tea.Cmd {
	f := a.flow
	switch f.step {
	case stepSelectLine:
		index, err := notes.ParseLine(f.line, a.notes.Len())
		if err != nil {
			a.logger.Debug("rejected line number", "input", f.line, "err", err)
			a.endFlow("invalid line")
			return a.setToast("warning", fmt.Sprintf("No note at line %q", strings.TrimSpace(f.line)))
		}
		f.target = index
		f.step = stepTitle
		f.err = ""
	case stepTitle:
		if strings.TrimSpace(f.draft.Title) == "" {
			f.err = "Title is required"
			return nil
		}
		f.step = stepBody
		f.err = ""
	case stepBody:
		if f.editing() {
			return a.commitEdit()
		}
		return a.commitAdd()
	}
	a.logger.Debug("flow step", "kind", f.kind, "step", f.step)
	return nil
}

// commitAdd persists the draft before it becomes visible in the collection.
func (a *App) commitAdd() tea.Cmd {
	f := a.flow
	if err := a.store.Append(f.draft); err != nil {
		a.logger.Error("append note failed", "err", err)
		a.err = err.Error()
		f.err = "Save failed, enter to retry"
		return nil
	}
	a.notes.Push(f.draft)
	a.refreshList()
	a.list.Select(a.notes.Len() - 1)
	a.endFlow("committed")
	return a.setToast("success", "Note added")
}

func (a *App) commitEdit() tea.Cmd {
	f := a.flow
	if _, err := a.notes.Get(f.target); err != nil {
		a.endFlow("target gone")
		return a.setToast("error", fmt.Sprintf("Note %d no longer exists", f.target+1))
	}
	if err := a.store.UpdateAt(f.target, f.draft); err != nil {
		a.logger.Error("update note failed", "index", f.target, "err", err)
		a.err = err.Error()
		f.err = "Save failed, enter to retry"
		return nil
	}
	if err := a.notes.Set(f.target, f.draft); err != nil {
		a.endFlow("target gone")
		return a.setToast("error", err.Error())
	}
	a.refreshList()
	a.list.Select(f.target)
	a.endFlow("committed")
	return a.setToast("success", "Note updated")
}

// copyFromTarget fills the current field with the value being edited.
func (a *App) copyFromTarget() tea.Cmd {
	f := a.flow
	if !f.editing() || f.step == stepSelectLine {
		return nil
	}
	current, err := a.notes.Get(f.target)
	if err != nil {
		a.endFlow("target gone")
		return a.setToast("error", fmt.Sprintf("Note %d no longer exists", f.target+1))
	}
	buf, _ := f.field()
	if f.step == stepTitle {
		*buf = store.Fit(current.Title)
	} else {
		*buf = store.Fit(current.Body)
	}
	f.err = ""
	return nil
}

func (a App) renderDialog() string {
	f := a.flow
	buf, limit := f.field()
	field := components.InputField{
		Title: f.dialogTitle(),
		Value: *buf,
		Limit: limit,
		Error: f.err,
	}
	if f.editing() && f.step != stepSelectLine {
		if current, err := a.notes.Get(f.target); err == nil {
			if f.step == stepTitle {
				field.Current = current.Title
			} else {
				field.Current = current.Body
			}
			field.Hint = "enter: submit | tab: copy current | esc: cancel"
		}
	}
	if f.step == stepSelectLine {
		field.Limit = 0
		field.Hint = fmt.Sprintf("1-%d | enter: submit | esc: cancel", a.notes.Len())
	}
	return components.InputDialog(field)
}
