package app

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/scribe-editor/scribe/internal/config"
	"github.com/scribe-editor/scribe/internal/document"
	"github.com/scribe-editor/scribe/internal/session"
)

// editor drives one open document: it renders the viewport, maps key
// and mouse events onto engine operations, and decides the undo
// commit boundaries.
type editor struct {
	cfg  config.Config
	sess *session.Manager
	doc  *document.Document

	status    string
	searching bool
	query     string
	lastQuery string

	styleText   tcell.Style
	styleStatus tcell.Style
	styleGutter tcell.Style
	styleSelect tcell.Style
}

func newEditor(cfg config.Config, sess *session.Manager) *editor {
	fg := tcell.GetColor(cfg.Theme.Foreground)
	bg := tcell.GetColor(cfg.Theme.Background)
	return &editor{
		cfg:  cfg,
		sess: sess,
		styleText: tcell.StyleDefault.Foreground(fg).Background(bg),
		styleStatus: tcell.StyleDefault.
			Foreground(tcell.GetColor(cfg.Theme.StatuslineForeground)).
			Background(tcell.GetColor(cfg.Theme.StatuslineBackground)),
		styleGutter: tcell.StyleDefault.
			Foreground(tcell.GetColor(cfg.Theme.LineNumberForeground)).
			Background(bg),
		styleSelect: tcell.StyleDefault.
			Foreground(tcell.GetColor(cfg.Theme.SelectionForeground)).
			Background(tcell.GetColor(cfg.Theme.SelectionBackground)),
	}
}

func (e *editor) openFile(s tcell.Screen, path string) error {
	doc, err := document.Open(e.viewSize(s), path)
	if err != nil {
		return err
	}
	doc.SetTabWidth(e.cfg.Editor.TabWidth)
	doc.LoadTo(doc.Size.H)
	e.doc = doc
	// Put the cursor back where it was last time
	if state, ok := e.sess.GetFileState(doc.FileName); ok {
		doc.LoadTo(state.CursorRow + doc.Size.H)
		doc.MoveTo(document.At(state.CursorCol, state.CursorRow))
		doc.Offset.Y = state.ScrollY
		doc.Offset.X = state.ScrollX
		doc.BringCursorInViewport()
	}
	return nil
}

func (e *editor) openEmpty(s tcell.Screen) {
	e.doc = document.New(e.viewSize(s))
	e.doc.SetTabWidth(e.cfg.Editor.TabWidth)
}

func (e *editor) saveSession() {
	if e.doc.FileName == "" {
		return
	}
	loc := e.doc.CharLoc()
	e.sess.SetFileState(e.doc.FileName, session.FileState{
		CursorRow: loc.Y,
		CursorCol: loc.X,
		ScrollY:   e.doc.Offset.Y,
		ScrollX:   e.doc.Offset.X,
	})
}

// gutterWidth is the line-number column width including its trailing
// space, zero when line numbers are off.
func (e *editor) gutterWidth() int {
	if e.cfg.Editor.LineNumbers == "off" {
		return 0
	}
	if e.doc == nil {
		return 0
	}
	return len(e.doc.LineNumber(0)) + 1
}

func (e *editor) viewSize(s tcell.Screen) document.Size {
	w, h := s.Size()
	g := e.gutterWidth()
	return document.Size{W: max(w-g, 1), H: max(h-1, 1)}
}

func (e *editor) resize(s tcell.Screen) {
	e.doc.Size = e.viewSize(s)
	e.doc.LoadTo(e.doc.Offset.Y + e.doc.Size.H)
	e.doc.BringCursorInViewport()
}

// handleKey maps one key event onto the document. It returns true
// when the editor should exit.
func (e *editor) handleKey(ev *tcell.EventKey) bool {
	if e.searching {
		e.handleSearchKey(ev)
		return false
	}
	d := e.doc
	e.status = ""
	shift := ev.Modifiers()&tcell.ModShift != 0
	alt := ev.Modifiers()&tcell.ModAlt != 0
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return true
	case tcell.KeyCtrlS:
		e.save()
	case tcell.KeyCtrlZ:
		d.Undo()
	case tcell.KeyCtrlY:
		d.Redo()
	case tcell.KeyCtrlF:
		e.searching = true
		e.query = ""
	case tcell.KeyF3:
		if shift {
			e.findPrev()
		} else {
			e.findNext()
		}
	case tcell.KeyCtrlN:
		e.findNext()
	case tcell.KeyCtrlP:
		e.findPrev()
	case tcell.KeyCtrlK:
		d.Commit()
		if err := d.Exe(document.DeleteLine{Y: d.Loc().Y, Text: e.currentLine()}); err != nil {
			e.report(err)
		}
		d.Commit()
	case tcell.KeyCtrlW:
		d.Commit()
		if err := d.DeleteWord(); err != nil {
			e.report(err)
		}
	case tcell.KeyUp:
		switch {
		case alt:
			e.report(d.SwapLineUp())
		case shift:
			d.SelectUp()
		default:
			d.MoveUp()
		}
	case tcell.KeyDown:
		switch {
		case alt:
			e.report(d.SwapLineDown())
		case shift:
			d.SelectDown()
		default:
			d.MoveDown()
		}
	case tcell.KeyLeft:
		if shift {
			d.SelectLeft()
		} else {
			d.MoveLeft()
		}
	case tcell.KeyRight:
		if shift {
			d.SelectRight()
		} else {
			d.MoveRight()
		}
	case tcell.KeyHome:
		d.MoveHome()
	case tcell.KeyEnd:
		d.MoveEnd()
	case tcell.KeyPgUp:
		d.MovePageUp()
	case tcell.KeyPgDn:
		d.MovePageDown()
	case tcell.KeyCtrlA:
		d.MoveTop()
		d.SelectBottom()
	case tcell.KeyEnter:
		d.Commit()
		if d.Loc().Y == d.LenLines() {
			// Enter on the empty row below the document just opens it
			e.report(e.newRow())
		} else if err := d.Exe(document.SplitDown{Loc: d.CharLoc()}); err != nil {
			e.report(err)
		}
		d.Commit()
	case tcell.KeyTab:
		e.insert("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.backspace()
	case tcell.KeyDelete:
		e.deleteForward()
	case tcell.KeyRune:
		e.insert(string(ev.Rune()))
	}
	return false
}

func (e *editor) handleSearchKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		e.searching = false
	case tcell.KeyEnter:
		e.searching = false
		e.lastQuery = e.query
		e.findNext()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.query != "" {
			_, size := utf8.DecodeLastRuneInString(e.query)
			e.query = e.query[:len(e.query)-size]
		}
	case tcell.KeyRune:
		e.query += string(ev.Rune())
	}
}

func (e *editor) handleMouse(ev *tcell.EventMouse) {
	d := e.doc
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		d.ScrollUp()
	case ev.Buttons()&tcell.WheelDown != 0:
		d.ScrollDown()
	case ev.Buttons()&tcell.Button1 != 0:
		x, y := ev.Position()
		row := d.Offset.Y + y
		if row >= d.LenLines() {
			row = max(d.LenLines()-1, 0)
		}
		d.LoadTo(row + d.Size.H)
		disp := document.At(d.Offset.X+max(x-e.gutterWidth(), 0), row)
		d.MoveTo(document.At(d.CharacterIdx(disp), row))
	}
}

// newRow opens an empty line under the document when the cursor sits
// on the virtual row past the last line, so typing there works.
func (e *editor) newRow() error {
	d := e.doc
	if d.Loc().Y == d.LenLines() {
		return d.Exe(document.InsertLine{Y: d.Loc().Y})
	}
	return nil
}

func (e *editor) insert(st string) {
	d := e.doc
	if !d.IsSelectionEmpty() {
		d.RemoveSelection()
	}
	if err := e.newRow(); err != nil {
		e.report(err)
		return
	}
	if err := d.Exe(document.Insert{Loc: d.CharLoc(), Text: st}); err != nil {
		e.report(err)
		return
	}
	// Word-sized undo steps
	if st == " " || st == "\t" {
		d.Commit()
	}
}

func (e *editor) backspace() {
	d := e.doc
	if !d.IsSelectionEmpty() {
		d.RemoveSelection()
		d.Commit()
		return
	}
	loc := d.CharLoc()
	if loc.X == 0 {
		if loc.Y == 0 {
			return
		}
		d.Commit()
		if err := e.newRow(); err != nil {
			e.report(err)
			return
		}
		prev, _ := d.Line(loc.Y - 1)
		err := d.Exe(document.SpliceUp{Loc: document.At(utf8.RuneCountInString(prev), loc.Y-1)})
		e.report(err)
		d.Commit()
		return
	}
	ch, ok := charIn(e.currentLine(), loc.X-1)
	if !ok {
		return
	}
	e.report(d.Exe(document.Delete{Loc: document.At(loc.X-1, loc.Y), Text: string(ch)}))
}

func (e *editor) deleteForward() {
	d := e.doc
	if !d.IsSelectionEmpty() {
		d.RemoveSelection()
		d.Commit()
		return
	}
	loc := d.CharLoc()
	line := e.currentLine()
	if loc.X == utf8.RuneCountInString(line) {
		// Joining with the line below is a splice at the cursor
		if loc.Y+1 < d.LenLines() {
			d.Commit()
			e.report(d.Exe(document.SpliceUp{Loc: loc}))
			d.Commit()
		}
		return
	}
	ch, ok := charIn(line, loc.X)
	if !ok {
		return
	}
	e.report(d.Exe(document.Delete{Loc: loc, Text: string(ch)}))
}

func (e *editor) save() {
	if e.doc.FileName == "" {
		e.status = "no file name"
		return
	}
	e.doc.Commit()
	if err := e.doc.Save(); err != nil {
		e.report(err)
		return
	}
	e.status = "saved " + e.doc.FileName
}

func (e *editor) findNext() {
	if e.lastQuery == "" {
		e.status = "no search pattern"
		return
	}
	if m, ok := e.doc.NextMatch(e.lastQuery, 1); ok {
		e.doc.MoveTo(m.Loc)
	} else {
		e.status = "no more matches"
	}
}

func (e *editor) findPrev() {
	if e.lastQuery == "" {
		e.status = "no search pattern"
		return
	}
	if m, ok := e.doc.PrevMatch(e.lastQuery); ok {
		e.doc.MoveTo(m.Loc)
	} else {
		e.status = "no more matches"
	}
}

func (e *editor) report(err error) {
	if err != nil {
		e.status = err.Error()
	}
}

func (e *editor) currentLine() string {
	line, _ := e.doc.Line(e.doc.Loc().Y)
	return line
}

func (e *editor) render(s tcell.Screen) {
	d := e.doc
	w, h := s.Size()
	s.Fill(' ', e.styleText)
	gutter := e.gutterWidth()
	selLeft, selRight := d.SelectionLocBoundDisp()
	selecting := !d.IsSelectionEmpty()
	for row := 0; row < h-1; row++ {
		y := d.Offset.Y + row
		if gutter > 0 {
			drawText(s, 0, row, e.styleGutter, d.LineNumber(y)+" ")
		}
		line, ok := d.LineTrim(y, d.Offset.X, w-gutter)
		if !ok {
			continue
		}
		col := gutter
		dispX := d.Offset.X
		for _, ch := range line {
			style := e.styleText
			if selecting && inSelection(document.At(dispX, y), selLeft, selRight) {
				style = e.styleSelect
			}
			s.SetContent(col, row, ch, nil, style)
			cw := runeCols(ch)
			col += cw
			dispX += cw
		}
	}
	e.renderStatus(s, w, h)
	if e.searching {
		s.ShowCursor(len("search: ")+utf8.RuneCountInString(e.query), h-1)
	} else if loc, ok := d.CursorLocInScreen(); ok {
		s.ShowCursor(gutter+loc.X, loc.Y)
	} else {
		s.HideCursor()
	}
	s.Show()
}

func (e *editor) renderStatus(s tcell.Screen, w, h int) {
	d := e.doc
	left := d.FileName
	if left == "" {
		left = "[no name]"
	}
	if d.Info.Modified {
		left += " [+]"
	}
	if e.searching {
		left = "search: " + e.query
	} else if e.status != "" {
		left += "  " + e.status
	}
	loc := d.CharLoc()
	right := fmt.Sprintf("%d:%d", loc.Y+1, loc.X+1)
	for x := 0; x < w; x++ {
		s.SetContent(x, h-1, ' ', nil, e.styleStatus)
	}
	drawText(s, 0, h-1, e.styleStatus, left)
	drawText(s, max(w-len(right)-1, 0), h-1, e.styleStatus, right)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x += runeCols(ch)
	}
}

func runeCols(ch rune) int {
	if w := document.WidthChar(ch, 1); w > 0 {
		return w
	}
	return 1
}

func inSelection(loc, left, right document.Loc) bool {
	return !loc.Before(left) && loc.Before(right)
}

// charIn returns the character at index x within a string.
func charIn(st string, x int) (rune, bool) {
	i := 0
	for _, ch := range st {
		if i == x {
			return ch, true
		}
		i++
	}
	return 0, false
}
