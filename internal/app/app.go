// Package app wires the text engine to a terminal front end: config,
// logging, session restore and the tcell event loop.
package app

import (
	"runtime"

	"github.com/gdamore/tcell/v2"

	"github.com/scribe-editor/scribe/internal/config"
	"github.com/scribe-editor/scribe/internal/logger"
	"github.com/scribe-editor/scribe/internal/session"
)

// App is the top-level runtime for scribe.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	runtime.LockOSThread()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(false); err != nil {
		return err
	}
	defer logger.Close()

	sess, err := session.NewManager()
	if err != nil {
		return err
	}
	defer sess.Stop()

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.EnableMouse()
	defer s.Fini()

	ed := newEditor(cfg, sess)
	if len(a.args) > 0 {
		if err := ed.openFile(s, a.args[0]); err != nil {
			s.Fini()
			return err
		}
	} else {
		ed.openEmpty(s)
	}

	ed.render(s)
	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ed.handleKey(ev) {
				ed.saveSession()
				return nil
			}
		case *tcell.EventMouse:
			ed.handleMouse(ev)
		case *tcell.EventResize:
			ed.resize(s)
			s.Sync()
		}
		ed.render(s)
	}
}
