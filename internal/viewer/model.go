// Package viewer is the terminal front end: it translates key and mouse
// events into navigation intents, hands them to the display core, and
// draws the resulting grid. No paging or formatting logic lives here.
package viewer

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"hexview/internal/config"
	verr "hexview/internal/errors"
	"hexview/internal/hexfile"
	"hexview/internal/view"
)

type View int

const (
	ViewMain View = iota
	ViewHelp
	ViewGoto
	ViewOpen
	ViewColumns
	ViewRows
)

// Wheel rotation without modifiers moves this many lines per event.
const wheelLines = 3

type Options struct {
	Path        string // file to open at startup, empty for the browser
	StartOffset int64  // initial display offset for that file
	ConfigPath  string // alternate config file, empty for the default
}

type Model struct {
	cfg    *config.Config
	styles *config.Styles
	log    *logrus.Logger

	session *hexfile.Session
	vp      *view.Viewport
	scroll  view.ScrollRange
	grid    view.Grid

	width  int
	height int
	view   View

	gotoInput textinput.Model
	dimInput  textinput.Model

	browser browserState

	statusMsg   string
	statusIsErr bool
}

func NewModel(opts Options, log *logrus.Logger) (*Model, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.WithError(err).Warn("config file unreadable, using defaults")
	}

	gotoInput := textinput.New()
	gotoInput.Placeholder = "hexadecimal offset"
	gotoInput.CharLimit = 16
	gotoInput.Width = 24

	dimInput := textinput.New()
	dimInput.CharLimit = 2
	dimInput.Width = 8

	m := &Model{
		cfg:       cfg,
		styles:    config.NewStyles(&cfg.Theme),
		log:       log,
		vp:        view.NewViewport(cfg.Display.Rows, cfg.Display.Columns, 0),
		gotoInput: gotoInput,
		dimInput:  dimInput,
	}
	m.scroll.Reconfigure(0, m.vp.Columns, m.vp.Rows)

	if opts.Path != "" {
		if err := m.openFile(opts.Path, opts.StartOffset); err != nil {
			return nil, err
		}
	} else {
		m.enterBrowser()
	}

	m.refresh()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearStatus()

	switch m.view {
	case ViewHelp:
		return m.handleHelpKey(msg)
	case ViewGoto:
		return m.handleGotoKey(msg)
	case ViewOpen:
		return m.handleOpenKey(msg)
	case ViewColumns, ViewRows:
		return m.handleDimensionKey(msg)
	default:
		return m.handleMainKey(msg)
	}
}

func (m *Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "left":
		m.navigate(view.Intent{Kind: view.IntentLineUp})
	case "down", "right":
		m.navigate(view.Intent{Kind: view.IntentLineDown})
	case "pgup", "shift+up", "shift+left":
		m.navigate(view.Intent{Kind: view.IntentPageUp})
	case "pgdown", "shift+down", "shift+right":
		m.navigate(view.Intent{Kind: view.IntentPageDown})
	case "home":
		m.navigate(view.Intent{Kind: view.IntentToStart})
	case "end":
		m.navigate(view.Intent{Kind: view.IntentToEnd})

	case "g", "G":
		m.view = ViewGoto
		m.gotoInput.SetValue("")
		m.gotoInput.Focus()
	case "o", "O":
		m.enterBrowser()
	case "c", "C":
		m.view = ViewColumns
		m.dimInput.SetValue(strconv.Itoa(m.vp.Columns))
		m.dimInput.Focus()
	case "r", "R":
		m.view = ViewRows
		m.dimInput.SetValue(strconv.Itoa(m.vp.Rows))
		m.dimInput.Focus()
	case "h", "H":
		m.view = ViewHelp
	case "w", "W":
		m.closeFile()
	case "q", "Q", "ctrl+c", "esc":
		if err := m.cfg.Save(); err != nil {
			m.log.WithError(err).Warn("could not save config")
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.view != ViewMain {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Shift || msg.Alt || msg.Ctrl {
			m.navigate(view.Intent{Kind: view.IntentPageUp})
		} else {
			m.navigate(view.Intent{Kind: view.IntentLineUp, Lines: wheelLines})
		}
	case tea.MouseButtonWheelDown:
		if msg.Shift || msg.Alt || msg.Ctrl {
			m.navigate(view.Intent{Kind: view.IntentPageDown})
		} else {
			m.navigate(view.Intent{Kind: view.IntentLineDown, Lines: wheelLines})
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress {
			m.handleScrollbarClick(msg.X, msg.Y)
		}
	}

	return m, nil
}

// handleScrollbarClick maps a click on the scrollbar track to a control
// value and navigates there. The navigation arrives as IntentScrollTo, so
// navigate skips the programmatic value write-back: the control's value is
// its own source here.
func (m *Model) handleScrollbarClick(x, y int) {
	col, top, rows := m.scrollbarGeometry()
	if x != col || y < top || y >= top+rows || rows < 2 {
		return
	}
	span := m.scroll.Max - m.scroll.Min
	value := m.scroll.Min + (y-top)*span/(rows-1)
	m.scroll.Value = value
	m.navigate(view.Intent{Kind: view.IntentScrollTo,
		Offset: m.scroll.OffsetForValue(value, m.vp)})
}

// navigate is the single entry point for every navigation intent. Unknown
// intents are programming faults: logged, state untouched.
func (m *Model) navigate(in view.Intent) {
	if err := m.vp.Navigate(in); err != nil {
		var logicErr *verr.LogicError
		if verr.As(err, &logicErr) {
			m.log.WithField("intent", int(in.Kind)).Error(logicErr.Msg)
			return
		}
		m.log.WithError(err).Error("navigate failed")
		return
	}
	if in.Kind != view.IntentScrollTo {
		m.scroll.SyncValue(m.vp)
	}
	m.refresh()
}

// refresh re-renders the grid for the current position. A read failure is
// fatal to the session: report, force close, fall back to the empty view.
func (m *Model) refresh() {
	grid, err := view.RenderGrid(m.session, m.vp)
	if err != nil {
		m.fatalIO(err)
		return
	}
	m.grid = grid
}

func (m *Model) fatalIO(err error) {
	m.log.WithError(err).Error("file read failed, closing session")
	m.setError(err.Error())
	m.session.Close()
	m.session = nil
	m.vp.SetFileSize(0)
	m.scroll.Reconfigure(0, m.vp.Columns, m.vp.Rows)
	m.scroll.SyncValue(m.vp)
	m.grid, _ = view.RenderGrid(nil, m.vp)
}

// openFile releases any current session first; there is never more than
// one open file.
func (m *Model) openFile(path string, startOffset int64) error {
	m.closeFile()

	s, err := hexfile.Open(path, m.cfg.Display.MaxFileSize)
	if err != nil {
		return err
	}
	m.session = s
	m.vp.SetFileSize(s.Size())
	m.scroll.Reconfigure(s.Size(), m.vp.Columns, m.vp.Rows)
	m.navigate(view.Intent{Kind: view.IntentToOffset, Offset: startOffset})
	m.log.WithFields(logrus.Fields{"path": path, "size": s.Size()}).Info("opened file")
	m.setStatus(fmt.Sprintf("opened %s (%d bytes)", path, s.Size()))
	return nil
}

func (m *Model) closeFile() {
	if m.session == nil {
		return
	}
	m.session.Close()
	m.session = nil
	m.vp.SetFileSize(0)
	m.scroll.Reconfigure(0, m.vp.Columns, m.vp.Rows)
	m.scroll.SyncValue(m.vp)
	m.refresh()
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "h", "H", "q", "Q":
		m.view = ViewMain
	}
	return m, nil
}

func (m *Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.view = ViewMain
		return m, nil
	case tea.KeyEnter:
		m.submitGoto()
		return m, nil
	}
	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

// submitGoto parses the offset as unsigned hexadecimal with no separators.
// Unparseable input is rejected and the dialog stays up; an offset past
// end of file is accepted and clamped by the viewport, not rejected.
func (m *Model) submitGoto() {
	offset, err := parseGotoOffset(m.gotoInput.Value())
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.view = ViewMain
	m.navigate(view.Intent{Kind: view.IntentToOffset, Offset: offset})
}

func parseGotoOffset(input string) (int64, error) {
	if input == "" {
		return 0, verr.NewConfigError("offset", input,
			"file offset must be hexadecimal with no spaces or punctuation")
	}
	v, err := strconv.ParseUint(input, 16, 63)
	if err != nil {
		return 0, verr.NewConfigError("offset", input,
			"file offset must be hexadecimal with no spaces or punctuation")
	}
	return int64(v), nil
}

func (m *Model) handleDimensionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.view = ViewMain
		return m, nil
	case tea.KeyEnter:
		m.submitDimension()
		return m, nil
	}
	var cmd tea.Cmd
	m.dimInput, cmd = m.dimInput.Update(msg)
	return m, cmd
}

// submitDimension applies a new column or row count. Out-of-range input is
// rejected: the message is shown, the previous value stays in force, and
// the input reverts to it.
func (m *Model) submitDimension() {
	n, convErr := strconv.Atoi(m.dimInput.Value())
	var err error
	if m.view == ViewColumns {
		if convErr != nil {
			err = verr.NewConfigError("columns", m.dimInput.Value(),
				"number of columns must be from 1 to 99")
		} else {
			err = m.SetColumns(n)
		}
	} else {
		if convErr != nil {
			err = verr.NewConfigError("rows", m.dimInput.Value(),
				"number of rows must be from 2 to 99")
		} else {
			err = m.SetRows(n)
		}
	}

	if err != nil {
		m.setError(err.Error())
		if m.view == ViewColumns {
			m.dimInput.SetValue(strconv.Itoa(m.vp.Columns))
		} else {
			m.dimInput.SetValue(strconv.Itoa(m.vp.Rows))
		}
		return
	}

	m.view = ViewMain
}

// SetColumns applies a column count from outside the UI, typically the
// command line. Out-of-range values are rejected and the current count
// stays in force.
func (m *Model) SetColumns(n int) error {
	if err := m.vp.SetColumns(n); err != nil {
		return err
	}
	m.cfg.Display.Columns = m.vp.Columns
	m.scroll.Reconfigure(m.vp.FileSize, m.vp.Columns, m.vp.Rows)
	m.scroll.SyncValue(m.vp)
	m.refresh()
	return nil
}

// SetRows is the row-count counterpart of SetColumns.
func (m *Model) SetRows(n int) error {
	if err := m.vp.SetRows(n); err != nil {
		return err
	}
	m.cfg.Display.Rows = m.vp.Rows
	m.scroll.Reconfigure(m.vp.FileSize, m.vp.Columns, m.vp.Rows)
	m.scroll.SyncValue(m.vp)
	m.refresh()
	return nil
}

func (m *Model) setError(msg string) {
	m.statusMsg = msg
	m.statusIsErr = true
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusIsErr = false
}

func (m *Model) clearStatus() {
	m.statusMsg = ""
	m.statusIsErr = false
}

func (m *Model) positionStatus() string {
	if m.session == nil {
		return "no file open"
	}
	return fmt.Sprintf("offset 0x%X of 0x%X", m.vp.DisplayStart, m.vp.FileSize)
}
