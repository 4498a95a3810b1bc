package viewer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type browserState struct {
	path  string
	items []os.DirEntry
	index int
}

func (m *Model) enterBrowser() {
	start := m.browser.path
	if m.session != nil {
		start = filepath.Dir(m.session.Path())
	}
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "/"
		}
		start = cwd
	}
	m.browser.path = start
	m.browser.index = 0
	m.loadBrowserItems()
	m.view = ViewOpen
}

func (m *Model) handleOpenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = ViewMain
	case "up":
		if m.browser.index > 0 {
			m.browser.index--
		}
	case "down":
		if m.browser.index < len(m.browser.items)-1 {
			m.browser.index++
		}
	case "enter":
		m.browserSelect()
	}
	return m, nil
}

func (m *Model) browserSelect() {
	if m.browser.index >= len(m.browser.items) {
		return
	}
	item := m.browser.items[m.browser.index]
	path := filepath.Join(m.browser.path, item.Name())

	if item.IsDir() {
		m.browser.path = path
		m.browser.index = 0
		m.loadBrowserItems()
		return
	}

	if err := m.openFile(path, 0); err != nil {
		m.setError(err.Error())
		return
	}
	m.view = ViewMain
}

func (m *Model) loadBrowserItems() {
	entries, err := os.ReadDir(m.browser.path)
	if err != nil {
		m.browser.items = nil
		return
	}

	// Sort: directories first, then files
	var dirs, files []os.DirEntry
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name() < dirs[j].Name() })
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })

	m.browser.items = make([]os.DirEntry, 0, len(entries)+1)
	if m.browser.path != "/" {
		m.browser.items = append(m.browser.items, &parentDirEntry{})
	}
	m.browser.items = append(m.browser.items, dirs...)
	m.browser.items = append(m.browser.items, files...)
}

type parentDirEntry struct{}

func (p *parentDirEntry) Name() string               { return ".." }
func (p *parentDirEntry) IsDir() bool                { return true }
func (p *parentDirEntry) Type() os.FileMode          { return os.ModeDir }
func (p *parentDirEntry) Info() (os.FileInfo, error) { return nil, nil }

func (m *Model) renderOpen() string {
	var b strings.Builder
	b.WriteString("\nOPEN FILE\n")
	b.WriteString("=========\n\n")
	b.WriteString("Path: ")
	b.WriteString(m.browser.path)
	b.WriteString("\n\n")

	visibleItems := 15
	startIdx := 0
	if m.browser.index >= visibleItems {
		startIdx = m.browser.index - visibleItems + 1
	}

	for i := startIdx; i < len(m.browser.items) && i < startIdx+visibleItems; i++ {
		item := m.browser.items[i]
		prefix := "  "
		if i == m.browser.index {
			prefix = "> "
		}
		name := item.Name()
		if item.IsDir() {
			name += "/"
		}
		b.WriteString(fmt.Sprintf("%s%s\n", prefix, name))
	}

	b.WriteString("\nPress Enter to open, ESC to close\n")

	return b.String()
}
