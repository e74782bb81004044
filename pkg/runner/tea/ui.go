// Package teaui is the full screen journal browser.
package teaui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/printers"
	"tableflip.dev/travlog/pkg/store"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeCalendar
	modeDetail
	modeConfirm
)

var (
	activeTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true).Padding(0, 1)
	inactiveTab = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	askStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

type entryItem struct{ e *entry.Entry }

func (it entryItem) Title() string { return it.e.String() }

func (it entryItem) Description() string {
	_, _, _, _, budget, tags := it.e.Row()
	return strings.TrimSpace(budget + "  " + tags)
}

func (it entryItem) FilterValue() string { return it.e.Location }

// messages
type errMsg struct{ err error }
type changedMsg store.Event

// Model holds the browser state. The journal is the only source of entries;
// the list is rebuilt from it after every change.
type Model struct {
	ctx     context.Context
	journal *app.Journal

	// Set when the stored record is watched for outside changes.
	persistence store.Persistence
	events      <-chan store.Event
	opts        []app.Option

	mode   mode
	prev   mode
	tab    entry.Type
	filter app.Filter

	entries list.Model
	input   textinput.Model
	keys    keyMap
	help    help.Model

	cal    *app.Calendar
	calDay int
	nav    app.Navigator

	pendingDelete string
	status        string
}

// New creates a browser over j showing the memories tab.
func New(ctx context.Context, j *app.Journal) Model {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)

	l := list.New(nil, d, 80, 20)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	// q and esc belong to the browser, not the list.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "location or description"
	ti.CharLimit = 256

	today := j.Today()
	m := Model{
		ctx:     ctx,
		journal: j,
		mode:    modeList,
		tab:     entry.Memory,
		entries: l,
		input:   ti,
		keys:    defaultKeys(),
		help:    help.New(),
		cal:     app.NewCalendar(today),
		calDay:  today.Day(),
		status:  "tab switches between memories and planned trips, ? for help",
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.events)
}

func waitForChange(events <-chan store.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return changedMsg(ev)
	}
}

func (m *Model) refresh() {
	visible := app.Visible(m.journal.Entries(), m.tab, m.filter)
	items := make([]list.Item, 0, len(visible))
	for _, e := range visible {
		items = append(items, entryItem{e: e})
	}
	_ = m.entries.SetItems(items)

	title := fmt.Sprintf("%s (%d)", m.tab.Title(), len(visible))
	if q := strings.TrimSpace(m.filter.Q); q != "" {
		title += fmt.Sprintf(" matching %q", q)
	}
	if m.filter.DateExact != nil {
		title += " on " + m.filter.DateExact.String()
	}
	m.entries.Title = title
}

func (m *Model) current() *entry.Entry {
	it, ok := m.entries.SelectedItem().(entryItem)
	if !ok {
		return nil
	}
	return it.e
}

func (m *Model) switchTab() {
	if m.tab == entry.Memory {
		m.tab = entry.Planned
	} else {
		m.tab = entry.Memory
	}
	m.refresh()
	m.entries.Select(0)
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.entries.SetSize(msg.Width, max(msg.Height-6, 5))
		m.help.Width = msg.Width
		return m, nil
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
		return m, nil
	case changedMsg:
		return m.reload()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeCalendar:
			return m.updateCalendar(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

// reload replaces the journal with what is on disk.
func (m Model) reload() (tea.Model, tea.Cmd) {
	j, err := app.Open(m.ctx, m.persistence, m.opts...)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return m, waitForChange(m.events)
	}
	m.journal = j
	m.refresh()
	return m, waitForChange(m.events)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.switchTab()
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.input.SetValue(m.filter.Q)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Calendar):
		m.mode = modeCalendar
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if e := m.current(); e != nil {
			m.nav.GoToView(e.ID)
			m.mode = modeDetail
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.filter = app.Filter{}
		m.refresh()
		m.status = "Filters cleared"
		return m, nil
	case key.Matches(msg, m.keys.Convert):
		if e := m.current(); e != nil {
			return m.convert(e)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if e := m.current(); e != nil {
			m.askDelete(e.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.entries, cmd = m.entries.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.input.Blur()
		m.mode = modeList
		return m, nil
	case "esc":
		m.input.Blur()
		m.input.Reset()
		m.filter.Q = ""
		m.refresh()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter.Q = m.input.Value()
	m.refresh()
	return m, cmd
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Calendar):
		m.mode = modeList
	case key.Matches(msg, m.keys.Tab):
		m.switchTab()
	case key.Matches(msg, m.keys.Left):
		m.moveDay(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveDay(1)
	case msg.String() == "up" || msg.String() == "k":
		m.moveDay(-7)
	case msg.String() == "down" || msg.String() == "j":
		m.moveDay(7)
	case key.Matches(msg, m.keys.PrevPage):
		m.cal.Prev()
		m.calDay = min(m.calDay, app.DaysIn(m.cal.Anchor))
	case key.Matches(msg, m.keys.NextPage):
		m.cal.Next()
		m.calDay = min(m.calDay, app.DaysIn(m.cal.Anchor))
	case key.Matches(msg, m.keys.Open):
		if m.cal.Select(&m.filter, m.calDay) {
			m.refresh()
			m.entries.Select(0)
			m.mode = modeList
			m.status = "Showing " + m.filter.DateExact.String() + ", esc clears"
		}
	}
	return m, nil
}

// moveDay walks the selected day, rolling into the neighbouring month.
func (m *Model) moveDay(n int) {
	day := m.calDay + n
	for day < 1 {
		m.cal.Prev()
		day += app.DaysIn(m.cal.Anchor)
	}
	for day > app.DaysIn(m.cal.Anchor) {
		day -= app.DaysIn(m.cal.Anchor)
		m.cal.Next()
	}
	m.calDay = day
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.nav.GoHome()
		m.mode = modeList
	case key.Matches(msg, m.keys.Left):
		m.nav.Resolve(m.journal)
		m.nav.Carousel.Prev()
	case key.Matches(msg, m.keys.Right):
		m.nav.Resolve(m.journal)
		m.nav.Carousel.Next()
	case key.Matches(msg, m.keys.Convert):
		if e, ok := m.nav.Resolve(m.journal); ok {
			return m.convert(e)
		}
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.nav.Current(); ok {
			m.askDelete(id)
		}
	}
	return m, nil
}

func (m *Model) askDelete(id string) {
	m.pendingDelete = id
	m.prev = m.mode
	m.mode = modeConfirm
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.pendingDelete
	m.pendingDelete = ""
	if s := msg.String(); s != "y" && s != "Y" {
		m.mode = m.prev
		m.status = "Delete cancelled"
		return m, nil
	}

	m.mode = modeList
	if m.prev == modeDetail {
		m.nav.GoHome()
	}
	if err := m.journal.Remove(m.ctx, id); err != nil {
		m.status = "ERR: " + err.Error()
	} else {
		m.status = "Deleted"
	}
	m.refresh()
	return m, nil
}

func (m Model) convert(e *entry.Entry) (tea.Model, tea.Cmd) {
	if e.Type == entry.Memory {
		m.status = e.Location + " is already a memory"
		return m, nil
	}
	converted, err := m.journal.ConvertToMemory(m.ctx, e.ID)
	switch {
	case converted == nil:
		m.status = "ERR: " + err.Error()
	case err != nil:
		m.status = "Converted, but saving failed: " + err.Error()
	default:
		m.status = converted.Location + " moved to memories"
	}
	m.refresh()
	return m, nil
}

// View renders the tab bar, the active pane and the footer.
func (m Model) View() string {
	var body string
	switch m.mode {
	case modeDetail:
		body = m.detailView()
	case modeCalendar:
		body = m.calendarView()
	case modeConfirm:
		if m.prev == modeDetail {
			body = m.detailView()
		} else {
			body = m.entries.View()
		}
		body += "\n" + askStyle.Render("Delete this entry? (y/n)")
	default:
		body = m.entries.View()
	}
	if m.mode == modeSearch {
		body += "\n" + m.input.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tabsView(),
		body,
		statusStyle.Render(m.status),
		m.help.View(m.keys),
	)
}

func (m Model) tabsView() string {
	all := m.journal.Entries()
	tabs := make([]string, 0, 2)
	for _, t := range []entry.Type{entry.Memory, entry.Planned} {
		label := fmt.Sprintf("%s %d", t.Title(), len(app.Visible(all, t, app.Filter{})))
		if t == m.tab {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, inactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m Model) detailView() string {
	var buf bytes.Buffer
	pp := printers.PrettyPrint{ShowID: true, Out: &buf}
	e, ok := m.nav.Resolve(m.journal)
	if !ok {
		id, _ := m.nav.Current()
		pp.NotFound(id)
		return buf.String()
	}
	pp.Detail(e, &m.nav.Carousel)
	return buf.String()
}

func (m Model) calendarView() string {
	var buf bytes.Buffer
	pp := printers.PrettyPrint{Out: &buf}
	grid := m.cal.Grid(m.journal.Entries(), m.tab)
	pp.Month(grid, m.journal.Today())
	day := grid.Days[m.calDay-1]
	_, _ = fmt.Fprintf(&buf, "\n%s: %d %s, enter to list them\n",
		day.Date, day.Count, strings.ToLower(m.tab.Title()))
	return buf.String()
}
