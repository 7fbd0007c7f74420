package ui

import (
	"context"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"searchbar/internal/domain"
	"searchbar/internal/eventbus"
	"searchbar/internal/logging"
	"searchbar/internal/session"
	"searchbar/internal/settings"
	"searchbar/internal/store"
	"searchbar/internal/ui/input"
	inputtypes "searchbar/internal/ui/input/types"
	"searchbar/internal/ui/viewmodels"
	"searchbar/internal/ui/views"
)

const frameInterval = 33 * time.Millisecond

// LoadFunc reads the result document
type LoadFunc func(ctx context.Context) (store.ResultStore, error)

// StoreLoader returns a LoadFunc reading source through the result store
func StoreLoader(source string) LoadFunc {
	return func(ctx context.Context) (store.ResultStore, error) {
		return store.Open(ctx, source, logging.L())
	}
}

// Options configures the UI model
type Options struct {
	Source         string
	Load           LoadFunc
	Timing         session.Timing
	EnabledTabs    domain.EnabledTabs
	ShowHelp       bool
	AutosaveOnExit bool
}

// Model represents the UI state
type Model struct {
	ctx  context.Context
	bus  eventbus.EventBus
	opts Options

	machine session.Machine
	state   session.State

	// UI-specific state not in the session
	width        int
	height       int
	cursor       int
	showSettings bool
	panel        *settings.Panel
	savedTabs    domain.EnabledTabs // tab visibility at startup
	inPagerMode  bool

	revealStart time.Time // when the skeleton or the result rows appeared
	panelStart  time.Time
	animating   bool
	now         func() time.Time

	spinner      spinner.Model
	spinning     bool // a spinner tick chain is in flight
	inputHandler *input.Handler
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, bus eventbus.EventBus, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Load == nil {
		opts.Load = StoreLoader(opts.Source)
	}

	keys := inputtypes.DefaultKeyMap()
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:          ctx,
		bus:          bus,
		opts:         opts,
		machine:      session.NewMachine(opts.Timing),
		state:        session.NewState(opts.EnabledTabs),
		panel:        settings.NewPanel(),
		now:          time.Now,
		spinner:      sp,
		inputHandler: input.New(keys),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(keys),
		pager:        NewPager(),
	}
	m.savedTabs = m.state.EnabledTabs.Clone()
	m.viewModel = viewmodels.NewViewModel(*m.inputHandler.TextInput(), keys, opts.ShowHelp)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State returns the current session state
func (m *Model) State() session.State {
	return m.state
}

// Init loads the result document
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.inputHandler.Init())
}

func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		st, err := m.opts.Load(m.ctx)
		return resultsLoadedMsg{source: m.opts.Source, store: st, err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		ctx := input.ResultsContext{Results: session.Visible(m.state), Cursor: m.cursor}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		// The spinner loop stops once loading ends
		if !m.state.IsLoading {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(cmd, m.inputHandler.Update(msg))
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		return m, m.handleResultsLoaded(msg)

	case lookupDoneMsg:
		wasSettled := m.state.Settled()
		var effects []session.Effect
		m.state, effects = m.machine.CompleteLookup(m.state, msg.gen)
		cmds := []tea.Cmd{m.schedule(effects)}
		if m.state.Settled() && !wasSettled {
			m.cursor = 0
			cmds = append(cmds, m.startReveal())
		}
		return m, tea.Batch(cmds...)

	case copyResetMsg:
		m.state = m.machine.ResetCopy(m.state, msg.gen)
		return m, nil

	case countTickMsg:
		var effects []session.Effect
		m.state, effects = m.machine.TickCounts(m.state, msg.gen)
		return m, m.schedule(effects)

	case frameMsg:
		if m.inPagerMode || !m.animationRunning() {
			m.animating = false
			return m, nil
		}
		return m, frame()

	case pagerMsg:
		if msg.err != nil {
			logging.Warn("pager failed", zap.String("content", msg.what), zap.Error(msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case quitMsg:
		if msg.saveConfig && m.bus != nil {
			m.bus.Publish(eventbus.TabsChangedEvent{Tabs: m.state.EnabledTabs.Clone()})
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) handleResultsLoaded(msg resultsLoadedMsg) tea.Cmd {
	var records []domain.ResultRecord
	if msg.store != nil {
		records = msg.store.Records()
	}

	if m.bus != nil {
		if msg.err != nil {
			m.bus.Publish(eventbus.ResultsLoadFailedEvent{Source: msg.source, Err: msg.err})
		} else {
			m.bus.Publish(eventbus.ResultsLoadedEvent{Source: msg.source, Count: len(records)})
		}
	}

	var effects []session.Effect
	m.state, effects = m.machine.LoadResults(m.state, records)
	m.clampCursor()
	return m.schedule(effects)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		return m.setQuery(a.Text)

	case inputtypes.ClearQueryAction:
		return m.setQuery("")

	case inputtypes.CycleTabAction:
		m.state = m.machine.SetActiveTab(m.state, session.NeighborTab(m.state, a.Offset))
		m.cursor = 0
		return nil

	case inputtypes.NavigateAction:
		m.navigate(a.Direction)
		return nil

	case inputtypes.CopyLinkAction:
		var effects []session.Effect
		m.state, effects = m.machine.CopyLink(m.state, a.Index)
		if m.bus != nil {
			if rec, ok := m.visibleAt(a.Index); ok {
				m.bus.Publish(eventbus.LinkCopiedEvent{Index: a.Index, Title: rec.Title})
			}
		}
		return m.schedule(effects)

	case inputtypes.OpenResultAction:
		rec, ok := m.visibleAt(a.Index)
		if !ok {
			return nil
		}
		return m.showPager("result", RenderResultDetail(rec))

	case inputtypes.ChangeModeAction:
		m.viewModel.SetInputMode(a.Mode)
		switch a.Mode {
		case inputtypes.ModeSettings:
			m.showSettings = true
			m.panel.Reset()
			m.panelStart = m.now()
			return m.startAnimation()
		default:
			m.showSettings = false
		}
		return nil

	case inputtypes.ToggleTabAction:
		m.panel.Toggle(m.state.EnabledTabs, func(tab domain.Category, enabled bool) {
			m.state = m.machine.ToggleTab(m.state, tab, enabled)
			logging.Debug("tab toggled", zap.String("tab", string(tab)), zap.Bool("enabled", enabled))
		})
		m.clampCursor()
		return nil

	case inputtypes.ShowHelpAction:
		return m.showPager("help", m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		save := m.opts.AutosaveOnExit && m.tabsChanged()
		return func() tea.Msg { return quitMsg{saveConfig: save} }
	}

	return nil
}

func (m *Model) setQuery(text string) tea.Cmd {
	wasLoading := m.state.IsLoading
	var effects []session.Effect
	m.state, effects = m.machine.SetQuery(m.state, text)
	m.cursor = 0

	cmds := []tea.Cmd{m.schedule(effects)}
	if m.state.IsLoading && !wasLoading {
		cmds = append(cmds, m.startSpinner(), m.startReveal())
	}
	return tea.Batch(cmds...)
}

// startSpinner starts the tick chain unless one is still in flight
func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

// tabsChanged reports whether tab visibility differs from startup
func (m *Model) tabsChanged() bool {
	for _, c := range domain.ToggleableCategories {
		if m.state.EnabledTabs.IsVisible(c) != m.savedTabs.IsVisible(c) {
			return true
		}
	}
	return false
}

func (m *Model) navigate(direction string) {
	if m.showSettings {
		switch direction {
		case "up":
			m.panel.MoveUp()
		case "down":
			m.panel.MoveDown()
		}
		return
	}

	switch direction {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(session.Visible(m.state))-1 {
			m.cursor++
		}
	}
}

func (m *Model) clampCursor() {
	n := len(session.Visible(m.state))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) visibleAt(index int) (domain.ResultRecord, bool) {
	visible := session.Visible(m.state)
	if index < 0 || index >= len(visible) {
		return domain.ResultRecord{}, false
	}
	return visible[index], true
}

// schedule turns session effects into timer commands
func (m *Model) schedule(effects []session.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, effect := range effects {
		switch e := effect.(type) {
		case session.ScheduleLookup:
			cmds = append(cmds, tea.Tick(e.After, func(time.Time) tea.Msg { return lookupDoneMsg{gen: e.Generation} }))
		case session.ScheduleCopyReset:
			cmds = append(cmds, tea.Tick(e.After, func(time.Time) tea.Msg { return copyResetMsg{gen: e.Generation} }))
		case session.ScheduleCountTick:
			cmds = append(cmds, tea.Tick(e.After, func(time.Time) tea.Msg { return countTickMsg{gen: e.Generation} }))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) startReveal() tea.Cmd {
	m.revealStart = m.now()
	return m.startAnimation()
}

func (m *Model) startAnimation() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return frame()
}

func (m *Model) animationRunning() bool {
	vs := m.buildViewState()
	if vs.Expanded && m.elapsed(m.revealStart) < viewmodels.AnimationEnd(vs) {
		return true
	}
	return m.showSettings && m.elapsed(m.panelStart) < viewmodels.PanelAnimationEnd(vs)
}

func (m *Model) elapsed(since time.Time) time.Duration {
	if since.IsZero() {
		return time.Duration(math.MaxInt64)
	}
	return m.now().Sub(since)
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// showPager returns a command that shows content using the ov pager, pausing and resuming rendering
func (m *Model) showPager(what, content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return pagerMsg{what: what, err: errNoProgram}
		}

		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

func (m *Model) buildViewState() views.ViewState {
	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
	m.viewModel.SetSpinner(m.spinner.View())

	return m.viewModel.BuildViewState(m.state, viewmodels.Frame{
		Cursor:         m.cursor,
		ShowSettings:   m.showSettings,
		SettingsCursor: m.panel.Cursor(),
		Elapsed:        m.elapsed(m.revealStart),
		PanelElapsed:   m.elapsed(m.panelStart),
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}
