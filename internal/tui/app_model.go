package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-climate-intel/internal/capability"
	"github.com/MKhiriev/go-climate-intel/internal/service"
	"github.com/MKhiriev/go-climate-intel/models"
)

type screen int

const (
	screenLoading screen = iota
	screenWelcome
	screenLogin
	screenRegister
	screenOTP
	screenDashboard
	screenLocation
	screenScenario
	screenChat
)

// authenticated reports whether s needs a signed-in user.
func (s screen) authenticated() bool {
	return s >= screenDashboard
}

var welcomeItems = []string{"Log in", "Register", "Quit"}

type appModel struct {
	ctx             context.Context
	services        *service.ClientServices
	caps            capability.Set
	buildInfo       models.AppBuildInfo
	refreshInterval time.Duration

	screen        screen
	menuIdx       int
	login         form
	register      form
	otp           form
	location      form
	scenario      form
	chatInput     textinput.Model
	showBuildInfo bool

	busy   bool
	status string
	errMsg string

	dayOffset       int
	scenarioResult  *models.ScenarioResult
	recommendations *models.RecommendationsResponse
	layers          []models.MapLayer

	refreshArmed bool
	width        int
}

func newAppModel(ctx context.Context, services *service.ClientServices, opts Options) appModel {
	chatInput := textinput.New()
	chatInput.Placeholder = "Ask about the climate of this location"
	chatInput.CharLimit = 2000
	chatInput.Width = 60

	return appModel{
		ctx:             ctx,
		services:        services,
		caps:            opts.Capabilities.WithDefaults(),
		buildInfo:       opts.BuildInfo,
		refreshInterval: opts.RefreshInterval,
		screen:          screenLoading,
		login: newForm(
			field{label: "Email or phone", placeholder: "you@example.com", limit: 254},
			field{label: "Password", placeholder: "password", secret: true, limit: 256},
		),
		register: newForm(
			field{label: "Email or phone", placeholder: "you@example.com", limit: 254},
			field{label: "Password", placeholder: "at least 6 characters", secret: true, limit: 256},
			field{label: "Name", placeholder: "your name", limit: 100},
			field{label: "Language", placeholder: "en or ta", limit: 2},
		),
		otp: newForm(
			field{label: "Code", placeholder: "6 digits", limit: 6},
		),
		location: newForm(
			field{label: "Latitude", placeholder: "13.0827", limit: 12},
			field{label: "Longitude", placeholder: "80.2707", limit: 12},
		),
		scenario: newForm(
			field{label: "Rainfall change, %", placeholder: "-100 .. 100", limit: 8},
			field{label: "Temperature change, °C", placeholder: "-10 .. 10", limit: 8},
		),
		chatInput: chatInput,
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdRestore()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case restoredMsg:
		return m.afterAuth()
	case authDoneMsg:
		m.busy = false
		m.errMsg = service.UserNotice(msg.err)
		return m.afterAuth()
	case climateLoadedMsg:
		if errors.Is(msg.err, service.ErrSuperseded) {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.errMsg = service.UserNotice(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Climate data updated"
		m.dayOffset = 0
		m.scenarioResult = nil
		m.recommendations = nil
		m.screen = screenDashboard
		return m, nil
	case refreshedMsg:
		if m.screen.authenticated() {
			m.status = "Refreshed at " + msg.data.GeneratedAt.Local().Format(time.Kitchen)
		}
		return m, m.cmdWaitForRefresh()
	case recommendationsMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = service.UserNotice(msg.err)
			return m, nil
		}
		resp := msg.resp
		m.recommendations = &resp
		m.errMsg = ""
		return m, nil
	case layersMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = service.UserNotice(msg.err)
			return m, nil
		}
		m.layers = msg.layers
		return m, nil
	case chatReplyMsg:
		m.busy = false
		if msg.sent && msg.reply.Error {
			m.errMsg = "The assistant could not answer."
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Could not copy the reply."
			return m, nil
		}
		m.status = "Reply copied"
		return m, nil
	case heardMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = "Voice input failed."
			return m, nil
		}
		m.chatInput.SetValue(msg.text)
		return m, nil
	}

	return m.updateFocused(msg)
}

// afterAuth moves to the screen matching the auth state. Leaving the
// authenticated area drops all session-scoped data.
func (m appModel) afterAuth() (tea.Model, tea.Cmd) {
	switch m.services.Auth.State() {
	case service.StateOTPPending:
		m.otp.reset()
		m.screen = screenOTP
		return m, nil
	case service.StateAuthenticated:
		if m.screen.authenticated() {
			return m, nil
		}
		m.screen = screenDashboard
		m.status = "Welcome, " + m.userName()
		return m, m.startRefresh()
	default:
		if m.screen.authenticated() || m.screen == screenOTP || m.screen == screenLoading {
			m.signedOut()
		}
		return m, nil
	}
}

func (m *appModel) signedOut() {
	m.services.RefreshJob.Stop()
	m.services.Chat.Reset()
	m.services.Climate.Reset()

	m.dayOffset = 0
	m.scenarioResult = nil
	m.recommendations = nil
	m.layers = nil
	m.login.reset()
	m.register.reset()
	m.location.reset()
	m.scenario.reset()
	m.chatInput.Reset()
	m.screen = screenWelcome
	m.menuIdx = 0
}

func (m *appModel) startRefresh() tea.Cmd {
	if m.refreshInterval <= 0 {
		return nil
	}
	m.services.RefreshJob.Start(m.ctx, m.refreshInterval)
	if m.refreshArmed {
		return nil
	}
	m.refreshArmed = true
	return m.cmdWaitForRefresh()
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}
	if m.busy {
		return m, nil
	}

	switch m.screen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenOTP:
		return m.updateOTP(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenLocation:
		return m.updateLocation(msg)
	case screenScenario:
		return m.updateScenario(msg)
	case screenChat:
		return m.updateChat(msg)
	}
	return m, nil
}

// updateFocused forwards non-key messages (cursor blink) to the active input.
func (m appModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		cmd = m.login.update(msg)
	case screenRegister:
		cmd = m.register.update(msg)
	case screenOTP:
		cmd = m.otp.update(msg)
	case screenLocation:
		cmd = m.location.update(msg)
	case screenScenario:
		cmd = m.scenario.update(msg)
	case screenChat:
		m.chatInput, cmd = m.chatInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	case key.Matches(msg, keys.up):
		m.menuIdx = max(0, m.menuIdx-1)
	case key.Matches(msg, keys.down):
		m.menuIdx = min(len(welcomeItems)-1, m.menuIdx+1)
	case key.Matches(msg, keys.enter):
		m.errMsg = ""
		m.status = ""
		switch m.menuIdx {
		case 0:
			m.screen = screenLogin
			return m, textinput.Blink
		case 1:
			m.screen = screenRegister
			return m, textinput.Blink
		default:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.login.reset()
		m.screen = screenWelcome
		return m, nil
	case key.Matches(msg, keys.tab):
		m.login.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.login.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		identity := parseIdentity(m.login.value(0))
		password := m.login.inputs[1].Value()
		m.busy = true
		m.errMsg = ""
		return m, m.cmdAuth(func(ctx context.Context) error {
			return m.services.Auth.Login(ctx, identity, password)
		})
	}
	return m, m.login.update(msg)
}

func (m appModel) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.register.reset()
		m.screen = screenWelcome
		return m, nil
	case key.Matches(msg, keys.tab):
		m.register.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.register.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		identity := parseIdentity(m.register.value(0))
		password := m.register.inputs[1].Value()
		name := m.register.value(2)
		language := models.Language(m.register.value(3))
		if language == "" {
			language = models.LanguageEnglish
		}
		m.busy = true
		m.errMsg = ""
		return m, m.cmdAuth(func(ctx context.Context) error {
			return m.services.Auth.Register(ctx, identity, password, name, language)
		})
	}
	return m, m.register.update(msg)
}

func (m appModel) updateOTP(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.busy = true
		return m, m.cmdAuth(m.services.Auth.Back)
	case key.Matches(msg, keys.enter):
		code := m.otp.value(0)
		m.busy = true
		m.errMsg = ""
		return m, m.cmdAuth(func(ctx context.Context) error {
			return m.services.Auth.VerifyOTP(ctx, code)
		})
	}
	return m, m.otp.update(msg)
}

func (m appModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, hasData := m.services.Climate.Current()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	case key.Matches(msg, keys.logout):
		m.busy = true
		m.errMsg = ""
		m.status = ""
		return m, m.cmdAuth(m.services.Auth.Logout)
	case key.Matches(msg, keys.location):
		m.errMsg = ""
		m.screen = screenLocation
		return m, textinput.Blink
	case key.Matches(msg, keys.left):
		if data, ok := m.services.Climate.Current(); ok {
			m.dayOffset = max(-len(data.Historical), m.dayOffset-1)
		}
	case key.Matches(msg, keys.right):
		if data, ok := m.services.Climate.Current(); ok {
			m.dayOffset = min(len(data.Forecast), m.dayOffset+1)
		}
	case key.Matches(msg, keys.scenario):
		if !hasData {
			m.errMsg = service.UserNotice(service.ErrNoClimateData)
			return m, nil
		}
		m.errMsg = ""
		m.screen = screenScenario
		return m, textinput.Blink
	case key.Matches(msg, keys.chat):
		m.errMsg = ""
		m.screen = screenChat
		m.chatInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.advice):
		if !hasData {
			m.errMsg = service.UserNotice(service.ErrNoClimateData)
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, m.cmdRecommendations()
	case key.Matches(msg, keys.layers):
		m.busy = true
		return m, m.cmdLayers()
	case key.Matches(msg, keys.language):
		next := models.LanguageTamil
		if m.language() == models.LanguageTamil {
			next = models.LanguageEnglish
		}
		m.busy = true
		m.errMsg = ""
		return m, m.cmdAuth(func(ctx context.Context) error {
			return m.services.Auth.UpdateLanguage(ctx, next)
		})
	}
	return m, nil
}

func (m appModel) updateLocation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.screen = screenDashboard
		return m, nil
	case key.Matches(msg, keys.tab):
		m.location.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.location.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		lat, errLat := parseFloat(m.location.value(0))
		lon, errLon := parseFloat(m.location.value(1))
		if errLat != nil || errLon != nil {
			m.errMsg = "Latitude and longitude must be numbers."
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, m.cmdFetch(models.Coordinate{Lat: lat, Lon: lon})
	}
	return m, m.location.update(msg)
}

func (m appModel) updateScenario(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.screen = screenDashboard
		return m, nil
	case key.Matches(msg, keys.tab):
		m.scenario.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.scenario.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		rain, errRain := parseFloat(m.scenario.value(0))
		temp, errTemp := parseFloat(m.scenario.value(1))
		if errRain != nil || errTemp != nil {
			m.errMsg = "Changes must be numbers."
			return m, nil
		}
		res, err := m.services.Climate.Simulate(rain, temp)
		if err != nil {
			m.errMsg = service.UserNotice(err)
			m.scenarioResult = nil
			return m, nil
		}
		m.errMsg = ""
		m.scenarioResult = &res
		return m, nil
	}
	return m, m.scenario.update(msg)
}

func (m appModel) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.chatInput.Blur()
		m.screen = screenDashboard
		return m, nil
	case key.Matches(msg, keys.copyReply):
		if !m.caps.Clipboard.Available() {
			return m, nil
		}
		return m, m.cmdCopyLastReply()
	case key.Matches(msg, keys.speak):
		if !m.caps.SpeechIn.Available() {
			return m, nil
		}
		m.busy = true
		return m, m.cmdListen()
	case key.Matches(msg, keys.enter):
		text := m.chatInput.Value()
		m.chatInput.Reset()
		m.busy = true
		m.errMsg = ""
		return m, m.cmdSend(text)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m appModel) language() models.Language {
	s, ok := m.services.Auth.Session()
	if !ok {
		return models.LanguageEnglish
	}
	return s.User.PreferredLanguage.OrDefault()
}

func (m appModel) userName() string {
	s, ok := m.services.Auth.Session()
	if !ok {
		return ""
	}
	if s.User.Name != "" {
		return s.User.Name
	}
	return s.User.Identity().String()
}
