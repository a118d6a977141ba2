package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-climate-intel/internal/risk"
	"github.com/MKhiriev/go-climate-intel/models"
)

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var title, body, help string
	switch m.screen {
	case screenLoading:
		title, body = "CLIMATE INTELLIGENCE", "Restoring session..."
	case screenWelcome:
		title, body, help = "CLIMATE INTELLIGENCE", m.viewWelcome(), "enter: select │ ↑/↓: move │ v: version"
	case screenLogin:
		title, body, help = "LOG IN", m.viewForm(m.login, "Log in"), "esc: back │ tab: next field │ enter: submit"
	case screenRegister:
		title, body, help = "REGISTER", m.viewForm(m.register, "Register"), "esc: back │ tab: next field │ enter: submit"
	case screenOTP:
		title, body, help = "VERIFY", m.viewOTP(), "esc: cancel registration │ enter: verify"
	case screenDashboard:
		title, body, help = "DASHBOARD", m.viewDashboard(), "g: location │ ←/→: timeline │ s: scenario │ r: advice │ m: layers │ c: chat │ t: language │ o: log out │ q: quit"
	case screenLocation:
		title, body, help = "LOCATION", m.viewForm(m.location, "Load"), "esc: back │ tab: next field │ enter: load"
	case screenScenario:
		title, body, help = "WHAT-IF SCENARIO", m.viewScenario(), "esc: back │ tab: next field │ enter: simulate"
	case screenChat:
		title, body, help = "ASSISTANT", m.viewChat(), m.chatHelp()
	}

	return renderPage(title, body+m.viewNotices(), help)
}

func (m appModel) viewNotices() string {
	var b strings.Builder
	if m.busy {
		b.WriteString("\n\nWorking...")
	}
	if m.status != "" && m.errMsg == "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
	return b.String()
}

func (m appModel) viewWelcome() string {
	var b strings.Builder
	for i, item := range welcomeItems {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %s\n", cursor, item)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m appModel) viewForm(f form, action string) string {
	return f.view() + "\n\n[" + action + "]"
}

func (m appModel) viewOTP() string {
	var b strings.Builder
	if p, ok := m.services.Auth.Pending(); ok {
		fmt.Fprintf(&b, "A code was sent to %s.\n", p.Identity.String())
		if p.DemoOTP != "" {
			fmt.Fprintf(&b, "Demo code: %s\n", p.DemoOTP)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.viewForm(m.otp, "Verify"))
	return b.String()
}

func (m appModel) viewDashboard() string {
	var b strings.Builder

	fmt.Fprintf(&b, "User: %s │ Language: %s\n\n", m.userName(), m.language())

	data, ok := m.services.Climate.Current()
	if !ok {
		b.WriteString("No location selected. Press g to choose one.")
		return b.String()
	}

	fmt.Fprintf(&b, "Location: %.4f, %.4f\n\n", data.Location.Lat, data.Location.Lon)

	sample, label := timelineSample(data, m.dayOffset)
	fmt.Fprintf(&b, "%s (%s)\n", label, sample.Date.Format("Mon 02 Jan"))
	fmt.Fprintf(&b, "  Temperature %5.1f °C   Feels like %5.1f °C\n", sample.Temperature, sample.FeelsLike)
	fmt.Fprintf(&b, "  Humidity    %5.1f %%    Rainfall   %5.1f mm\n", sample.Humidity, sample.Rainfall)
	fmt.Fprintf(&b, "  Wind        %5.1f km/h UV index   %5.1f\n", sample.WindSpeed, sample.UVIndex)
	if sample.Confidence != nil {
		fmt.Fprintf(&b, "  Forecast confidence %.0f%%\n", *sample.Confidence)
	}

	assessment := data.RiskAssessment
	if m.dayOffset != 0 {
		assessment = risk.AssessRisk(sample)
	}
	b.WriteString("\nRisk\n")
	b.WriteString(viewRisk(assessment))

	t := data.SustainabilityTrends
	b.WriteString("\nSustainability\n")
	fmt.Fprintf(&b, "  Groundwater %6.1f m (%s)   Crop yield %5.1f (%s)\n",
		t.GroundwaterLevel.Current, t.GroundwaterLevel.Trend, t.CropYieldIndex.Current, t.CropYieldIndex.Trend)
	fmt.Fprintf(&b, "  Temp anomaly %+.2f °C       Air quality %.0f (%s)\n",
		t.TemperatureAnomaly.Current, t.AirQualityIndex.Current, t.AirQualityIndex.Category)

	if m.recommendations != nil {
		b.WriteString("\n")
		b.WriteString(viewRecommendations(*m.recommendations))
	}
	if len(m.layers) > 0 {
		b.WriteString("\nMap layers: ")
		names := make([]string, 0, len(m.layers))
		for _, l := range m.layers {
			names = append(names, fmt.Sprintf("%s (%s)", l.Name, l.Unit))
		}
		b.WriteString(strings.Join(names, ", "))
		if !m.caps.Tiles.Available() {
			b.WriteString("\n" + helpStyle.Render("Map tiles are not available in the terminal."))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func viewRisk(a models.RiskAssessment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  Drought     %s\n", riskBar(a.DroughtRisk))
	fmt.Fprintf(&b, "  Flood       %s\n", riskBar(a.FloodRisk))
	fmt.Fprintf(&b, "  Heat stress %s\n", riskBar(a.HeatStress))
	fmt.Fprintf(&b, "  Overall     %s\n", riskBar(a.OverallRisk))
	fmt.Fprintf(&b, "  Confidence  %.0f%%\n", a.Confidence)
	return b.String()
}

func viewRecommendations(r models.RecommendationsResponse) string {
	var b strings.Builder
	b.WriteString("Recommendations")
	if r.IsFallback {
		b.WriteString(helpStyle.Render(" (general advice)"))
	}
	b.WriteString("\n")

	sections := []struct {
		name  string
		items []string
	}{
		{"Water", r.Recommendations.WaterManagement},
		{"Crops", r.Recommendations.CropSuggestions},
		{"Disaster", r.Recommendations.DisasterPrep},
		{"Carbon", r.Recommendations.CarbonTips},
	}
	for _, s := range sections {
		for _, item := range s.items {
			fmt.Fprintf(&b, "  %-8s • %s\n", s.name, fitText(item, 70))
		}
	}
	return b.String()
}

func (m appModel) viewScenario() string {
	var b strings.Builder
	b.WriteString(m.viewForm(m.scenario, "Simulate"))

	r := m.scenarioResult
	if r == nil {
		return b.String()
	}

	fmt.Fprintf(&b, "\n\nApplied: rainfall %s, temperature %s\n",
		r.Impact.RainfallChangeApplied, r.Impact.TemperatureChangeApplied)
	fmt.Fprintf(&b, "  Drought     %s (%s)\n", riskBar(r.ModifiedRisk.DroughtRisk), signed(r.Impact.DroughtRiskChange))
	fmt.Fprintf(&b, "  Flood       %s (%s)\n", riskBar(r.ModifiedRisk.FloodRisk), signed(r.Impact.FloodRiskChange))
	fmt.Fprintf(&b, "  Heat stress %s (%s)", riskBar(r.ModifiedRisk.HeatStress), signed(r.Impact.HeatStressChange))
	return b.String()
}

func (m appModel) viewChat() string {
	var b strings.Builder

	history := m.services.Chat.History()
	if len(history) == 0 {
		b.WriteString(helpStyle.Render("Ask anything about the weather, risks or farming here."))
		b.WriteString("\n")
	}
	for _, msg := range history {
		switch {
		case msg.Role == models.RoleUser:
			b.WriteString(userStyle.Render("You: "))
			b.WriteString(msg.Content)
		case msg.Error:
			b.WriteString(apologyStyle.Render("Assistant: " + msg.Content))
		default:
			b.WriteString(assistantStyle.Render("Assistant: " + msg.Content))
			if msg.Confidence != nil {
				b.WriteString(helpStyle.Render(fmt.Sprintf(" (confidence %.0f%%)", *msg.Confidence)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n> ")
	b.WriteString(m.chatInput.View())
	return b.String()
}

func (m appModel) chatHelp() string {
	help := "esc: back │ enter: send"
	if m.caps.Clipboard.Available() {
		help += " │ ctrl+y: copy reply"
	}
	if m.caps.SpeechIn.Available() {
		help += " │ ctrl+s: speak"
	}
	return help
}

// timelineSample returns the sample offset days from today: negative values
// index the historical window (oldest first) from its end, positive values
// the forecast (nearest first).
func timelineSample(data models.ClimateData, offset int) (models.WeatherSample, string) {
	switch {
	case offset < 0 && -offset <= len(data.Historical):
		k := -offset
		label := fmt.Sprintf("%d days ago", k)
		if k == 1 {
			label = "Yesterday"
		}
		return data.Historical[len(data.Historical)-k], label
	case offset > 0 && offset <= len(data.Forecast):
		label := fmt.Sprintf("In %d days", offset)
		if offset == 1 {
			label = "Tomorrow"
		}
		return data.Forecast[offset-1], label
	default:
		return data.Current, "Today"
	}
}
