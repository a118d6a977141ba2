package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-climate-intel/models"
)

func (m appModel) cmdRestore() tea.Cmd {
	ctx, auth := m.ctx, m.services.Auth
	return func() tea.Msg {
		return restoredMsg{state: auth.Restore(ctx)}
	}
}

// cmdAuth runs one auth flow transition in the background.
func (m appModel) cmdAuth(transition func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return authDoneMsg{err: transition(ctx)}
	}
}

func (m appModel) cmdFetch(location models.Coordinate) tea.Cmd {
	ctx, climate := m.ctx, m.services.Climate
	return func() tea.Msg {
		data, err := climate.Fetch(ctx, location)
		return climateLoadedMsg{data: data, err: err}
	}
}

func (m appModel) cmdWaitForRefresh() tea.Cmd {
	updates := m.services.RefreshJob.Updates()
	return func() tea.Msg {
		data, ok := <-updates
		if !ok {
			return nil
		}
		return refreshedMsg{data: data}
	}
}

func (m appModel) cmdRecommendations() tea.Cmd {
	ctx, climate, language := m.ctx, m.services.Climate, m.language()
	return func() tea.Msg {
		resp, err := climate.Recommendations(ctx, language)
		return recommendationsMsg{resp: resp, err: err}
	}
}

func (m appModel) cmdLayers() tea.Cmd {
	ctx, climate := m.ctx, m.services.Climate
	return func() tea.Msg {
		layers, err := climate.Layers(ctx)
		return layersMsg{layers: layers, err: err}
	}
}

func (m appModel) cmdSend(text string) tea.Cmd {
	ctx, chat, language := m.ctx, m.services.Chat, m.language()
	return func() tea.Msg {
		reply, sent := chat.Send(ctx, text, language)
		return chatReplyMsg{reply: reply, sent: sent}
	}
}

func (m appModel) cmdCopyLastReply() tea.Cmd {
	history, clip := m.services.Chat.History(), m.caps.Clipboard
	return func() tea.Msg {
		for i := len(history) - 1; i >= 0; i-- {
			if history[i].Role == models.RoleAssistant {
				return copiedMsg{err: clip.Copy(history[i].Content)}
			}
		}
		return nil
	}
}

func (m appModel) cmdListen() tea.Cmd {
	ctx, speech, language := m.ctx, m.caps.SpeechIn, m.language()
	return func() tea.Msg {
		text, err := speech.Listen(ctx, language)
		return heardMsg{text: text, err: err}
	}
}
