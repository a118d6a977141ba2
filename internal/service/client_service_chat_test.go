package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-climate-intel/internal/adapter"
	"github.com/MKhiriev/go-climate-intel/internal/app"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/mock"
	"github.com/MKhiriev/go-climate-intel/models"
)

func newTestRelay(t *testing.T) (ChatRelay, *mock.MockServerAdapter) {
	t.Helper()
	server := mock.NewMockServerAdapter(gomock.NewController(t))
	return NewChatRelay(server, logger.Nop()), server
}

func TestChatRelay_Send(t *testing.T) {
	relay, server := newTestRelay(t)
	ctx := context.Background()

	server.EXPECT().Chat(ctx, models.ChatRequest{Message: "Will it rain?", Language: models.LanguageEnglish}).
		Return(models.ChatResponse{
			Response:    "Light showers expected.",
			Confidence:  92.5,
			Assumptions: []string{"a"},
			References:  []string{"r"},
		}, nil)

	reply, ok := relay.Send(ctx, "  Will it rain?  ", "")
	require.True(t, ok)

	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Equal(t, "Light showers expected.", reply.Content)
	require.NotNil(t, reply.Confidence)
	assert.Equal(t, 92.5, *reply.Confidence)
	assert.False(t, reply.Error)

	history := relay.History()
	require.Len(t, history, 2)
	assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Content: "Will it rain?"}, history[0])
	assert.Equal(t, reply, history[1])
}

func TestChatRelay_Send_FailureYieldsApology(t *testing.T) {
	tests := []struct {
		name     string
		language models.Language
		want     string
	}{
		{"english", models.LanguageEnglish, apologyEnglish},
		{"tamil", models.LanguageTamil, apologyTamil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay, server := newTestRelay(t)
			server.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(models.ChatResponse{}, fmt.Errorf("%w: %s", adapter.ErrBadGateway, app.MsgAIServiceError))

			reply, ok := relay.Send(context.Background(), "hello", tt.language)
			require.True(t, ok)

			assert.True(t, reply.Error)
			assert.Equal(t, tt.want, reply.Content)
			assert.Nil(t, reply.Confidence)
			assert.Len(t, relay.History(), 2)
		})
	}
}

func TestChatRelay_Send_BlankIsIgnored(t *testing.T) {
	relay, _ := newTestRelay(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, ok := relay.Send(context.Background(), text, models.LanguageEnglish)
		assert.False(t, ok)
	}
	assert.Empty(t, relay.History())
}

func TestChatRelay_HistoryIsACopyAndResetEmpties(t *testing.T) {
	relay, server := newTestRelay(t)
	server.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(models.ChatResponse{Response: "ok"}, nil)

	_, ok := relay.Send(context.Background(), "hi", models.LanguageEnglish)
	require.True(t, ok)

	history := relay.History()
	history[0].Content = "tampered"
	assert.Equal(t, "hi", relay.History()[0].Content)

	relay.Reset()
	assert.Empty(t, relay.History())
}

func TestApology(t *testing.T) {
	assert.Equal(t, apologyEnglish, Apology(models.LanguageEnglish))
	assert.Equal(t, apologyEnglish, Apology(""))
	assert.Equal(t, apologyTamil, Apology(models.LanguageTamil))
}
