package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/birthday-bot/internal/commands"
	"github.com/diegoclair/birthday-bot/internal/domain/command"
	"github.com/diegoclair/birthday-bot/internal/domain/service"
	"github.com/diegoclair/birthday-bot/internal/handlers"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/diegoclair/birthday-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret = "test-signing-secret"
	TeamID        = "T123456789"
)

type ServiceMocks struct {
	BirthdayServiceMock *mocks.MockBirthdayService
	CarServiceMock      *mocks.MockCarService
	SlackClientMock     *mocks.MockSlackClient
}

// GetHandlerTest wires the real registry and dispatcher over mocked services.
func GetHandlerTest(t *testing.T, teamID string) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		BirthdayServiceMock: mocks.NewMockBirthdayService(ctrl),
		CarServiceMock:      mocks.NewMockCarService(ctrl),
		SlackClientMock:     mocks.NewMockSlackClient(ctrl),
	}

	services := &service.Instance{Birthday: m.BirthdayServiceMock, Car: m.CarServiceMock}
	registry := command.NewRegistry()
	require.NoError(t, commands.RegisterAll(registry, commands.Handlers(services, m.SlackClientMock)...))

	dispatcher := command.NewDispatcher(registry, metrics.Nop())
	handler = handlers.New(dispatcher, registry, m.SlackClientMock, SigningSecret, teamID)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, cmd, text, channelID, userID, teamID string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"general"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {cmd},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	req := signedRequest(t, "/slack/commands", form.Encode(), SigningSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// CreateEventRequest creates a signed Events API request carrying body as JSON.
func CreateEventRequest(t *testing.T, body, signingSecret string) *http.Request {
	t.Helper()

	req := signedRequest(t, "/slack/events", body, signingSecret)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func signedRequest(t *testing.T, path, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}
