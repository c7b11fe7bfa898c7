package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain/command"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/birthday-bot/internal/domain/slack"
	"github.com/diegoclair/birthday-bot/internal/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const (
	AppName = "Birthday Bot"

	wrongWorkspaceText = "This bot is not available in this workspace."
)

var errBadSignature = errors.New("invalid slack signature")

type SlackHandler struct {
	dispatcher    *command.Dispatcher
	registry      *command.Registry
	slackClient   contract.SlackClient
	signingSecret string
	teamID        string
	limiters      *userLimiters
	log           *logrus.Entry
}

// New builds the Slack endpoints. teamID limits requests to one workspace when not empty.
func New(dispatcher *command.Dispatcher, registry *command.Registry, slackClient contract.SlackClient, signingSecret, teamID string) *SlackHandler {
	return &SlackHandler{
		dispatcher:    dispatcher,
		registry:      registry,
		slackClient:   slackClient,
		signingSecret: signingSecret,
		teamID:        teamID,
		limiters:      newUserLimiters(commandRate, commandBurst, limiterTTL),
		log:           logger.WithComponent("slack_handler"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, err := h.verify(r); err != nil {
		h.log.WithError(err).Warn("Rejected slash command")
		w.WriteHeader(statusFor(err))
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		h.log.WithError(err).Error("Could not parse slash command")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !h.allowedTeam(s.TeamID) {
		h.log.WithField("team_id", s.TeamID).Warn("Slash command from another workspace")
		writeJSON(w, &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: wrongWorkspaceText})
		return
	}

	if !h.limiters.allow(s.UserID, time.Now()) {
		h.log.WithField("user_id", s.UserID).Warn("Slash command rate limited")
		writeJSON(w, &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: rateLimitedText})
		return
	}

	in := &command.Interaction{
		ID:        uuid.NewString(),
		Name:      strings.TrimPrefix(s.Command, "/"),
		Args:      command.Tokenize(s.Text),
		CallerID:  s.UserID,
		ChannelID: s.ChannelID,
		TeamID:    s.TeamID,
		At:        time.Now(),
	}

	reply := h.dispatcher.Dispatch(r.Context(), in)
	writeJSON(w, toMsg(reply))
}

// HandleManifest serves the app manifest with the registered commands.
func (h *SlackHandler) HandleManifest(w http.ResponseWriter, r *http.Request) {
	scheme := "https"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	baseURL := fmt.Sprintf("%s://%s", scheme, r.Host)

	writeJSON(w, slackcmd.Manifest(AppName, h.registry.Declarations(), baseURL))
}

// verify checks the signing secret and leaves the body readable for the next parser.
func (h *SlackHandler) verify(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadSignature, err)
	}
	if _, err := verifier.Write(body); err != nil {
		return nil, fmt.Errorf("failed to hash body: %w", err)
	}
	if err := verifier.Ensure(); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadSignature, err)
	}

	return body, nil
}

func (h *SlackHandler) allowedTeam(teamID string) bool {
	return h.teamID == "" || h.teamID == teamID
}

func toMsg(reply *command.Reply) *slack.Msg {
	msg := &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         reply.Text,
	}
	if reply.Ephemeral {
		msg.ResponseType = slack.ResponseTypeEphemeral
	}
	if len(reply.Blocks) > 0 {
		msg.Blocks = slack.Blocks{BlockSet: reply.Blocks}
	}
	return msg
}

func statusFor(err error) int {
	if errors.Is(err, errBadSignature) {
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Error("Failed to write response")
	}
}
