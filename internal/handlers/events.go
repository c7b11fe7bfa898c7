package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

const mentionReply = "Hi!"

// HandleEvents answers URL verification and greets people who mention the bot.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := h.verify(r)
	if err != nil {
		h.log.WithError(err).Warn("Rejected event")
		w.WriteHeader(statusFor(err))
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.log.WithError(err).Error("Could not parse event")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))

	case slackevents.CallbackEvent:
		if !h.allowedTeam(event.TeamID) {
			h.log.WithField("team_id", event.TeamID).Warn("Event from another workspace")
			w.WriteHeader(http.StatusOK)
			return
		}

		if mention, ok := event.InnerEvent.Data.(*slackevents.AppMentionEvent); ok {
			h.handleMention(r, mention)
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}

func (h *SlackHandler) handleMention(r *http.Request, ev *slackevents.AppMentionEvent) {
	if ev.BotID != "" {
		return
	}

	_, _, err := h.slackClient.PostMessageContext(r.Context(), ev.Channel, slack.MsgOptionText(mentionReply, false))
	if err != nil {
		h.log.WithError(err).WithField("channel_id", ev.Channel).Error("Could not reply to mention")
	}
}
