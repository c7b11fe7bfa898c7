package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/logger"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Dispatcher routes interactions to registered handlers. It always produces exactly one reply.
type Dispatcher struct {
	registry *Registry
	metrics  metrics.Recorder
	log      *logrus.Entry
}

func NewDispatcher(registry *Registry, recorder metrics.Recorder) *Dispatcher {
	if recorder == nil {
		recorder = metrics.Nop()
	}
	return &Dispatcher{
		registry: registry,
		metrics:  recorder,
		log:      logger.WithComponent("dispatcher"),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, in *Interaction) (reply *Reply) {
	start := time.Now()
	outcome := metrics.OutcomeOK
	log := d.log.WithFields(logrus.Fields{
		"command":        in.Name,
		"interaction_id": in.ID,
		"user_id":        in.CallerID,
	})

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", fmt.Sprint(r)).Error("Command handler panicked")
			outcome = metrics.OutcomePanic
			reply = ErrorReply(nil)
		}
		d.metrics.RecordCommand(in.Name, outcome)
		d.metrics.RecordCommandLatency(in.Name, time.Since(start))
	}()

	h, ok := d.registry.Lookup(in.Name)
	if !ok {
		log.Warn("No handler registered for command")
		outcome = metrics.OutcomeNotImplemented
		return NotImplementedReply()
	}

	decl := h.Declaration()
	if err := Bind(decl, in); err != nil {
		switch {
		case errors.Is(err, errMissingSubcommand):
			return &Reply{Text: decl.Help(), Ephemeral: true}
		case errors.Is(err, errUnknownSubcommand):
			outcome = metrics.OutcomeNotImplemented
			return NotImplementedReply()
		default:
			log.WithError(err).Info("Could not bind command options")
			outcome = metrics.OutcomeError
			return ErrorReply(err)
		}
	}
	log = log.WithField("subcommand", in.Subcommand)

	reply, err := h.Handle(ctx, in)
	if err != nil {
		outcome = metrics.OutcomeError
		if isUserFacing(err) {
			log.WithError(err).Info("Command rejected")
		} else {
			log.WithError(err).Error("Command failed")
		}
		return ErrorReply(err)
	}

	if reply == nil {
		log.Warn("Handler returned no reply")
		return &Reply{Text: "Done.", Ephemeral: true}
	}

	log.Debug("Command handled")
	return reply
}

// ErrorReply renders err for the caller only. A nil or unknown error gets a generic message.
func ErrorReply(err error) *Reply {
	msg := domain.UnknownErrorText
	if err != nil {
		msg = domain.UserMessage(err)
	}
	return &Reply{
		Text:      fmt.Sprintf("*%s*\n%s", domain.ErrorHeading, msg),
		Ephemeral: true,
	}
}

func NotImplementedReply() *Reply {
	return &Reply{Text: domain.NotImplementedText, Ephemeral: true}
}

func isUserFacing(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrPermission) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrAlreadyVerified)
}
