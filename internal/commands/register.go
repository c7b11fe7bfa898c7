// Package commands holds the slash command handlers and their registration.
package commands

import (
	"fmt"

	"github.com/diegoclair/birthday-bot/internal/domain/command"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/service"
)

// Handlers lists every command handler in registration order.
func Handlers(services *service.Instance, slackClient contract.SlackClient) []command.Handler {
	return []command.Handler{
		NewBirthday(services.Birthday),
		NewCar(services.Car),
		NewPing(slackClient),
	}
}

// RegisterAll registers handlers under their declared names.
func RegisterAll(registry *command.Registry, handlers ...command.Handler) error {
	for _, h := range handlers {
		name := h.Declaration().Name
		if err := registry.Register(name, h); err != nil {
			return fmt.Errorf("failed to register /%s: %w", name, err)
		}
	}
	return nil
}
