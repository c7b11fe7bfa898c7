package service

import (
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/metrics"
)

type Instance struct {
	Birthday     contract.BirthdayService
	Car          contract.CarService
	Announcement contract.AnnouncementService
}

// NewInstance wires the services. channelID may be empty, in which case firings are no-ops.
func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, loc *time.Location, channelID string, recorder metrics.Recorder) *Instance {
	if recorder == nil {
		recorder = metrics.Nop()
	}

	return &Instance{
		Birthday:     newBirthday(dm, slackClient, loc),
		Car:          newCar(dm, slackClient),
		Announcement: newAnnouncement(dm, slackClient, channelID, recorder),
	}
}
