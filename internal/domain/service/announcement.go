package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/calendar"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/birthday-bot/internal/domain/slack"
	"github.com/diegoclair/birthday-bot/internal/logger"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const (
	AnnouncementDaily   = "daily"
	AnnouncementMonthly = "monthly"
)

type announcementService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	channelID   string
	metrics     metrics.Recorder
	log         *logrus.Entry
}

func newAnnouncement(dm contract.DataManager, slackClient contract.SlackClient, channelID string, recorder metrics.Recorder) *announcementService {
	return &announcementService{
		dm:          dm,
		slackClient: slackClient,
		channelID:   channelID,
		metrics:     recorder,
		log:         logger.WithComponent("announcements"),
	}
}

// RunFiring sends the monthly digest on the first day of the month and then the daily
// greetings. A failing job does not prevent the other one.
func (s *announcementService) RunFiring(ctx context.Context, now time.Time) error {
	if s.channelID == "" {
		s.log.Warn("No announcement channel configured, skipping firing")
		return nil
	}

	var errs []error
	if now.Day() == 1 {
		if _, err := s.SendMonthly(ctx, now); err != nil {
			s.log.WithError(err).Error("Monthly digest failed")
			errs = append(errs, err)
		}
	}

	if _, err := s.SendDaily(ctx, now); err != nil {
		s.log.WithError(err).Error("Daily announcement failed")
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// SendDaily greets everyone born on today's month and day. Nothing is sent when nobody matches.
// Feb 29 birthdays are greeted on Mar 1 in non-leap years.
func (s *announcementService) SendDaily(ctx context.Context, today time.Time) (int, error) {
	var users []*entity.UserData
	for _, filter := range dailyFilters(today) {
		matched, err := s.dm.User().ListWithBirthday(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("failed to list today's birthdays: %w", err)
		}
		users = append(users, matched...)
	}

	if len(users) == 0 {
		s.log.WithField("date", today.Format(time.DateOnly)).Debug("No birthdays today")
		return 0, nil
	}

	text := slackcmd.DailyAnnouncement(users, today)
	if err := s.post(ctx, slack.MsgOptionText(text, false)); err != nil {
		return 0, err
	}

	s.metrics.RecordAnnouncement(AnnouncementDaily)
	s.log.WithFields(logrus.Fields{
		"date":  today.Format(time.DateOnly),
		"count": len(users),
	}).Info("Daily birthdays announced")

	return len(users), nil
}

// SendMonthly posts the digest for today's month, even when it is empty.
func (s *announcementService) SendMonthly(ctx context.Context, today time.Time) (int, error) {
	users, err := s.dm.User().ListWithBirthday(ctx, entity.BirthdayFilter{Month: int(today.Month())})
	if err != nil {
		return 0, fmt.Errorf("failed to list birthdays of %s: %w", today.Month(), err)
	}
	users = withCreator(users)

	text, blocks := slackcmd.MonthlyDigest(today.Month(), users)
	if err := s.post(ctx, slack.MsgOptionText(text, false), slack.MsgOptionBlocks(blocks...)); err != nil {
		return 0, err
	}

	s.metrics.RecordAnnouncement(AnnouncementMonthly)
	s.log.WithFields(logrus.Fields{
		"month": today.Month().String(),
		"count": len(users),
	}).Info("Monthly digest posted")

	return len(users), nil
}

func dailyFilters(today time.Time) []entity.BirthdayFilter {
	filters := []entity.BirthdayFilter{{Month: int(today.Month()), Day: today.Day()}}
	if today.Month() == time.March && today.Day() == 1 && calendar.DaysIn(time.February, today.Year()) == 28 {
		filters = append([]entity.BirthdayFilter{{Month: int(time.February), Day: 29}}, filters...)
	}
	return filters
}

func (s *announcementService) post(ctx context.Context, options ...slack.MsgOption) error {
	_, _, err := s.slackClient.PostMessageContext(ctx, s.channelID, options...)
	if err != nil {
		return domain.Transport(err, "Could not post to channel %s.", s.channelID)
	}
	return nil
}
