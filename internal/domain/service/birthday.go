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
	"github.com/diegoclair/birthday-bot/internal/logger"
	"github.com/sirupsen/logrus"
)

type birthdayService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	loc         *time.Location
	clock       func() time.Time
	log         *logrus.Entry
}

func newBirthday(dm contract.DataManager, slackClient contract.SlackClient, loc *time.Location) *birthdayService {
	return &birthdayService{
		dm:          dm,
		slackClient: slackClient,
		loc:         loc,
		clock:       time.Now,
		log:         logger.WithComponent("birthday_service"),
	}
}

func (s *birthdayService) Now() time.Time {
	return s.clock().In(s.loc)
}

func (s *birthdayService) Get(ctx context.Context, userID string) (*entity.UserData, error) {
	user, err := s.dm.User().Get(ctx, userID)
	if err != nil {
		return nil, storeError(fmt.Errorf("failed to get birthday of %s: %w", userID, err), "look up that birthday")
	}
	return user, nil
}

// List excludes rows that have no creator.
func (s *birthdayService) List(ctx context.Context) ([]*entity.UserData, error) {
	users, err := s.dm.User().ListWithBirthday(ctx, entity.BirthdayFilter{})
	if err != nil {
		return nil, storeError(fmt.Errorf("failed to list birthdays: %w", err), "list birthdays")
	}
	return withCreator(users), nil
}

func (s *birthdayService) Set(ctx context.Context, subjectID, callerID string, month, day int, year *int) (*entity.UserData, error) {
	if err := s.rejectBot(ctx, subjectID); err != nil {
		return nil, err
	}

	date, err := calendar.Validate(month, day, year, s.Now())
	if err != nil {
		return nil, err
	}

	var saved *entity.UserData
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.User().Get(ctx, subjectID)
		if err != nil {
			return fmt.Errorf("failed to get birthday of %s: %w", subjectID, err)
		}
		if existing == nil {
			existing = &entity.UserData{UserID: subjectID}
		}

		creator := existing.Creator()
		if callerID != subjectID && creator != "" && creator != callerID {
			if existing.IsVerified() {
				return domain.Permission("<@%s> has already verified their birthday, so you cannot suggest one.", subjectID)
			}
			return domain.Permission("<@%s> already suggested a birthday for <@%s>. Only they or <@%s> can change it.",
				creator, subjectID, subjectID)
		}

		existing.SetBirthday(date, callerID)
		if err := tx.User().UpsertBirthday(ctx, existing); err != nil {
			return fmt.Errorf("failed to upsert birthday of %s: %w", subjectID, err)
		}
		saved = existing
		return nil
	})
	if err != nil {
		return nil, storeError(err, "save that birthday")
	}

	s.log.WithFields(logrus.Fields{
		"user_id":    subjectID,
		"creator_id": callerID,
	}).Info("Birthday saved")

	return saved, nil
}

func (s *birthdayService) Remove(ctx context.Context, subjectID, callerID string) error {
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.User().Get(ctx, subjectID)
		if err != nil {
			return fmt.Errorf("failed to get birthday of %s: %w", subjectID, err)
		}
		if !existing.HasBirthday() {
			return domain.NotFound("No birthday information associated with <@%s>!", subjectID)
		}
		if callerID != subjectID && existing.IsVerified() {
			return domain.Permission("<@%s> has verified their birthday, so you cannot edit it!", subjectID)
		}

		if err := tx.User().ClearBirthday(ctx, subjectID); err != nil {
			return fmt.Errorf("failed to clear birthday of %s: %w", subjectID, err)
		}
		return nil
	})
	if err != nil {
		return storeError(err, "remove that birthday")
	}

	s.log.WithFields(logrus.Fields{
		"user_id":   subjectID,
		"caller_id": callerID,
	}).Info("Birthday removed")

	return nil
}

func (s *birthdayService) Verify(ctx context.Context, subjectID string) error {
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.User().Get(ctx, subjectID)
		if err != nil {
			return fmt.Errorf("failed to get birthday of %s: %w", subjectID, err)
		}
		if !existing.HasBirthday() {
			return domain.NotFound("No saved birthday to verify!")
		}
		if existing.IsVerified() {
			return domain.AlreadyVerified("Your birthday is already verified!")
		}

		creator := subjectID
		existing.CreatorID = &creator
		if err := tx.User().UpsertBirthday(ctx, existing); err != nil {
			return fmt.Errorf("failed to verify birthday of %s: %w", subjectID, err)
		}
		return nil
	})
	if err != nil {
		return storeError(err, "verify your birthday")
	}

	s.log.WithField("user_id", subjectID).Info("Birthday verified")
	return nil
}

// rejectBot fails for bot users and Slackbot.
func (s *birthdayService) rejectBot(ctx context.Context, userID string) error {
	return rejectBot(ctx, s.slackClient, userID, "Bots can't have birthdays!")
}

func rejectBot(ctx context.Context, client contract.SlackClient, userID, reason string) error {
	if userID == domain.SlackbotUserID {
		return domain.Validation("<@%s> is a bot! %s", userID, reason)
	}

	info, err := client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return domain.Transport(err, "Could not look up <@%s> on Slack. Please try again later.", userID)
	}
	if info.IsBot || info.IsAppUser {
		return domain.Validation("<@%s> is a bot! %s", userID, reason)
	}
	return nil
}

// storeError passes user errors through and hides everything else behind a transport error.
func storeError(err error, action string) error {
	var ue *domain.UserError
	if err == nil || errors.As(err, &ue) {
		return err
	}
	return domain.Transport(err, "Could not %s right now. Please try again later.", action)
}

func withCreator(users []*entity.UserData) []*entity.UserData {
	out := make([]*entity.UserData, 0, len(users))
	for _, u := range users {
		if u.Creator() != "" {
			out = append(out, u)
		}
	}
	return out
}
