package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	"github.com/diegoclair/birthday-bot/internal/logger"
	"github.com/sirupsen/logrus"
)

type carService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	log         *logrus.Entry
}

func newCar(dm contract.DataManager, slackClient contract.SlackClient) *carService {
	return &carService{
		dm:          dm,
		slackClient: slackClient,
		log:         logger.WithComponent("car_service"),
	}
}

func (s *carService) Get(ctx context.Context, userID string) (*entity.UserData, error) {
	user, err := s.dm.User().Get(ctx, userID)
	if err != nil {
		return nil, storeError(fmt.Errorf("failed to get car info of %s: %w", userID, err), "look up car ownership")
	}
	return user, nil
}

func (s *carService) List(ctx context.Context) ([]*entity.UserData, error) {
	users, err := s.dm.Car().ListWithCarInfo(ctx)
	if err != nil {
		return nil, storeError(fmt.Errorf("failed to list car info: %w", err), "list car ownership")
	}
	return users, nil
}

func (s *carService) Set(ctx context.Context, subjectID string, hasCar bool) error {
	if err := rejectBot(ctx, s.slackClient, subjectID, "Bots can't have cars!"); err != nil {
		return err
	}

	if err := s.dm.Car().SetHasCar(ctx, subjectID, hasCar); err != nil {
		return storeError(fmt.Errorf("failed to set car info of %s: %w", subjectID, err), "save car ownership")
	}

	s.log.WithFields(logrus.Fields{
		"user_id": subjectID,
		"has_car": hasCar,
	}).Info("Car ownership saved")
	return nil
}

func (s *carService) Remove(ctx context.Context, subjectID, callerID string) error {
	if callerID != subjectID {
		return domain.Permission("Only <@%s> can remove their car information.", subjectID)
	}

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.User().Get(ctx, subjectID)
		if err != nil {
			return fmt.Errorf("failed to get car info of %s: %w", subjectID, err)
		}
		if existing == nil || existing.HasCar == nil {
			return domain.NotFound("No car information associated with <@%s>!", subjectID)
		}
		if err := tx.Car().ClearHasCar(ctx, subjectID); err != nil {
			return fmt.Errorf("failed to clear car info of %s: %w", subjectID, err)
		}
		return nil
	})
	if err != nil {
		return storeError(err, "remove car ownership")
	}

	s.log.WithField("user_id", subjectID).Info("Car ownership removed")
	return nil
}
