package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
	"github.com/police-department/evidence-manager/utils"
)

const defaultAdminUserName = "admin"

type SeedUseCase struct {
	officerUseCase OfficerUseCase
	readFile       func(name string) ([]byte, error)
}

// SeedOfficers creates the configured administrator and the officers of the seed file.
// Officers that already exist are left untouched.
func (usecase *SeedUseCase) SeedOfficers(ctx context.Context, configuration models.SeedConfiguration) error {
	officers, err := usecase.officersToSeed(configuration)
	if err != nil {
		return err
	}

	logger := utils.LoggerFromContext(ctx)
	for _, officer := range officers {
		created, err := usecase.seedOfficer(ctx, officer)
		if err != nil {
			return errors.Wrapf(err, "error seeding officer %s", officer.Email)
		}
		if created {
			logger.InfoContext(ctx, "seeded officer", slog.String("email", officer.Email), slog.String("type", officer.Type))
		}
	}
	return nil
}

func (usecase *SeedUseCase) officersToSeed(configuration models.SeedConfiguration) ([]models.SeedOfficer, error) {
	var officers []models.SeedOfficer
	if configuration.CreateAdminEmail != "" {
		officers = append(officers, models.SeedOfficer{
			UserName: defaultAdminUserName,
			Email:    configuration.CreateAdminEmail,
			Password: configuration.CreateAdminPassword,
			Type:     models.OfficerTypeAdministrator.String(),
		})
	}

	if configuration.SeedOfficersFile == "" {
		return officers, nil
	}
	content, err := usecase.readFile(configuration.SeedOfficersFile)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read seed file %s", configuration.SeedOfficersFile)
	}
	var fromFile []models.SeedOfficer
	if err := yaml.Unmarshal(content, &fromFile); err != nil {
		return nil, errors.Wrapf(err, "could not parse seed file %s", configuration.SeedOfficersFile)
	}
	return append(officers, fromFile...), nil
}

func (usecase *SeedUseCase) seedOfficer(ctx context.Context, officer models.SeedOfficer) (bool, error) {
	input := models.CreateOfficerInput{
		UserName: strings.TrimSpace(officer.UserName),
		Email:    strings.ToLower(strings.TrimSpace(officer.Email)),
		Password: officer.Password,
		Type:     officer.Type,
	}
	fieldErrors, err := validateInput(input)
	if err != nil {
		return false, err
	}
	if fieldErrors != nil {
		return false, errors.Wrap(models.BadParameterError, fmt.Sprintf("invalid seed officer: %s", fieldErrors.Error()))
	}

	created := true
	err = usecase.officerUseCase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		_, err := usecase.officerUseCase.repository.GetOfficerByEmail(ctx, tx, input.Email)
		if err == nil {
			created = false
			return models.ErrIgnoreRollBackError
		} else if !errors.Is(err, models.NotFoundError) {
			return err
		}

		_, err = usecase.officerUseCase.createOfficer(ctx, tx, input)
		// ignore officer already added
		if repositories.IsUniqueViolationError(err) {
			created = false
			return models.ErrIgnoreRollBackError
		}
		return err
	})
	return created, err
}
