package impl

import (
	"log/slog"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
)

// providerError keeps AppErrors raised by an adapter and replaces anything else with fallback,
// logging the original cause.
func providerError(logger *slog.Logger, err error, fallback *domainerrors.BaseError, msg string) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	logger.Error(msg, slog.Any("error", err))

	return errors.Wrap(fallback, err.Error())
}

// accountWriteError maps write-time uniqueness violations onto the same errors the pre-checks report.
func accountWriteError(err error) error {
	switch {
	case errors.IsAny(err, repository.ErrDuplicateEmail, repository.ErrDuplicateMobile):
		return errors.Wrap(domainerrors.ErrAccountExists, err.Error())
	case errors.Is(err, repository.ErrDuplicateDevice):
		return errors.Wrap(domainerrors.ErrDeviceTaken, err.Error())
	case errors.Is(err, repository.ErrDuplicateExternalID):
		return errors.Wrap(domainerrors.ErrConflict.WithMessage("Identity already linked to another account"), err.Error())
	case errors.Is(err, repository.ErrDuplicate):
		return errors.Wrap(domainerrors.ErrConflict, err.Error())
	case errors.Is(err, repository.ErrAccountNotFound):
		return errors.Wrap(domainerrors.ErrAccountNotFound, err.Error())
	case errors.Is(err, repository.ErrIllegalAccountState):
		return errors.Wrap(domainerrors.ErrIllegalTransition, err.Error())
	default:
		return errors.Wrap(err, "failed to save account")
	}
}

// findAccountError maps a lookup failure, treating absence as notFound.
func findAccountError(err error, notFound error) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return notFound
	}

	return errors.Wrap(err, "failed to find account")
}
