package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/applink/pkg/domain/model"
)

// Handle logs err. Client mistakes such as an unknown app or a bad port are
// logged as warnings, everything else as errors.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)

	switch {
	case errors.Is(err, model.ErrAppNotFound),
		errors.Is(err, model.ErrInvalidPort),
		errors.Is(err, model.ErrInvalidPageURL):
		logger.Warn("request error", "error", err)
	default:
		logger.Error("application error", "error", err)
	}
}
