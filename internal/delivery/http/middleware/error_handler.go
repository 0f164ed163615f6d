package middleware

import (
	"errors"

	"talentmatch/internal/pkg/response"
	"talentmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ErrorMiddleware maps usecase sentinels onto HTTP statuses in one place, so
// handlers just return errors. It also recovers panics: anything unmapped is
// a 500, logged with its cause, and the client only sees a generic message.
type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(logger *zap.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if m.logger != nil {
					m.logger.Error("panic recovered",
						zap.String("method", c.Method()),
						zap.String("path", c.Path()),
						zap.Any("panic", r))
				}
				err = response.Error(c, fiber.StatusInternalServerError, "internal server error")
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := m.normalize(c, err)
		return response.Error(c, status, msg)
	}
}

func (m *ErrorMiddleware) normalize(c fiber.Ctx, err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrPersonNotFound),
		errors.Is(err, usecase.ErrOfferNotFound),
		errors.Is(err, usecase.ErrSkillNotFound),
		errors.Is(err, usecase.ErrRelationNotFound):
		return fiber.StatusNotFound, err.Error()

	case errors.Is(err, usecase.ErrInvalidQuery):
		return fiber.StatusBadRequest, err.Error()

	case errors.Is(err, usecase.ErrEngineBusy):
		return fiber.StatusConflict, "engine busy, retry shortly"

	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return fiber.StatusServiceUnavailable, "upstream unavailable"
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	if m.logger != nil {
		m.logger.Error("unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return fiber.StatusInternalServerError, "internal server error"
}
