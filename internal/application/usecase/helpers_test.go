package usecase_test

import (
	"github.com/rs/zerolog"

	"github.com/showtech/camarim/pkg/logger"
)

func nopLogger() *logger.Logger {
	return logger.Sub(zerolog.Nop())
}
