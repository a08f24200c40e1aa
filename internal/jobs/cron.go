package jobs

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// newCron returns a seconds-precision scheduler whose runs never overlap and
// whose panics are recovered and logged.
func newCron(logger *slog.Logger) *cron.Cron {
	cronLogger := slogCronLogger{logger: logger}
	return cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLogger),
		cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		),
	)
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
