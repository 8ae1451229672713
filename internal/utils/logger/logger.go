package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"

	"phonebook/internal/app/phonebook/config"
	"phonebook/internal/utils/logger/handlers/slogpretty"
)

// New создает логгер для окружения env. Логи пишутся в stderr,
// чтобы не смешиваться с диалогом в stdout.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stderr)
}

// NewWithWriter создает логгер для окружения env с выводом в w.
//
//	local - цветной человекочитаемый вывод, DEBUG
//	dev   - JSON, DEBUG
//	prod  - JSON, INFO (по умолчанию для неизвестных значений)
func NewWithWriter(env string, w io.Writer) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return setupPrettySlog(w)
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

func setupPrettySlog(w io.Writer) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	return slog.New(opts.NewPrettyHandler(w))
}

// Err оборачивает ошибку в атрибут лога.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
