package phonebook

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"golang.org/x/exp/slog"

	"phonebook/internal/app/phonebook/config"
	"phonebook/internal/infrastructure/storage/catalog"
)

// App - консольный справочник поверх файлового каталога.
type App struct {
	config *config.Config
	log    *slog.Logger
	store  *catalog.Store
	in     *bufio.Reader
	out    io.Writer
	colors palette
}

type Option func(*options)

type options struct {
	in    io.Reader
	out   io.Writer
	fs    afero.Fs
	color bool
}

// WithInput задает источник ввода пользователя, по умолчанию stdin.
func WithInput(r io.Reader) Option {
	return func(o *options) { o.in = r }
}

// WithOutput задает вывод диалога, по умолчанию stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithFs подменяет файловую систему каталога.
func WithFs(fsys afero.Fs) Option {
	return func(o *options) { o.fs = fsys }
}

// WithColor включает цветной вывод.
func WithColor(enabled bool) Option {
	return func(o *options) { o.color = enabled }
}

func New(cfg *config.Config, log *slog.Logger, opts ...Option) *App {
	o := options{
		in:  os.Stdin,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	storeOpts := []catalog.Option{
		catalog.WithBackupSuffix(cfg.BackupSuffix),
		catalog.WithLogger(log),
	}
	if o.fs != nil {
		storeOpts = append(storeOpts, catalog.WithFs(o.fs))
	}

	return &App{
		config: cfg,
		log:    log,
		store:  catalog.New(cfg.CatalogPath, storeOpts...),
		in:     bufio.NewReader(o.in),
		out:    o.out,
		colors: newPalette(o.color),
	}
}

// Store возвращает хранилище каталога.
func (a *App) Store() *catalog.Store {
	return a.store
}

// PageSize возвращает размер страницы из конфигурации.
func (a *App) PageSize() int {
	return a.config.PageSize
}

type palette struct {
	header  *color.Color
	info    *color.Color
	warn    *color.Color
	success *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		header:  mk(color.FgCyan, color.Bold),
		info:    mk(color.FgBlue),
		warn:    mk(color.FgYellow),
		success: mk(color.FgGreen),
	}
}

type ctxKey struct{}

// WithContext кладет приложение в контекст команды.
func WithContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

// FromContext достает приложение из контекста команды.
func FromContext(ctx context.Context) (*App, bool) {
	if ctx == nil {
		return nil, false
	}
	app, ok := ctx.Value(ctxKey{}).(*App)
	return app, ok && app != nil
}
