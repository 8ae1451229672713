// Package catalog хранит записи справочника в текстовом файле:
// одна запись на строку, поля разделены ';'.
//
// Идентификатор записи - номер ее строки в файле на момент чтения.
// Индекса в памяти нет, каждая операция открывает файл, проходит его и закрывает.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/exp/slog"

	"phonebook/internal/domain/contact"
)

const (
	DefaultPageSize     = 10
	DefaultBackupSuffix = ".bak"

	filePerm = 0o644
	dirPerm  = 0o755
)

// Store - файловое хранилище записей.
type Store struct {
	fs           afero.Fs
	path         string
	backupSuffix string
	log          *slog.Logger
}

type Option func(*Store)

// WithFs подменяет файловую систему, по умолчанию используется ОС.
func WithFs(fsys afero.Fs) Option {
	return func(s *Store) {
		s.fs = fsys
	}
}

// WithBackupSuffix задает суффикс резервной копии, которая остается после правки.
func WithBackupSuffix(suffix string) Option {
	return func(s *Store) {
		if suffix != "" {
			s.backupSuffix = suffix
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New создает хранилище для файла path. Файл не создается и не открывается.
func New(path string, opts ...Option) *Store {
	s := &Store{
		fs:           afero.NewOsFs(),
		path:         path,
		backupSuffix: DefaultBackupSuffix,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "catalog", "path", path)
	return s
}

// Path возвращает путь к файлу каталога.
func (s *Store) Path() string {
	return s.path
}

// BackupPath возвращает путь к резервной копии, которую оставляет Edit.
func (s *Store) BackupPath() string {
	return s.path + s.backupSuffix
}

// Exists сообщает, есть ли файл каталога. Ничего не меняет на диске.
func (s *Store) Exists() (bool, error) {
	ok, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки файла каталога: %w", err)
	}
	return ok, nil
}

// EnsureCreated создает пустой файл каталога, если его нет.
func (s *Store) EnsureCreated() error {
	ok, err := s.Exists()
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("ошибка создания директории каталога: %w", err)
		}
	}

	f, err := s.fs.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return fmt.Errorf("ошибка создания файла каталога: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ошибка создания файла каталога: %w", err)
	}

	s.log.Debug("catalog created")
	return nil
}

// Append дописывает запись новой строкой в конец файла.
// Если файла нет, он создается. Существующие строки не трогаются.
func (s *Store) Append(rec contact.Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("ошибка создания директории каталога: %w", err)
		}
	}

	f, err := s.fs.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return fmt.Errorf("ошибка открытия каталога: %w", err)
	}

	if _, err := f.WriteString(rec.String() + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("ошибка записи в каталог: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ошибка записи в каталог: %w", err)
	}

	s.log.Debug("record appended", "op", "append")
	return nil
}

// open открывает каталог на чтение.
func (s *Store) open() (afero.File, error) {
	f, err := s.fs.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, contact.ErrCatalogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия каталога: %w", err)
	}
	return f, nil
}
