package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"

	"phonebook/internal/domain/contact"
)

// Edit заменяет строку с номером id на rec, остальные строки копируются байт в байт.
// Если строки с таким номером нет, файл переписывается без изменений.
//
// Новое содержимое пишется во временный файл рядом с каталогом, затем текущий
// каталог переименовывается в резервную копию, а временный файл занимает его место.
// Резервная копия остается после успешной правки.
func (s *Store) Edit(id string, rec contact.Record) error {
	if id == "" {
		return fmt.Errorf("%w: empty", contact.ErrInvalidID)
	}
	if err := s.EnsureCreated(); err != nil {
		return err
	}

	src, err := s.open()
	if err != nil {
		return err
	}
	defer src.Close()

	dir, name := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(s.fs, dir, name+".tmp*")
	if err != nil {
		return fmt.Errorf("ошибка создания временного файла: %w", err)
	}
	tmpPath := tmp.Name()

	replaced, err := rewrite(src, tmp, id, rec)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("ошибка перезаписи каталога: %w", err)
	}
	_ = src.Close()

	if err := s.swap(tmpPath); err != nil {
		return err
	}

	s.log.Debug("catalog rewritten", "op", "edit", "id", id, "replaced", replaced, "backup", s.BackupPath())
	return nil
}

// rewrite копирует строки из r в w, подменяя строку с номером id.
// Завершители строк сохраняются как есть, включая отсутствующий в конце файла.
func rewrite(r io.Reader, w io.Writer, id string, rec contact.Record) (bool, error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	replaced := false
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if line != "" {
			out := line
			if strconv.Itoa(n) == id {
				out = rec.String() + "\n"
				replaced = true
			}
			if _, werr := bw.WriteString(out); werr != nil {
				return false, werr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return false, err
		}
	}

	return replaced, bw.Flush()
}

// swap ставит временный файл на место каталога, сохраняя прежнюю версию в резервной копии.
func (s *Store) swap(tmpPath string) error {
	backup := s.BackupPath()

	if err := s.fs.Remove(backup); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("ошибка удаления старой резервной копии: %w", err)
	}
	if err := s.fs.Rename(s.path, backup); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("ошибка создания резервной копии: %w", err)
	}
	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		if rerr := s.fs.Rename(backup, s.path); rerr != nil {
			s.log.Error("catalog restore failed", "backup", backup, "error", rerr)
			return fmt.Errorf("ошибка замены каталога, данные остались в %s: %w", backup, errors.Join(err, rerr))
		}
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("ошибка замены каталога: %w", err)
	}

	// синхронизация директории после rename, ошибки не критичны
	if d, _ := s.fs.Open(filepath.Dir(s.path)); d != nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
