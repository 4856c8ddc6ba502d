package checkpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	metadataFile     = "ensemble.rec"
	tempSuffix       = ".tmp"
	individualPrefix = "individual-"
	recordSuffix     = ".rec"
)

// RunName is the deterministic directory name of one training run.
func RunName(dataset string, seed int64, tag string) string {
	return fmt.Sprintf("%s-%d-%s", dataset, seed, tag)
}

// Store reads and writes the record files of one run directory.
type Store struct {
	dir string
}

// Open binds a store to root/run. No I/O happens until the first call.
func Open(root, run string) *Store {
	return &Store{dir: filepath.Join(root, run)}
}

// Dir returns the run directory.
func (s *Store) Dir() string { return s.dir }

// IndividualName is the file name of member pos of channel ch.
func IndividualName(ch, pos int) string {
	return fmt.Sprintf("%s%d-%d%s", individualPrefix, ch, pos, recordSuffix)
}

// Exists reports whether ensemble metadata is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(filepath.Join(s.dir, metadataFile))
	return err == nil
}

// SaveIndividual persists member pos of channel ch.
func (s *Store) SaveIndividual(ch, pos int, rec *IndividualRecord) error {
	return s.write(IndividualName(ch, pos), KindIndividual, rec)
}

// SaveEnsemble replaces the metadata file atomically.
func (s *Store) SaveEnsemble(rec *EnsembleRecord) error {
	return s.write(metadataFile, KindEnsemble, rec)
}

// LoadEnsemble reads the metadata file.
func (s *Store) LoadEnsemble() (*EnsembleRecord, error) {
	rec := new(EnsembleRecord)
	if err := s.read(metadataFile, KindEnsemble, rec); err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil, ErrNoMetadata
		}
		return nil, err
	}
	return rec, nil
}

// LoadIndividual reads member pos of channel ch.
func (s *Store) LoadIndividual(ch, pos int) (*IndividualRecord, error) {
	rec := new(IndividualRecord)
	if err := s.read(IndividualName(ch, pos), KindIndividual, rec); err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrap(ErrMissingRecord, IndividualName(ch, pos))
		}
		return nil, err
	}
	return rec, nil
}

// Sweep makes the on-disk member set equal the referenced one: it fails if
// a referenced file is missing and deletes member files (and stale temp
// files) that counts does not reference. Returns the removed file names.
func (s *Store) Sweep(counts []int) ([]string, error) {
	want := make(map[string]bool)
	for ch, n := range counts {
		for pos := 0; pos < n; pos++ {
			want[IndividualName(ch, pos)] = true
		}
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "checkpoint: list %s", s.dir)
	}

	var removed []string
	for _, e := range entries {
		name := e.Name()
		stale := strings.HasSuffix(name, tempSuffix) ||
			(strings.HasPrefix(name, individualPrefix) && strings.HasSuffix(name, recordSuffix) && !want[name])
		if want[name] {
			delete(want, name)
		}
		if !stale {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return removed, errors.Wrapf(err, "checkpoint: remove %s", name)
		}
		removed = append(removed, name)
	}

	for name := range want {
		return removed, errors.Wrap(ErrMissingRecord, name)
	}
	return removed, nil
}

// Remove deletes every member file, the metadata file, then the directory.
func (s *Store) Remove() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "checkpoint: list %s", s.dir)
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, individualPrefix) && !strings.HasPrefix(name, metadataFile) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return errors.Wrapf(err, "checkpoint: remove %s", name)
		}
	}
	return errors.Wrapf(os.Remove(s.dir), "checkpoint: remove %s", s.dir)
}

// write encodes into name+".tmp" and renames it over name.
func (s *Store) write(name string, kind Kind, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "checkpoint: mkdir %s", s.dir)
	}
	final := filepath.Join(s.dir, name)
	tmp := final + tempSuffix

	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "checkpoint: create %s", tmp)
	}
	if err := Encode(f, kind, v); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "checkpoint: close %s", tmp)
	}
	return errors.Wrapf(os.Rename(tmp, final), "checkpoint: rename %s", tmp)
}

func (s *Store) read(name string, kind Kind, v any) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "checkpoint: open %s", path)
	}
	defer f.Close()

	return errors.Wrap(Decode(f, kind, v), name)
}
