package yaml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/trastodon/internal/domain"
	"github.com/bnema/trastodon/internal/ports"
	yaml "gopkg.in/yaml.v3"
)

const (
	stateFileMode = 0o600
	stateDirMode  = 0o700
	lockSuffix    = ".lock"
)

type Repository struct {
	statePath string
}

var _ ports.StateRepository = (*Repository)(nil)

func NewRepository(statePath string) (*Repository, error) {
	if statePath == "" {
		return nil, errors.New("state path is empty")
	}

	absPath, err := filepath.Abs(statePath)
	if err != nil {
		return nil, fmt.Errorf("resolve state path: %w", err)
	}

	return &Repository{statePath: filepath.Clean(absPath)}, nil
}

func (r *Repository) Path() string {
	return r.statePath
}

func (r *Repository) Load(ctx context.Context) (domain.State, error) {
	if err := ctx.Err(); err != nil {
		return domain.State{}, err
	}

	data, err := os.ReadFile(r.statePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.State{}, fmt.Errorf("%w: %s", domain.ErrStateNotFound, r.statePath)
		}
		return domain.State{}, fmt.Errorf("%w: read %s: %v", domain.ErrStateUnavailable, r.statePath, err)
	}

	var schema stateSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return domain.State{}, fmt.Errorf("%w: decode %s: %v", domain.ErrStateUnavailable, r.statePath, err)
	}

	return fromSchema(schema), nil
}

func (r *Repository) Save(ctx context.Context, state domain.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(toSchema(state))
	if err != nil {
		return fmt.Errorf("%w: encode state: %v", domain.ErrStatePersist, err)
	}

	if err := r.writeFile(data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStatePersist, err)
	}

	return nil
}

// Lock takes a non-blocking exclusive lock on a sibling ".lock" file so that
// two invocations never interleave reads and writes of the same state.
func (r *Repository) Lock(ctx context.Context) (func() error, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(r.statePath), stateDirMode); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	f, err := os.OpenFile(r.statePath+lockSuffix, os.O_CREATE|os.O_RDWR, stateFileMode)
	if err != nil {
		return nil, fmt.Errorf("open state lock: %w", err)
	}

	if err := lockFile(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() error {
		unlockErr := unlockFile(f)
		closeErr := f.Close()
		return errors.Join(unlockErr, closeErr)
	}, nil
}

func (r *Repository) writeFile(data []byte) error {
	dir := filepath.Dir(r.statePath)
	if err := os.MkdirAll(dir, stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(r.statePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, r.statePath); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false
	return nil
}
