package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type fileSiteRepo struct {
	path   string
	mu     sync.Mutex
	logger logger.Logger
	now    func() time.Time
}

// NewFileSiteRepo keeps the site document in a single JSON file. A missing
// file reads as the default state.
func NewFileSiteRepo(path string, log logger.Logger) site.Repository {
	return &fileSiteRepo{path: path, logger: log, now: time.Now}
}

func (r *fileSiteRepo) Load(ctx context.Context) (*site.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *fileSiteRepo) Save(ctx context.Context, state *site.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(state)
}

func (r *fileSiteRepo) Update(ctx context.Context, fn func(state *site.State) error) (*site.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.read()
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	if err := r.write(state); err != nil {
		return nil, err
	}
	return state, nil
}

func (r *fileSiteRepo) read() (*site.State, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return site.NewState(), nil
		}
		return nil, fmt.Errorf("read site file: %w", err)
	}
	return decodeState(data, r.now(), r.logger.With(zap.String("path", r.path))), nil
}

// write replaces the file atomically through a temp file in the same dir.
func (r *fileSiteRepo) write(state *site.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode site document: %w", err)
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".site-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace site file: %w", err)
	}
	return nil
}

// decodeState never fails: an unparseable document falls back to defaults
// and every repaired field is logged.
func decodeState(data []byte, now time.Time, log logger.Logger) *site.State {
	state, notes, err := site.Decode(data, now)
	if err != nil {
		log.Warn("Site document is not valid JSON, using defaults", zap.Error(err))
		return site.NewState()
	}
	for _, n := range notes {
		log.Warn("Site document repaired", zap.String("detail", n))
	}
	return state
}
