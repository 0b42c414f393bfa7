package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"plate-bot/internal/domain/registry"
	"plate-bot/internal/repository"
	"plate-bot/internal/source"
	"plate-bot/internal/utils"
)

var (
	ErrNotReady = errors.New("dataset not loaded")
)

// Fixed column positions in the form-responses sheet (1-based):
// E holds the owner name, G the plate(s), K the phone.
const (
	colOwnerName = 5
	colPlate     = 7
	colPhone     = 11
)

// One plate cell may list several plates for the same owner.
var plateSeparators = regexp.MustCompile(`[,;\n]+`)

// RegistryService builds and serves the plate index. Reload fetches and
// rebuilds off-lock, then swaps the snapshot in one step, so lookups keep
// working against the old data while a reload is in flight.
type RegistryService struct {
	repo *repository.RegistryRepository
	src  source.RowSource
	log  zerolog.Logger
}

func NewRegistryService(repo *repository.RegistryRepository, src source.RowSource, log zerolog.Logger) *RegistryService {
	return &RegistryService{
		repo: repo,
		src:  src,
		log:  log,
	}
}

// buildIndex turns raw sheet rows into the two lookup structures. It is a
// pure transformation: same rows in, same maps out. The first row is the
// form header; rows shorter than the phone column are skipped whole.
// Later rows overwrite earlier ones on plate collision — last write wins,
// so a resubmitted form supersedes the original answer.
func buildIndex(rows [][]string) (map[string]registry.OwnerRecord, map[string]struct{}) {
	plates := make(map[string]registry.OwnerRecord)
	phones := make(map[string]struct{})

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < colPhone {
			continue
		}

		name := strings.TrimSpace(row[colOwnerName-1])
		plateCell := strings.TrimSpace(row[colPlate-1])
		phoneCell := strings.TrimSpace(row[colPhone-1])

		// Phone and plate collection are independent: a row with a
		// phone but an unusable plate still admits that phone.
		if phoneCell != "" {
			phones[utils.NormalizePhone(phoneCell)] = struct{}{}
		}

		if plateCell == "" {
			continue
		}
		for _, part := range plateSeparators.Split(plateCell, -1) {
			normalized := utils.NormalizePlate(part)
			if normalized == "" {
				continue
			}
			plates[normalized] = registry.OwnerRecord{Name: name, Phone: phoneCell}
		}
	}

	return plates, phones
}

// ReloadResult reports what a successful reload produced.
type ReloadResult struct {
	SnapshotID uuid.UUID `json:"snapshot_id"`
	Rows       int       `json:"rows"`
	Plates     int       `json:"plates"`
	Phones     int       `json:"phones"`
}

// Reload re-fetches the dataset and replaces the live snapshot. On any
// fetch or parse failure the previous snapshot stays live and the error
// is returned to the caller.
func (s *RegistryService) Reload(ctx context.Context) (*ReloadResult, error) {
	rows, err := s.src.FetchRows(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("dataset fetch failed, keeping previous snapshot")
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}

	plates, phones := buildIndex(rows)

	dataRows := len(rows) - 1
	if dataRows < 0 {
		dataRows = 0
	}

	snap := &registry.Snapshot{
		ID:       uuid.New(),
		LoadedAt: time.Now(),
		RowCount: dataRows,
		Plates:   plates,
		Phones:   phones,
	}
	s.repo.ReplaceSnapshot(snap)

	s.log.Info().
		Str("snapshot_id", snap.ID.String()).
		Int("rows", dataRows).
		Int("plates", len(plates)).
		Int("phones", len(phones)).
		Msg("dataset snapshot replaced")

	return &ReloadResult{
		SnapshotID: snap.ID,
		Rows:       dataRows,
		Plates:     len(plates),
		Phones:     len(phones),
	}, nil
}

// Lookup resolves a normalized plate against the live snapshot.
func (s *RegistryService) Lookup(normalizedPlate string) (registry.OwnerRecord, bool) {
	snap := s.repo.Snapshot()
	if snap == nil {
		return registry.OwnerRecord{}, false
	}
	rec, ok := snap.Plates[normalizedPlate]
	return rec, ok
}

// HasPhone reports whether a normalized phone belongs to the dataset.
func (s *RegistryService) HasPhone(normalizedPhone string) bool {
	snap := s.repo.Snapshot()
	if snap == nil {
		return false
	}
	_, ok := snap.Phones[normalizedPhone]
	return ok
}

// Ready reports whether at least one snapshot has been loaded.
func (s *RegistryService) Ready() bool {
	return s.repo.Snapshot() != nil
}

func (s *RegistryService) Stats() (registry.Stats, error) {
	snap := s.repo.Snapshot()
	if snap == nil {
		return registry.Stats{}, ErrNotReady
	}
	return registry.Stats{
		SnapshotID: snap.ID,
		LoadedAt:   snap.LoadedAt,
		Rows:       snap.RowCount,
		Plates:     len(snap.Plates),
		Phones:     len(snap.Phones),
	}, nil
}
