package sheetdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrNotFound indicates no data row carries the requested identifier.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID indicates a create supplied an identifier already in use.
	ErrDuplicateID = errors.New("duplicate identifier")
)

// Store is the tabular data-access layer over a single workbook file. Every
// operation re-reads the full row range from disk; the workbook is the sole
// durable store and nothing is cached across calls. A mutex serializes
// access since concurrent writers against one document would race.
type Store struct {
	mu      sync.Mutex
	path    string
	logger  *slog.Logger
	observe func(entity, op string)
}

// NewStore returns a store backed by the workbook at path. The file is
// created lazily on first use.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// SetObserver installs a callback invoked once per workbook operation, keyed
// by entity and operation name. Used for metrics.
func (s *Store) SetObserver(fn func(entity, op string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observe = fn
}

func (s *Store) note(entity, op string) {
	if s.observe != nil {
		s.observe(entity, op)
	}
}

// Path returns the backing workbook location.
func (s *Store) Path() string {
	return s.path
}

// Configured reports whether the workbook file has been materialized yet.
func (s *Store) Configured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := os.Stat(s.path)
	return err == nil
}

// List returns the records of an entity matching the query, in sheet order.
// An entity with no data rows yields an empty slice, not an error.
func (s *Store) List(ctx context.Context, entity string, q Query) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.note(entity, "list")

	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	headers, dirty, err := s.ensureSheet(f, entity)
	if err != nil {
		return nil, err
	}
	if dirty {
		if err := f.SaveAs(s.path); err != nil {
			return nil, fmt.Errorf("save workbook: %w", err)
		}
	}

	rows, err := f.GetRows(entity)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", entity, err)
	}

	records := make([]Record, 0, max(len(rows)-1, 0))
	for _, row := range dataRows(rows) {
		records = append(records, Decode(headers, row))
	}
	return q.Apply(records), nil
}

// Get returns the first record whose identifier matches id.
func (s *Store) Get(ctx context.Context, entity, id string) (Record, error) {
	records, err := s.List(ctx, entity, Query{})
	if err != nil {
		return nil, err
	}
	fields := Fields(entity)
	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	key := fields[0]
	for _, rec := range records {
		if rec[key] == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q", ErrNotFound, entity, id)
}

// Create appends the record as a new row. A missing identifier is assigned a
// fresh UUID; createdAt/updatedAt are stamped when the schema defines them
// and the payload omits them. Fields absent from the payload are stored as
// empty cells. The stored record is returned.
func (s *Store) Create(ctx context.Context, entity string, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.note(entity, "create")

	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	headers, _, err := s.ensureSheet(f, entity)
	if err != nil {
		return nil, err
	}

	stored := make(Record, len(headers))
	for k, v := range rec {
		stored[k] = v
	}

	rows, err := f.GetRows(entity)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", entity, err)
	}

	if hasField(headers, FieldID) {
		if stored[FieldID] == "" {
			stored[FieldID] = uuid.NewString()
		} else if rowIndexByID(rows, stored[FieldID]) > 0 {
			return nil, fmt.Errorf("%w: %s %q", ErrDuplicateID, entity, stored[FieldID])
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if hasField(headers, FieldCreatedAt) && stored[FieldCreatedAt] == "" {
		stored[FieldCreatedAt] = now
	}
	if hasField(headers, FieldUpdatedAt) && stored[FieldUpdatedAt] == "" {
		stored[FieldUpdatedAt] = now
	}

	next := len(rows) + 1
	cell, err := excelize.CoordinatesToCellName(1, next)
	if err != nil {
		return nil, err
	}
	row := Encode(headers, stored)
	if err := f.SetSheetRow(entity, cell, &row); err != nil {
		return nil, fmt.Errorf("append row: %w", err)
	}
	if err := f.SaveAs(s.path); err != nil {
		return nil, fmt.Errorf("save workbook: %w", err)
	}
	return stored, nil
}

// Update overwrites, in the first row whose identifier matches, every column
// the record mentions; updatedAt is refreshed unconditionally when the
// schema defines it. Columns absent from the record are left untouched.
func (s *Store) Update(ctx context.Context, entity string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	s.note(entity, "update")

	f, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	headers, _, err := s.ensureSheet(f, entity)
	if err != nil {
		return err
	}

	rows, err := f.GetRows(entity)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", entity, err)
	}

	id := rec[FieldID]
	rowNum := rowIndexByID(rows, id)
	if rowNum == 0 {
		return fmt.Errorf("%w: %s %q", ErrNotFound, entity, id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for col, field := range headers {
		value, present := rec[field]
		if field == FieldUpdatedAt {
			value, present = now, true
		}
		if !present {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(entity, cell, value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Delete removes the first row whose identifier matches, shifting the rows
// below it up by one.
func (s *Store) Delete(ctx context.Context, entity, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	s.note(entity, "delete")

	f, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	if _, _, err := s.ensureSheet(f, entity); err != nil {
		return err
	}

	rows, err := f.GetRows(entity)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", entity, err)
	}

	rowNum := rowIndexByID(rows, id)
	if rowNum == 0 {
		return fmt.Errorf("%w: %s %q", ErrNotFound, entity, id)
	}
	if err := f.RemoveRow(entity, rowNum); err != nil {
		return fmt.Errorf("remove row %d: %w", rowNum, err)
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// GetSingleton returns the single data row of an entity, or an empty record
// when none has been written yet.
func (s *Store) GetSingleton(ctx context.Context, entity string) (Record, error) {
	records, err := s.List(ctx, entity, Query{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return Record{}, nil
	}
	return records[0], nil
}

// PutSingleton writes the record to the entity's single data row, creating
// it when absent and refreshing updatedAt when the schema defines it.
func (s *Store) PutSingleton(ctx context.Context, entity string, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.note(entity, "put")

	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	headers, _, err := s.ensureSheet(f, entity)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(entity)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", entity, err)
	}

	stored := Record{}
	if len(rows) > 1 {
		stored = Decode(headers, rows[1])
	}
	for k, v := range rec {
		stored[k] = v
	}
	if hasField(headers, FieldUpdatedAt) {
		stored[FieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	}

	row := Encode(headers, stored)
	if err := f.SetSheetRow(entity, "A2", &row); err != nil {
		return nil, fmt.Errorf("write row: %w", err)
	}
	if err := f.SaveAs(s.path); err != nil {
		return nil, fmt.Errorf("save workbook: %w", err)
	}
	return stored, nil
}

// InitAll eagerly provisions every registered entity's sheet with its header
// row. Repeated invocations leave headers and data rows unchanged.
func (s *Store) InitAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	var dirty bool
	for _, entity := range Entities() {
		_, changed, err := s.ensureSheet(f, entity)
		if err != nil {
			return err
		}
		dirty = dirty || changed
	}
	if !dirty {
		return nil
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Headers returns the current header row of an entity's sheet, provisioning
// the sheet when absent.
func (s *Store) Headers(ctx context.Context, entity string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	headers, dirty, err := s.ensureSheet(f, entity)
	if err != nil {
		return nil, err
	}
	if dirty {
		if err := f.SaveAs(s.path); err != nil {
			return nil, fmt.Errorf("save workbook: %w", err)
		}
	}
	return headers, nil
}

// open loads the workbook from disk, creating a fresh one when the file does
// not exist yet.
func (s *Store) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(s.path)
	if err == nil {
		return f, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create workbook dir: %w", err)
		}
	}
	return excelize.NewFile(), nil
}

// ensureSheet creates the entity's sheet with its header row when missing
// and reconciles a drifted header row back to the canonical field list. Data
// rows are never touched; reconciling headers over reordered data is a known
// correctness risk, so drift is logged.
func (s *Store) ensureSheet(f *excelize.File, entity string) ([]string, bool, error) {
	headers := Fields(entity)

	idx, err := f.GetSheetIndex(entity)
	if err != nil {
		return nil, false, fmt.Errorf("resolve sheet %s: %w", entity, err)
	}
	if idx < 0 {
		if _, err := f.NewSheet(entity); err != nil {
			return nil, false, fmt.Errorf("create sheet %s: %w", entity, err)
		}
		if err := s.writeHeader(f, entity, headers, 0); err != nil {
			return nil, false, err
		}
		s.logger.Info("created sheet", slog.String("entity", entity))
		return headers, true, nil
	}

	rows, err := f.GetRows(entity)
	if err != nil {
		return nil, false, fmt.Errorf("read sheet %s: %w", entity, err)
	}
	var current []string
	if len(rows) > 0 {
		current = rows[0]
	}
	if equalHeaders(current, headers) {
		return headers, false, nil
	}

	s.logger.Warn("reconciling drifted header row",
		slog.String("entity", entity),
		slog.Int("columns", len(current)))
	if err := s.writeHeader(f, entity, headers, len(current)); err != nil {
		return nil, false, err
	}
	return headers, true, nil
}

// writeHeader overwrites row 1 with the canonical field list, blanking any
// surplus columns left by a wider previous header.
func (s *Store) writeHeader(f *excelize.File, entity string, headers []string, oldWidth int) error {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(entity, "A1", &row); err != nil {
		return fmt.Errorf("write header %s: %w", entity, err)
	}
	for col := len(headers) + 1; col <= oldWidth; col++ {
		cell, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(entity, cell, ""); err != nil {
			return fmt.Errorf("clear header cell %s: %w", cell, err)
		}
	}
	return nil
}

// dataRows strips the header row.
func dataRows(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}

// rowIndexByID returns the 1-based sheet row of the first data row whose
// first column equals id, or 0 when none matches. Identifiers are compared
// as strings.
func rowIndexByID(rows [][]string, id string) int {
	if id == "" {
		return 0
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) > 0 && rows[i][0] == id {
			return i + 1
		}
	}
	return 0
}

func equalHeaders(current, canonical []string) bool {
	if len(current) != len(canonical) {
		return false
	}
	for i := range canonical {
		if current[i] != canonical[i] {
			return false
		}
	}
	return true
}
