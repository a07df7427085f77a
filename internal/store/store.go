// Package store is the local persistence collaborator: a SQLite-backed
// settings table with get/set semantics plus saved campaign plans keyed
// by an opaque id and creation timestamp.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"nanomarketer/internal/logging"
	"nanomarketer/internal/types"
)

// Store wraps the SQLite database holding settings and saved projects.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// Project is one saved campaign: the immutable inputs plus the generated
// plan, under an opaque id.
type Project struct {
	ID          string
	ProductName string
	CreatedAt   time.Time
	Inputs      types.CampaignInputs
	Plan        types.PromptPlanResponse
}

// Open initializes the SQLite database at the given path.
func Open(path string) (*Store, error) {
	logging.Store("Opening store at path: %s", path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
	}

	s := &Store{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initialize creates the required tables.
func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS projects (
		id           TEXT PRIMARY KEY,
		product_name TEXT NOT NULL,
		created_at   DATETIME NOT NULL,
		inputs       TEXT NOT NULL,
		plan         TEXT NOT NULL
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetSetting returns a setting value and whether it was present.
func (s *Store) GetSetting(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return value, true, nil
}

// SetSetting upserts a setting value.
func (s *Store) SetSetting(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}
	logging.StoreDebug("SetSetting: %s", key)
	return nil
}

// DeleteSetting removes a setting if present.
func (s *Store) DeleteSetting(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}
	return nil
}

// SaveProject stores a newly generated plan under a fresh opaque id.
func (s *Store) SaveProject(inputs types.CampaignInputs, plan types.PromptPlanResponse) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Project{
		ID:          uuid.NewString(),
		ProductName: inputs.ProductName,
		CreatedAt:   time.Now().UTC(),
		Inputs:      inputs,
		Plan:        plan,
	}

	inputsJSON, err := json.Marshal(p.Inputs)
	if err != nil {
		return Project{}, fmt.Errorf("failed to marshal inputs: %w", err)
	}
	planJSON, err := json.Marshal(p.Plan)
	if err != nil {
		return Project{}, fmt.Errorf("failed to marshal plan: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO projects (id, product_name, created_at, inputs, plan) VALUES (?, ?, ?, ?, ?)",
		p.ID, p.ProductName, p.CreatedAt, string(inputsJSON), string(planJSON))
	if err != nil {
		return Project{}, fmt.Errorf("failed to save project: %w", err)
	}

	logging.Store("SaveProject: id=%s product=%q", p.ID, p.ProductName)
	return p, nil
}

// UpdateProjectPlan replaces the stored plan for an existing project,
// used after single-asset refinement.
func (s *Store) UpdateProjectPlan(id string, plan types.PromptPlanResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	res, err := s.db.Exec("UPDATE projects SET plan = ? WHERE id = ?", string(planJSON), id)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project %s not found", id)
	}
	return nil
}

// GetProject loads one saved project by id.
func (s *Store) GetProject(id string) (Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Project
	var inputsJSON, planJSON string
	err := s.db.QueryRow(
		"SELECT id, product_name, created_at, inputs, plan FROM projects WHERE id = ?", id,
	).Scan(&p.ID, &p.ProductName, &p.CreatedAt, &inputsJSON, &planJSON)
	if err == sql.ErrNoRows {
		return Project{}, fmt.Errorf("project %s not found", id)
	}
	if err != nil {
		return Project{}, fmt.Errorf("failed to load project %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(inputsJSON), &p.Inputs); err != nil {
		return Project{}, fmt.Errorf("corrupt inputs for project %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(planJSON), &p.Plan); err != nil {
		return Project{}, fmt.Errorf("corrupt plan for project %s: %w", id, err)
	}
	return p, nil
}

// ListProjects returns all saved projects, newest first, without their
// plan payloads.
func (s *Store) ListProjects() ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT id, product_name, created_at FROM projects ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.ProductName, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// DeleteProject removes one saved project.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project %s not found", id)
	}
	logging.Store("DeleteProject: id=%s", id)
	return nil
}
