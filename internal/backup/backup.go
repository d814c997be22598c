// Package backup manages timestamped copies of the storage file.
// Reset is irreversible, so a backup taken beforehand is the only way
// back.
package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// MaxBackups is the number of backups kept after rotation.
	MaxBackups = 14
	// BackupDirName is the directory next to the storage file.
	BackupDirName = "backups"
	// BackupFilePrefix marks files this package owns.
	BackupFilePrefix = "dailyspark-"

	timestampLayout = "20060102-150405"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backups for a single storage file. The storage file
// extension (.json or .db) is preserved so a restored backup opens with
// the same backend.
type Manager struct {
	storePath string
	backupDir string
}

func NewManager(storePath string) *Manager {
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), BackupDirName),
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

func (m *Manager) suffix() string {
	return filepath.Ext(m.storePath)
}

// Create writes a new backup and rotates old ones.
func (m *Manager) Create() (string, error) {
	return m.create(true)
}

func (m *Manager) create(rotate bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("storage file does not exist: %s", m.storePath)
	}

	name := BackupFilePrefix + time.Now().Format(timestampLayout) + m.suffix()
	backupPath := filepath.Join(m.backupDir, name)
	counter := 1
	for {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		backupPath = filepath.Join(m.backupDir,
			fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, time.Now().Format(timestampLayout), counter, m.suffix()))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}

	if err := m.copyStore(backupPath); err != nil {
		return "", fmt.Errorf("failed to back up storage: %w", err)
	}

	if rotate {
		if err := m.rotate(); err != nil {
			// Rotation failure must not fail the backup itself.
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// copyStore snapshots the storage file. SQLite files go through VACUUM
// INTO for a consistent copy; anything else is a plain file copy.
func (m *Manager) copyStore(destPath string) error {
	if m.suffix() != ".db" {
		return copyFile(m.storePath, destPath)
	}

	src, err := sql.Open("sqlite", m.storePath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer src.Close()

	var count int
	if err := src.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := src.Exec("VACUUM INTO ?", destPath); err != nil {
		// VACUUM INTO needs SQLite 3.27+; fall back to a file copy.
		return copyFile(m.storePath, destPath)
	}

	return nil
}

// List returns all backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) {
			continue
		}

		stamp := strings.TrimPrefix(name, BackupFilePrefix)
		stamp = strings.TrimSuffix(stamp, filepath.Ext(stamp))
		// Drop a -N uniqueness counter if present.
		if len(stamp) > len(timestampLayout) {
			stamp = stamp[:len(timestampLayout)]
		}

		timestamp, err := time.Parse(timestampLayout, stamp)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// Restore replaces the storage file with a backup. The current file is
// backed up first, then the replacement happens via an atomic rename.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if _, err := os.Stat(m.storePath); err == nil {
		safety, err := m.create(false)
		if err != nil {
			return fmt.Errorf("failed to back up current storage before restore: %w", err)
		}
		fmt.Printf("Created backup of current storage: %s\n", filepath.Base(safety))
	}

	tempPath := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.storePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore storage: %w", err)
	}

	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
