package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager lays out archived export files on disk
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateSessionDir creates the directory holding one session's exports
func (om *OutputManager) CreateSessionDir(sessionID string) (string, error) {
	sessionDir := filepath.Join(om.BaseOutputDir, filepath.Base(sessionID))

	err := os.MkdirAll(sessionDir, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create session output directory: %w", err)
	}

	return sessionDir, nil
}

// GetOutputFilePath generates a full path for an output file
func (om *OutputManager) GetOutputFilePath(sessionID, fileName string) (string, error) {
	sessionDir, err := om.CreateSessionDir(sessionID)
	if err != nil {
		return "", err
	}

	// Clean the filename to remove any path separators
	cleanFileName := filepath.Base(fileName)

	return filepath.Join(sessionDir, cleanFileName), nil
}

// WriteFile stores data under the session directory and returns its path
func (om *OutputManager) WriteFile(sessionID, fileName string, data []byte) (string, error) {
	path, err := om.GetOutputFilePath(sessionID, fileName)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return path, nil
}

// GetFileType determines the file type based on extension
func (om *OutputManager) GetFileType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".csv":
		return "csv"
	case ".xlsx", ".xls":
		return "excel"
	default:
		return "unknown"
	}
}

// EnsureOutputDirExists ensures the base output directory exists
func (om *OutputManager) EnsureOutputDirExists() error {
	return os.MkdirAll(om.BaseOutputDir, 0755)
}
