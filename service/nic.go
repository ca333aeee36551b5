package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const nicDocumentDir = "files/nic_documents"

// Identity images stay small; anything bigger is a bad upload.
const MaxNICImageBytes = 5 << 20

var allowedNICExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// SaveNICImage writes an uploaded identity image under files/nic_documents
// and returns the stored file name. The name is generated, never taken
// from the upload.
func SaveNICImage(originalName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("image data is empty")
	}
	if len(data) > MaxNICImageBytes {
		return "", fmt.Errorf("image exceeds %d bytes", MaxNICImageBytes)
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedNICExtensions[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	if err := os.MkdirAll(nicDocumentDir, 0o755); err != nil {
		return "", err
	}
	fileName := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(nicDocumentDir, fileName), data, 0o644); err != nil {
		return "", err
	}
	return fileName, nil
}

// NICDocumentDir is where stored identity images live, for the file-serving
// route.
func NICDocumentDir() string {
	return nicDocumentDir
}
