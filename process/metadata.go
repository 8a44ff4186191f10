package processor

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// documentNamespace seeds the deterministic document IDs so that re-indexing
// the same path yields the same identity.
var documentNamespace = uuid.MustParse("9b1c8a52-6f0e-4ad1-93d2-47c5b80e6f1a")

// DocumentMetadata is the flat per-document record prepared before indexing.
type DocumentMetadata struct {
	ID         string     `json:"id"`
	FileName   string     `json:"file_name"`
	FilePath   string     `json:"file_path"`
	FileType   string     `json:"file_type,omitempty"`
	Extension  string     `json:"extension"`
	FileSize   int64      `json:"file_size"`
	CreatedAt  *time.Time `json:"created_time,omitempty"`
	ModifiedAt time.Time  `json:"modified_time"`
}

// Metadata gathers stat-based metadata for a document. A creation timestamp
// the platform cannot supply is reported as nil, not as a failure.
func (c *Client) Metadata(path string) (*DocumentMetadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	return &DocumentMetadata{
		ID:         uuid.NewSHA1(documentNamespace, []byte(absPath)).String(),
		FileName:   info.Name(),
		FilePath:   absPath,
		FileType:   c.FileType(path),
		Extension:  strings.ToLower(filepath.Ext(path)),
		FileSize:   info.Size(),
		CreatedAt:  creationTime(info),
		ModifiedAt: info.ModTime(),
	}, nil
}
