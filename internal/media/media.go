package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound means the path does not resolve to a readable file.
	ErrNotFound = errors.New("media file not found")
	// ErrUnsupportedType means the extension is outside the known table.
	ErrUnsupportedType = errors.New("unsupported media type")
)

// Class is the coarse media classification.
type Class string

const (
	Audio Class = "audio"
	Video Class = "video"
)

// Descriptor classifies a local media file. Immutable after Describe.
type Descriptor struct {
	Path        string
	Class       Class
	MIMEType    string
	DisplayName string
}

// mimeTable is the closed extension mapping. There is no sniffing fallback:
// an extension outside this table is a terminal error.
var mimeTable = map[string]struct {
	mime  string
	class Class
}{
	".mp3":  {"audio/mp3", Audio},
	".wav":  {"audio/wav", Audio},
	".aac":  {"audio/aac", Audio},
	".ogg":  {"audio/ogg", Audio},
	".flac": {"audio/flac", Audio},
	".mp4":  {"video/mp4", Video},
	".mpeg": {"video/mpeg", Video},
	".mov":  {"video/quicktime", Video},
	".wmv":  {"video/x-ms-wmv", Video},
	".avi":  {"video/x-msvideo", Video},
	".mkv":  {"video/x-matroska", Video},
}

// Describe resolves a file path to a Descriptor. The only I/O is a
// file-existence check.
func Describe(path string) (Descriptor, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	entry, ok := mimeTable[ext]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	return Descriptor{
		Path:        path,
		Class:       entry.class,
		MIMEType:    entry.mime,
		DisplayName: filepath.Base(path),
	}, nil
}

// Supported reports whether the path's extension is in the media table.
// Used by the watcher to filter events without touching the filesystem.
func Supported(path string) bool {
	_, ok := mimeTable[strings.ToLower(filepath.Ext(path))]
	return ok
}
