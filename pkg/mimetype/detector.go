package mimetype

import (
	"mime"
	"path/filepath"
	"strings"

	sniff "github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/run-mailcap/pkg/errors"
	"github.com/arthur-debert/run-mailcap/pkg/logging"
	"github.com/arthur-debert/run-mailcap/pkg/types"
)

const (
	// Fallback is reported when a file's content gives nothing better
	Fallback = "application/octet-stream"

	// Directory is the shared-mime-info type of directories
	Directory = "inode/directory"
)

// Options configures where a Detector looks for type information
type Options struct {
	// MimeTypesPaths are mime.types databases, earlier entries win
	MimeTypesPaths []string
	// SharedMIMEDirs are shared-mime-info package directories holding *.xml
	SharedMIMEDirs []string
	// DisableSniffing skips content detection
	DisableSniffing bool
}

// Detector finds the MIME type of files
type Detector struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger

	rules       []globRule
	rulesLoaded bool
}

// NewDetector creates a detector reading databases and files through fsys
func NewDetector(fsys types.FS, opts Options) *Detector {
	return &Detector{
		fs:     fsys,
		opts:   opts,
		logger: logging.GetLogger("mimetype.detector"),
	}
}

// Detect returns the MIME type of filename without parameters. Extension
// databases are tried first, then the content is sniffed. The error has code
// ErrMIMEDetect when no database knows the name and the file cannot be read.
func (d *Detector) Detect(filename string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")

	if mimeType, ok := lookupMimeTypes(d.fs, d.opts.MimeTypesPaths, ext); ok {
		d.logger.Debug().Str("type", mimeType).Str("source", "mime.types").Msg("Detected MIME type")
		return mimeType, nil
	}

	if !d.rulesLoaded {
		d.rules = loadGlobRules(d.fs, d.opts.SharedMIMEDirs, d.logger)
		d.rulesLoaded = true
	}
	if mimeType, ok := bestGlobMatch(d.rules, filename); ok {
		d.logger.Debug().Str("type", mimeType).Str("source", "shared-mime-info").Msg("Detected MIME type")
		return mimeType, nil
	}

	if d.opts.DisableSniffing {
		return Fallback, nil
	}

	mimeType, err := d.sniff(filename)
	if err != nil {
		return "", err
	}
	d.logger.Debug().Str("type", mimeType).Str("source", "content").Msg("Detected MIME type")
	return mimeType, nil
}

func (d *Detector) sniff(filename string) (string, error) {
	if info, err := d.fs.Stat(filename); err == nil && info.IsDir() {
		return Directory, nil
	}

	file, err := d.fs.Open(filename)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrMIMEDetect, "cannot determine the type of %s", filename).
			WithDetail("filename", filename)
	}
	defer func() { _ = file.Close() }()

	detected, err := sniff.DetectReader(file)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrMIMEDetect, "cannot read %s", filename).
			WithDetail("filename", filename)
	}

	return StripParameters(detected.String()), nil
}

// StripParameters drops parameters such as charset from a media type
func StripParameters(mediaType string) string {
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		return parsed
	}
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		return strings.TrimSpace(mediaType[:i])
	}
	if mediaType == "" {
		return Fallback
	}
	return mediaType
}
