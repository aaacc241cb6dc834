package mimetype

import (
	"bufio"
	"strings"

	"github.com/arthur-debert/run-mailcap/pkg/types"
)

// lookupMimeTypes searches the mime.types databases in order for ext
// (without the leading dot). Lines have the form `type/subtype ext1 ext2`,
// lines starting with # are comments. Missing files are skipped.
func lookupMimeTypes(fsys types.FS, paths []string, ext string) (string, bool) {
	if ext == "" {
		return "", false
	}

	for _, path := range paths {
		file, err := fsys.Open(path)
		if err != nil {
			continue
		}

		mimeType, found := scanMimeTypes(bufio.NewScanner(file), ext)
		_ = file.Close()
		if found {
			return mimeType, true
		}
	}
	return "", false
}

func scanMimeTypes(scanner *bufio.Scanner, ext string) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		for _, candidate := range fields[1:] {
			if strings.EqualFold(candidate, ext) {
				return fields[0], true
			}
		}
	}
	return "", false
}
