package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/teranos/widgetgen/errors"
	"github.com/teranos/widgetgen/widget"
)

// FileExtension is the extension of exported sources.
const FileExtension = "lua"

// filenameTimeLayout keeps exports sortable by creation time.
const filenameTimeLayout = "20060102-150405"

// Filename returns the export file name for shape at time t. The timestamp
// lives only in the name; the generated body never contains one.
func Filename(prefix string, shape Shape, t time.Time) string {
	if prefix == "" {
		prefix = "widgets"
	}
	return fmt.Sprintf("%s_%s_%s.%s", prefix, shape, t.Format(filenameTimeLayout), FileExtension)
}

// maxNameCollisions bounds the numbered variants tried for one timestamp.
const maxNameCollisions = 1000

// Write generates elements in shape and writes them to a new file in dir.
// It never overwrites: when the timestamped name is taken (two exports in the
// same second), "-2", "-3", ... is appended before the extension. It returns
// the path written.
func Write(dir, prefix string, shape Shape, elements []widget.Element, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	code := []byte(Generate(elements, shape))
	base := strings.TrimSuffix(Filename(prefix, shape, now), "."+FileExtension)

	for n := 1; n <= maxNameCollisions; n++ {
		name := base + "." + FileExtension
		if n > 1 {
			name = fmt.Sprintf("%s-%d.%s", base, n, FileExtension)
		}
		path := filepath.Join(dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", errors.Wrapf(err, "failed to create export %s", path)
		}
		if _, err := f.Write(code); err != nil {
			f.Close()
			return "", errors.Wrapf(err, "failed to write export %s", path)
		}
		if err := f.Close(); err != nil {
			return "", errors.Wrapf(err, "failed to write export %s", path)
		}
		return path, nil
	}
	return "", errors.Newf("too many exports named %s in %s", base, dir)
}
