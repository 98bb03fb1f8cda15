package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/censuskit/demographics/pkg/types"
)

// WriteFile writes r.Map() to path as JSON (.json) or YAML (.yaml, .yml).
func WriteFile(fs afero.Fs, path string, r *types.Report) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(r.Map())
		data = buf.Bytes()
	case ".yaml", ".yml":
		data, err = yaml.Marshal(r.Map())
	default:
		return errors.Errorf("export: unsupported report format %q", ext)
	}
	if err != nil {
		return errors.Wrapf(err, "export: encode %s", path)
	}
	return writeAtomic(fs, path, data)
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(fs afero.Fs, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "export: ensure dir %s", dir)
		}
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "export: write %s", tmp)
	}
	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return errors.Wrapf(err, "export: rename %s", path)
	}
	return nil
}
