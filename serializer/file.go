// Package serializer reads and writes JSON documents to disk.
package serializer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteJSONFile encodes v as indented JSON and replaces filename with it.
// The data goes to a temporary sibling first and is renamed into place,
// so readers see either the old file or the new one.
func WriteJSONFile(v any, filename string) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("cannot marshal to json: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(filename), fmt.Sprintf(".%s.%s.tmp", filepath.Base(filename), uuid.NewString()))

	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err == nil {
		err = file.Sync()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}

	err = os.Rename(tmp, filename)
	if err != nil {
		os.Remove(tmp)
		return err
	}

	return nil
}

// ReadJSONFile decodes the JSON document stored in filename into v.
func ReadJSONFile(filename string, v any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}
