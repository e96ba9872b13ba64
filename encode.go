package displaynames

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Database is the serialized envelope the display-name formatter
// consumes: the per-locale records plus the list of locales present.
type Database struct {
	Data             LocaleData `json:"data" yaml:"data"`
	AvailableLocales []string   `json:"availableLocales" yaml:"availableLocales"`
}

// NewDatabase wraps extracted locale data into its on-disk envelope. The
// available-locales list is derived from the data keys, sorted for
// deterministic output.
func NewDatabase(data LocaleData) Database {
	locales := make([]string, 0, len(data))
	for locale := range data {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	return Database{
		Data:             data,
		AvailableLocales: locales,
	}
}

// WriteJSON encodes the database as indented JSON.
func (db Database) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(db); err != nil {
		return fmt.Errorf("displaynames: encode json: %w", err)
	}
	return nil
}

// WriteYAML encodes the database as YAML.
func (db Database) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(db); err != nil {
		enc.Close()
		return fmt.Errorf("displaynames: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("displaynames: encode yaml: %w", err)
	}
	return nil
}

// ReadJSON decodes a database previously written with WriteJSON.
func ReadJSON(r io.Reader) (Database, error) {
	var db Database
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		return Database{}, fmt.Errorf("displaynames: decode json: %w", err)
	}
	return db, nil
}

// ReadYAML decodes a database previously written with WriteYAML.
func ReadYAML(r io.Reader) (Database, error) {
	var db Database
	if err := yaml.NewDecoder(r).Decode(&db); err != nil {
		return Database{}, fmt.Errorf("displaynames: decode yaml: %w", err)
	}
	return db, nil
}
