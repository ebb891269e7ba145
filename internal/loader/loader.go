package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/napolitain/ogame-economy/internal/models"
)

// ErrUnsupportedFormat is returned for account files that are not JSON, YAML or TOML
var ErrUnsupportedFormat = errors.New("unsupported account file format")

// Format is an account file encoding
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf picks the encoding from a file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// LoadAccount reads, defaults and validates an account file
func LoadAccount(path string) (*models.Account, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	account, err := ParseAccount(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return account, nil
}

// ParseAccount decodes an account, fills universe defaults and validates it.
// Unknown keys are logged and ignored.
func ParseAccount(data []byte, format Format) (*models.Account, error) {
	account, err := decode(data, format, true)
	if err != nil {
		strictErr := err
		if account, err = decode(data, format, false); err != nil {
			return nil, err
		}
		slog.Warn("ignoring unknown keys in account file", "error", strictErr)
	}

	if filled := models.ApplyDefaults(account); len(filled) > 0 {
		slog.Warn("applied defaults to account", "account", account.Name, "fields", filled)
	}
	if err := models.ValidateAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

func decode(data []byte, format Format, strict bool) (*models.Account, error) {
	var account models.Account
	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&account); err != nil {
			return nil, err
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(strict)
		if err := dec.Decode(&account); err != nil {
			return nil, err
		}
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&account); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &account, nil
}

// SaveAccount writes an account in the encoding its extension names
func SaveAccount(path string, account *models.Account) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case JSON:
		data, err = json.MarshalIndent(account, "", "  ")
	case YAML:
		data, err = yaml.Marshal(account)
	case TOML:
		data, err = toml.Marshal(account)
	}
	if err != nil {
		return fmt.Errorf("failed to encode account: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
