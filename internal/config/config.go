// Package config defines the lostfound configuration and its loading.
//
// Values are layered, lowest precedence first: built-in defaults, an optional
// YAML file, then LOSTFOUND_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/lostfound-tw/lostfound/internal/facet"
	"github.com/lostfound-tw/lostfound/internal/item"
)

// Defaults for the public lost-and-found sheet.
const (
	DefaultSheetID   = "1yGWyvzR3Jr6dRpZBATVhSVvEcc0FMQrWHPBqbYrgIag"
	DefaultSheetName = "Public_data"
)

// Config contains process configuration.
type Config struct {
	// SheetID and SheetName locate the spreadsheet tab to read.
	SheetID   string `koanf:"sheet_id"`
	SheetName string `koanf:"sheet_name"`

	// Timeout bounds each fetch.
	Timeout time.Duration `koanf:"timeout"`

	// UserAgent is sent with every fetch.
	UserAgent string `koanf:"user_agent"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir holds offline snapshots.
	DataDir string `koanf:"data_dir"`

	// Addr configures the HTTP listen address of `serve`.
	Addr string `koanf:"addr"`

	// RefreshInterval re-fetches the sheet periodically in `serve`; 0 disables.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// Debounce is the quiescence window of interactive filtering.
	Debounce time.Duration `koanf:"debounce"`

	// Timezone places pickup dates and date bounds; "Local" uses the host zone.
	Timezone string `koanf:"timezone"`

	Columns  item.Columns   `koanf:"columns"`
	Campuses []facet.Campus `koanf:"campuses"`
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		SheetID:         DefaultSheetID,
		SheetName:       DefaultSheetName,
		Timeout:         30 * time.Second,
		LogLevel:        "info",
		DataDir:         "~/.local/share/lostfound",
		Addr:            ":8080",
		RefreshInterval: 0,
		Debounce:        250 * time.Millisecond,
		Timezone:        "Local",
		Columns:         item.DefaultColumns(),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SheetID, validation.Required),
		validation.Field(&c.SheetName, validation.Required),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.RefreshInterval, validation.Min(time.Duration(0))),
		validation.Field(&c.Debounce, validation.Min(time.Duration(0))),
		validation.Field(&c.Timezone, validation.By(validateTimezone)),
		validation.Field(&c.Columns, validation.By(validateColumns)),
		validation.Field(&c.Campuses, validation.Each(validation.By(validateCampus))),
	)
}

func validateTimezone(value interface{}) error {
	tz, _ := value.(string)
	if tz == "" || tz == "Local" {
		return nil
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("unknown timezone %q", tz)
	}
	return nil
}

func validateColumns(value interface{}) error {
	cols, ok := value.(item.Columns)
	if !ok {
		return errors.New("invalid columns")
	}
	if cols.ID == "" {
		return errors.New("id column label must not be empty")
	}
	return nil
}

func validateCampus(value interface{}) error {
	cp, ok := value.(facet.Campus)
	if !ok {
		return errors.New("invalid campus")
	}
	if cp.Name == "" {
		return errors.New("campus name must not be empty")
	}
	if len(cp.Locations) == 0 {
		return fmt.Errorf("campus %q has no locations", cp.Name)
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Categories builds the campus metadata, falling back to the defaults when
// no campuses are configured.
func (c *Config) Categories() *facet.Categories {
	if len(c.Campuses) == 0 {
		return facet.DefaultCategories()
	}
	return facet.NewCategories(c.Campuses)
}
