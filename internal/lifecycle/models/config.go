// Package models defines the lifecycle configuration singleton: the two
// retention tunables, the automation switch, and the statistics of the
// most recent sweep runs.
package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
)

const (
	DefaultHotToArchiveDays  = 90
	DefaultArchiveToColdDays = 730

	MinHotToArchiveDays  = 1
	MaxHotToArchiveDays  = 365
	MinArchiveToColdDays = 180
	MaxArchiveToColdDays = 3650
)

// Config is the lifecycle tuning singleton. Exactly one instance exists;
// stores create it with defaults on first read.
type Config struct {
	HotToArchiveDays  int  `json:"hot_to_archive_days"`
	ArchiveToColdDays int  `json:"archive_to_cold_days"`
	EnableAutomation  bool `json:"enable_automation"`

	LastHotToArchiveRun  *time.Time `json:"last_hot_to_archive_run,omitempty"`
	LastArchiveToColdRun *time.Time `json:"last_archive_to_cold_run,omitempty"`
	LastRunArchived      int64      `json:"last_run_archived"`
	LastRunCooled        int64      `json:"last_run_cooled"`

	UpdatedBy *domain.UserID `json:"updated_by,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewDefaultConfig returns a config with the stock retention windows and
// automation switched on.
func NewDefaultConfig() *Config {
	return &Config{
		HotToArchiveDays:  DefaultHotToArchiveDays,
		ArchiveToColdDays: DefaultArchiveToColdDays,
		EnableAutomation:  true,
	}
}

// HotCutoff returns the publish-date threshold for the hot -> archive sweep.
func (c *Config) HotCutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -c.HotToArchiveDays)
}

// ColdCutoff returns the publish-date threshold for the archive -> cold sweep.
func (c *Config) ColdCutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -c.ArchiveToColdDays)
}

// RecordRun stores the outcome of one sweep on the singleton. Each sweep
// keeps its own timestamp and count, so a daily run does not wipe the
// record of the last monthly run. Pass -1 to leave a sweep's stats alone.
func (c *Config) RecordRun(archived, cooled int64, now time.Time) {
	if archived >= 0 {
		c.LastRunArchived = archived
		t := now
		c.LastHotToArchiveRun = &t
	}
	if cooled >= 0 {
		c.LastRunCooled = cooled
		t := now
		c.LastArchiveToColdRun = &t
	}
	c.UpdatedAt = now
}

// UpdateConfigRequest carries a partial update to the tunables. Absent
// fields keep their current values.
type UpdateConfigRequest struct {
	HotToArchiveDays  *int  `json:"hot_to_archive_days,omitempty"`
	ArchiveToColdDays *int  `json:"archive_to_cold_days,omitempty"`
	EnableAutomation  *bool `json:"enable_automation,omitempty"`
}

// Validate enforces the tunable ranges on the fields that were sent.
func (r UpdateConfigRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.HotToArchiveDays, validation.When(r.HotToArchiveDays != nil,
			validation.Min(MinHotToArchiveDays), validation.Max(MaxHotToArchiveDays))),
		validation.Field(&r.ArchiveToColdDays, validation.When(r.ArchiveToColdDays != nil,
			validation.Min(MinArchiveToColdDays), validation.Max(MaxArchiveToColdDays))),
	)
}

// Apply writes the requested changes onto the config and returns the names
// of the fields that actually changed.
func (r UpdateConfigRequest) Apply(c *Config, updatedBy domain.UserID, now time.Time) []string {
	var changed []string
	if r.HotToArchiveDays != nil && *r.HotToArchiveDays != c.HotToArchiveDays {
		c.HotToArchiveDays = *r.HotToArchiveDays
		changed = append(changed, "hot_to_archive_days")
	}
	if r.ArchiveToColdDays != nil && *r.ArchiveToColdDays != c.ArchiveToColdDays {
		c.ArchiveToColdDays = *r.ArchiveToColdDays
		changed = append(changed, "archive_to_cold_days")
	}
	if r.EnableAutomation != nil && *r.EnableAutomation != c.EnableAutomation {
		c.EnableAutomation = *r.EnableAutomation
		changed = append(changed, "enable_automation")
	}
	if len(changed) > 0 {
		c.UpdatedBy = &updatedBy
		c.UpdatedAt = now
	}
	return changed
}

// Clone returns a detached copy so stores can hand out snapshots.
func (c *Config) Clone() *Config {
	cp := *c
	if c.LastHotToArchiveRun != nil {
		t := *c.LastHotToArchiveRun
		cp.LastHotToArchiveRun = &t
	}
	if c.LastArchiveToColdRun != nil {
		t := *c.LastArchiveToColdRun
		cp.LastArchiveToColdRun = &t
	}
	if c.UpdatedBy != nil {
		id := *c.UpdatedBy
		cp.UpdatedBy = &id
	}
	return &cp
}

// ValidateRanges checks a full config, used by stores that load rows
// written by older versions.
func (c *Config) ValidateRanges() error {
	if c.HotToArchiveDays < MinHotToArchiveDays || c.HotToArchiveDays > MaxHotToArchiveDays {
		return dErrors.New(dErrors.CodeValidation, "hot_to_archive_days out of range")
	}
	if c.ArchiveToColdDays < MinArchiveToColdDays || c.ArchiveToColdDays > MaxArchiveToColdDays {
		return dErrors.New(dErrors.CodeValidation, "archive_to_cold_days out of range")
	}
	return nil
}
