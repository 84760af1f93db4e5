package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const (
	SourceFile = "file"
	SourceS3   = "s3"

	DefaultProfile    = "default"
	DefaultReportPath = "report_data.json"
	ProfileFileName   = ".reportcfg"
)

// DefaultProfilePath is $HOME/.reportcfg, or the bare file name when the
// home directory is unknown.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ProfileFileName
	}
	return filepath.Join(home, ProfileFileName)
}

// Profile names where a report document is read from.
type Profile struct {
	Name   string
	Source string
	Path   string
	Bucket string
	Key    string
	Region string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry reads an ini profile file. A missing file yields an empty
// registry that still serves the built-in default profile.
func NewRegistry(path string) (Registry, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &cfgRegistry{cfg: ini.Empty()}, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile file %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	if name == "" {
		name = DefaultProfile
	}

	section, err := cr.cfg.GetSection(name)
	if err != nil {
		if name == DefaultProfile {
			return &Profile{Name: DefaultProfile, Source: SourceFile, Path: DefaultReportPath}, nil
		}
		return nil, fmt.Errorf("profile %s not found", name)
	}

	return &Profile{
		Name:   name,
		Source: section.Key("source").MustString(SourceFile),
		Path:   section.Key("path").MustString(DefaultReportPath),
		Bucket: section.Key("bucket").String(),
		Key:    section.Key("key").String(),
		Region: section.Key("region").String(),
	}, nil
}
