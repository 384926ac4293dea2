/*
 * Profiles - discovery of the AWS credential profiles.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package profiles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const (
	// profilePrefix precedes the profile names in the shared config file.
	profilePrefix = "profile "
	// defaultProfile is the section name of the default profile.
	defaultProfile = "default"
)

// Files locates the shared AWS configuration files.
type Files struct {
	Config      string
	Credentials string
}

// DefaultFiles returns the shared configuration files honoring
// AWS_CONFIG_FILE and AWS_SHARED_CREDENTIALS_FILE.
func DefaultFiles() Files {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Debugf("Cannot determine the home directory: %v", err)
	}
	files := Files{
		Config:      filepath.Join(home, ".aws", "config"),
		Credentials: filepath.Join(home, ".aws", "credentials"),
	}
	if v := os.Getenv("AWS_CONFIG_FILE"); v != "" {
		files.Config = v
	}
	if v := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); v != "" {
		files.Credentials = v
	}
	return files
}

// Lister reads the profile names from the shared configuration files.
type Lister struct {
	files Files
}

// NewLister creates a new Lister.
func NewLister(files Files) *Lister {
	return &Lister{files: files}
}

// ListProfiles returns the sorted, deduplicated profile names found in the
// config and credentials files. Missing files are skipped.
func (l Lister) ListProfiles() ([]string, error) {
	names := []string{}

	configNames, err := readSections(l.files.Config, configProfileName)
	if err != nil {
		return nil, err
	}
	names = append(names, configNames...)

	credentialNames, err := readSections(l.files.Credentials, credentialsProfileName)
	if err != nil {
		return nil, err
	}
	names = append(names, credentialNames...)

	slices.Sort(names)
	names = slices.Compact(names)
	log.Debugf("Found %d profiles", len(names))
	return names, nil
}

// readSections loads an ini file and maps its section names to profile names
// with nameOf. Sections for which nameOf returns false are skipped.
func readSections(path string, nameOf func(section string) (string, bool)) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("Shared configuration file [%s] not found", path)
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	names := []string{}
	for _, section := range f.SectionStrings() {
		if name, ok := nameOf(section); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// configProfileName returns the profile named by a config file section:
// "default" or "profile <name>".
func configProfileName(section string) (string, bool) {
	section = strings.TrimSpace(section)
	if section == defaultProfile {
		return section, true
	}
	if !strings.HasPrefix(section, profilePrefix) {
		return "", false
	}
	name := strings.TrimSpace(strings.TrimPrefix(section, profilePrefix))
	return name, name != ""
}

// credentialsProfileName returns the profile named by a credentials file
// section, where the name is used as is.
func credentialsProfileName(section string) (string, bool) {
	section = strings.TrimSpace(section)
	return section, section != "" && section != ini.DefaultSection
}
