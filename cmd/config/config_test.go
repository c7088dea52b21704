/*
Copyright © 2025 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package config

import (
	"strings"
	"testing"
)

func TestValidate_ValidVisibilityModes(t *testing.T) {
	validModes := []string{"", "restricted-as-public", "public-only"}

	for _, mode := range validModes {
		t.Run(mode, func(t *testing.T) {
			cfg := &ResolverConfig{Resolve: ResolveConfig{Visibility: mode}}
			if err := cfg.Validate(); err != nil {
				t.Errorf("expected visibility %q to be valid, got error: %v", mode, err)
			}
		})
	}
}

func TestValidate_InvalidVisibilityMode(t *testing.T) {
	cfg := &ResolverConfig{Resolve: ResolveConfig{Visibility: "public-and-crate"}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected invalid visibility mode to be rejected")
	}
	if !strings.Contains(err.Error(), "public-and-crate") {
		t.Errorf("error should mention the invalid value, got: %v", err)
	}
}

func TestValidate_ValidFormats(t *testing.T) {
	for _, format := range []string{"", "xml", "json"} {
		t.Run(format, func(t *testing.T) {
			cfg := &ResolverConfig{Resolve: ResolveConfig{Format: format}}
			if err := cfg.Validate(); err != nil {
				t.Errorf("expected format %q to be valid, got error: %v", format, err)
			}
		})
	}
}

func TestValidate_InvalidFormat(t *testing.T) {
	cfg := &ResolverConfig{Resolve: ResolveConfig{Format: "yaml"}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected invalid format to be rejected")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("error should mention the invalid value, got: %v", err)
	}
}

func TestValidate_EmptyConfigValid(t *testing.T) {
	cfg := &ResolverConfig{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty config should be valid, got error: %v", err)
	}
}

func TestClone_Independent(t *testing.T) {
	cfg := &ResolverConfig{ProjectDir: "/crate"}
	clone := cfg.Clone()
	clone.ProjectDir = "/other"

	if cfg.ProjectDir != "/crate" {
		t.Errorf("cloning should not mutate the original, got %q", cfg.ProjectDir)
	}
}

func TestClone_Nil(t *testing.T) {
	var cfg *ResolverConfig
	if cfg.Clone() != nil {
		t.Error("cloning a nil config should return nil")
	}
}
