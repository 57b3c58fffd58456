// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	require.NotNil(t, cmd, "command should not be nil")
	assert.Equal(t, "fixrc", cmd.Use, "command name should match")
	assert.NotEmpty(t, cmd.Short, "should have short description")

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"fix", "check", "rules", "clean", "restore", "schema", "version"} {
		assert.Contains(t, names, want, "subcommand should be registered")
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	require.NoError(t, err, "version should succeed")
	assert.Contains(t, out.String(), "fixrc version info", "should print the version banner")
}

func TestFormatVersion(t *testing.T) {
	formatted := FormatVersion()
	assert.Contains(t, formatted, "fixrc version info", "should include the banner")
	assert.Contains(t, formatted, "version:", "should include the version line")
	assert.Contains(t, formatted, "commit:", "should include the commit line")
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.NotEmpty(t, info.Version, "version should have a default")
	assert.NotEmpty(t, info.Commit, "commit should have a default")
	assert.NotEmpty(t, info.BuildTime, "build time should have a default")
}
