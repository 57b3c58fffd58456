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
	"fmt"
	"runtime/debug"
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// GetVersionInfo returns version information from build info
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   "dev",
		Commit:    "unknown",
		BuildTime: "unknown",
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Commit = setting.Value
		case "vcs.time":
			info.BuildTime = setting.Value
		}
	}

	return info
}

// FormatVersion returns a formatted version string
func FormatVersion() string {
	info := GetVersionInfo()
	return fmt.Sprintf(`🚀 fixrc version info:
   version: %s
   commit:  %s
   built:   %s
`, info.Version, info.Commit, info.BuildTime)
}
