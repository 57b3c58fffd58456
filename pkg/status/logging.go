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

package status

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

func init() {
	// Enable debug output for development
	pterm.EnableDebugMessages()
}

// 📢 UserLogger provides user-friendly feedback about file changes
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 FileChangeType represents the kind of change made to a file
type FileChangeType int

const (
	FileFixed FileChangeType = iota
	FileUnchanged
	FileSkipped
	FileBackedUp
	FileRestored
	FileCleaned
	FileError
)

// 🖼️ FileChange represents a change made to a file during a run
type FileChange struct {
	Type        FileChangeType
	Path        string
	Description string
	Error       error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogFileChange logs a file change with appropriate emoji and formatting
func (u *UserLogger) LogFileChange(change FileChange) {
	// Base name keeps wide trees readable
	relPath := filepath.Base(change.Path)

	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case FileFixed:
		prefix = "🔧"
		action = "Fixed"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case FileUnchanged:
		prefix = "👍"
		action = "Unchanged"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case FileSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case FileBackedUp:
		prefix = "💾"
		action = "Backed up"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case FileRestored:
		prefix = "♻️"
		action = "Restored"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case FileCleaned:
		prefix = "🧹"
		action = "Cleaned"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case FileError:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, relPath)
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	if change.Error != nil {
		printer.Println(msg)
		pterm.Error.Println(change.Error)
		u.log.Error().Err(change.Error).Msg(msg) // Also log to zerolog for debugging
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg) // Also log to zerolog for debugging
	}
}

// 📊 LogRunSummary logs the aggregate outcome of a run
func (u *UserLogger) LogRunSummary(s Summary) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(s.String())
	u.log.Info().Msg(s.String())
}

// 🔍 LogVerification logs rewrite verifier results
func (u *UserLogger) LogVerification(ok bool, description string, err error) {
	if ok {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}

// LogFileOperation logs a file operation with a custom message
func (u *UserLogger) LogFileOperation(ctx context.Context, operation string, path string) {
	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Msg(operation)
}
