package status

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// 🎨 Symbols and message templates for status output
const (
	EmojiFixed     = "🔧"
	EmojiUnchanged = "👍"
	EmojiMissing   = "⏭️"
	EmojiError     = "❌"
	EmojiProgress  = "⏳"
	EmojiComplete  = "✅"

	MsgProgress = "%s Progress: %d/%d (%.0f%%)"
)

// FileFormatter defines how file outcomes and progress should be formatted
type FileFormatter interface {
	// FormatFileOperation formats a file outcome message
	FormatFileOperation(path string, status FileStatus, rewrites int) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string

	// FormatSummary formats a whole-run summary
	FormatSummary(s Summary) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a file outcome message with emojis
func (f *DefaultFileFormatter) FormatFileOperation(path string, status FileStatus, rewrites int) string {
	switch status {
	case StatusFixed:
		return fmt.Sprintf("%s Fixed %s (%s)", EmojiFixed, path, english.Plural(rewrites, "rewrite", ""))
	case StatusMissing:
		return fmt.Sprintf("%s  Skipped %s (missing)", EmojiMissing, path)
	case StatusError:
		return fmt.Sprintf("%s Failed %s", EmojiError, path)
	default:
		return fmt.Sprintf("%s Unchanged %s", EmojiUnchanged, path)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	if current < 0 {
		current = 0
	}
	if total < 0 {
		total = 0
	}

	var percentage float64
	switch {
	case total == 0:
		if current > 0 {
			percentage = 100
		}
	default:
		percentage = float64(current) / float64(total) * 100
		if percentage > 100 {
			percentage = 100
		}
	}

	if current >= total {
		return fmt.Sprintf(MsgProgress, EmojiComplete, current, total, percentage)
	}
	return fmt.Sprintf(MsgProgress, EmojiProgress, current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s Error: %v", EmojiError, err)
}

// FormatSummary formats a whole-run summary with emoji
func (f *DefaultFileFormatter) FormatSummary(s Summary) string {
	prefix := EmojiComplete
	if s.Errors > 0 {
		prefix = EmojiError
	}
	return fmt.Sprintf("%s %s", prefix, s)
}

// String renders the summary as a single human-readable line
func (s Summary) String() string {
	return fmt.Sprintf("%d fixed, %d unchanged, %d missing, %d failed (%s, %s written)",
		s.Fixed, s.Unchanged, s.Missing, s.Errors,
		english.Plural(s.Rewrites, "rewrite", ""),
		humanize.Bytes(uint64(s.BytesWritten)),
	)
}
