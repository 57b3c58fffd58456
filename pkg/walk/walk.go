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

package walk

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📂 Source yields the file paths an operation visits
type Source interface {
	// Paths returns paths in a stable order. Callers own existence checks:
	// a listed path may be gone by the time it is read.
	Paths(ctx context.Context) ([]string, error)
}

// 📄 List returns a Source over a literal path list, deduplicated with the
// first occurrence winning. Paths are returned as given, existing or not.
func List(paths ...string) Source {
	return &listSource{paths: paths}
}

// 🔍 Glob returns a Source that walks root and matches relative paths
// against include patterns (doublestar syntax, `**` crosses directories).
// An empty include list matches every file. Ignore patterns drop matching
// files and prune matching directories.
func Glob(root string, include []string, ignore []string) Source {
	return &globSource{root: root, include: include, ignore: ignore}
}

// 🔗 Merge concatenates sources in order, deduplicating across them with
// the first occurrence winning.
func Merge(sources ...Source) Source {
	return &mergeSource{sources: sources}
}

type listSource struct {
	paths []string
}

func (s *listSource) Paths(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool, len(s.paths))
	out := make([]string, 0, len(s.paths))

	for _, path := range s.paths {
		if seen[path] {
			continue
		}
		seen[path] = true
		out = append(out, path)
	}

	return out, nil
}

type globSource struct {
	root    string
	include []string
	ignore  []string
}

func (s *globSource) Paths(ctx context.Context) ([]string, error) {
	var out []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return errors.Errorf("relativizing %s: %w", path, relErr)
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && matchAny(s.ignore, rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchAny(s.ignore, rel) {
			return nil
		}

		if len(s.include) == 0 || matchAny(s.include, rel) {
			out = append(out, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", s.root, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", s.root).
		Int("files", len(out)).
		Msg("enumerated files")

	return out, nil
}

type mergeSource struct {
	sources []Source
}

func (s *mergeSource) Paths(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	for _, source := range s.sources {
		paths, err := source.Paths(ctx)
		if err != nil {
			return nil, errors.Errorf("merging sources: %w", err)
		}

		for _, path := range paths {
			if seen[path] {
				continue
			}
			seen[path] = true
			out = append(out, path)
		}
	}

	return out, nil
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}

	return false
}
