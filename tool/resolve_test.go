// Copyright 2026 Ian Lewis
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

package tool

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-kindledict/internal/testutil"
)

func TestResolver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	explicit := testutil.MakeFile(t, dir, "explicit/kindlegen", nil, nil)
	fromEnv := testutil.MakeFile(t, dir, "env/kindlegen", nil, nil)
	fallback := testutil.MakeFile(t, dir, "fallback/kindlegen", nil, nil)
	onPath := "/path/bin/kindlegen"
	missing := filepath.Join(dir, "missing", "kindlegen")

	lookPath := func(found bool) func(string) (string, error) {
		return func(string) (string, error) {
			if found {
				return onPath, nil
			}
			return "", exec.ErrNotFound
		}
	}
	getenv := func(v string) func(string) string {
		return func(key string) string {
			if key == PackagerEnv {
				return v
			}
			return ""
		}
	}

	tests := []struct {
		name     string
		resolver *Resolver
		expected string
		err      error
	}{
		{
			name: "explicit wins",
			resolver: &Resolver{
				Explicit: explicit,
				EnvVar:   PackagerEnv,
				Name:     PackagerName,
				Getenv:   getenv(fromEnv),
				LookPath: lookPath(true),
			},
			expected: explicit,
		},
		{
			name: "env before path",
			resolver: &Resolver{
				EnvVar:   PackagerEnv,
				Name:     PackagerName,
				Getenv:   getenv(" " + fromEnv + "\n"),
				LookPath: lookPath(true),
			},
			expected: fromEnv,
		},
		{
			name: "path",
			resolver: &Resolver{
				EnvVar:   PackagerEnv,
				Name:     PackagerName,
				Getenv:   getenv(""),
				LookPath: lookPath(true),
			},
			expected: onPath,
		},
		{
			name: "fallback",
			resolver: &Resolver{
				EnvVar:    PackagerEnv,
				Name:      PackagerName,
				Fallbacks: []string{missing, fallback},
				Getenv:    getenv(""),
				LookPath:  lookPath(false),
			},
			expected: fallback,
		},
		{
			name: "missing explicit",
			resolver: &Resolver{
				Explicit: missing,
				Name:     PackagerName,
				LookPath: lookPath(true),
			},
			err: ErrNotFound,
		},
		{
			name: "missing env",
			resolver: &Resolver{
				EnvVar:   PackagerEnv,
				Name:     PackagerName,
				Getenv:   getenv(missing),
				LookPath: lookPath(true),
			},
			err: ErrNotFound,
		},
		{
			name: "not found",
			resolver: &Resolver{
				EnvVar:   PackagerEnv,
				Name:     PackagerName,
				Getenv:   getenv(""),
				LookPath: lookPath(false),
			},
			err: ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := test.resolver.Resolve()
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Resolve: want: %v, got: %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if want := test.expected; want != got {
				t.Fatalf("Resolve; want: %q, got: %q", want, got)
			}
		})
	}
}
