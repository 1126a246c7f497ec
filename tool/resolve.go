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
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Resolver locates a tool's executable. Candidates are tried in order: the
// explicit path, the environment variable, the search path and finally the
// fallback locations.
type Resolver struct {
	// Explicit is a path given directly, e.g. on the command line.
	Explicit string

	// EnvVar is the name of an environment variable holding the path.
	EnvVar string

	// Name is the executable name looked up on the search path.
	Name string

	// Fallbacks are well known install locations.
	Fallbacks []string

	// Getenv defaults to os.Getenv.
	Getenv func(string) string

	// LookPath defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// Resolve returns the path of the executable. An explicit or environment path
// that does not exist is an error rather than falling through to the search
// path, since it indicates a configuration mistake.
func (r *Resolver) Resolve() (string, error) {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	if p := strings.TrimSpace(r.Explicit); p != "" {
		return checkExecutable(p, "given path")
	}

	if r.EnvVar != "" {
		if p := strings.TrimSpace(getenv(r.EnvVar)); p != "" {
			return checkExecutable(p, r.EnvVar)
		}
	}

	if r.Name != "" {
		if p, err := lookPath(r.Name); err == nil {
			return p, nil
		}
	}

	for _, p := range r.Fallbacks {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	if r.EnvVar != "" {
		return "", fmt.Errorf("%w: %s not found on PATH; set %s to its full path", ErrNotFound, r.Name, r.EnvVar)
	}
	return "", fmt.Errorf("%w: %s not found on PATH", ErrNotFound, r.Name)
}

func checkExecutable(path, source string) (string, error) {
	// A bare name is looked up on the search path.
	if !strings.ContainsRune(path, filepath.Separator) && !strings.ContainsRune(path, '/') {
		p, err := exec.LookPath(path)
		if err != nil {
			return "", fmt.Errorf("%w: %q (from %s): %w", ErrNotFound, path, source, err)
		}
		return p, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %q (from %s): %w", ErrNotFound, path, source, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %q (from %s) is a directory", ErrNotFound, path, source)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %q (from %s): %w", ErrNotFound, path, source, err)
	}
	return abs, nil
}
