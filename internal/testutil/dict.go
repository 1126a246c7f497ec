// Copyright 2021 Google LLC
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

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeFileOptions are options for writing a test fixture.
type MakeFileOptions struct {
	// DictZip indicates that the file should be compressed with DictZip and
	// given a ".dz" extension.
	DictZip bool

	// Mode is the file mode. Defaults to 0o600.
	Mode os.FileMode
}

func (o *MakeFileOptions) getMode() os.FileMode {
	if o != nil && o.Mode != 0 {
		return o.Mode
	}
	return 0o600
}

// MakeFile writes data to name under dir and returns the full path. Parent
// directories are created as needed.
func MakeFile(t *testing.T, dir, name string, data []byte, opts *MakeFileOptions) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	if opts != nil && opts.DictZip {
		path += ".dz"
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, opts.getMode())
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if err := os.WriteFile(path, data, opts.getMode()); err != nil {
		t.Fatal(err)
	}
	return path
}

// MakeTab renders lines of "headword\tdefinition" pairs as a tab-delimited
// file.
func MakeTab(pairs ...[2]string) []byte {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p[0])
		b.WriteByte('\t')
		b.WriteString(p[1])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// ReadFile reads the file at path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
