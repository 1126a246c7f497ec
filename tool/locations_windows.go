// Copyright 2025 Ian Lewis
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

//go:build windows

package tool

import (
	"os"
	"path/filepath"
)

// PackagerLocations returns the well known install locations of kindlegen.
// Kindle Previewer bundles kindlegen under the user's local app data.
func PackagerLocations() []string {
	var loc []string

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		for _, name := range []string{"Kindle Previewer 3", "Kindle Previewer"} {
			loc = append(loc, filepath.Join(localAppData, "Amazon", name, "lib", "fc", "bin", "kindlegen.exe"))
		}
	}

	if execPath, err := os.Executable(); err == nil {
		loc = append(loc, filepath.Join(filepath.Dir(execPath), "kindlegen.exe"))
	}

	return loc
}
