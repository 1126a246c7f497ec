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

package book

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ianlewis/go-kindledict/merge"
	"github.com/ianlewis/go-kindledict/tool"
)

// Build steps.
const (
	StepMerge   = "merge"
	StepConvert = "convert"
	StepPackage = "package"
)

// StepError is an error in one step of a build.
type StepError struct {
	// Step is the step that failed.
	Step string

	// Err is the underlying error.
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Pipeline builds book dictionaries. The steps run strictly in order: merge
// the base dictionary with the character list, convert the union file to OPF,
// then package the OPF. The first failure aborts the build.
type Pipeline struct {
	// Root is the dictionaries root holding the book folders.
	Root string

	// Base is the path of the base dictionary.
	Base string

	// Tag prefixes character definitions. Defaults to merge.CharacterTag.
	Tag string

	// Converter converts the union file to OPF.
	Converter tool.ExternalTool

	// Packager packages the OPF. If nil the packaging step is skipped.
	Packager tool.ExternalTool

	// Logf receives progress messages. May be nil.
	Logf func(format string, args ...any)
}

// Result is the result of a successful build.
type Result struct {
	// Layout holds the book's paths.
	Layout *Layout

	// Merge holds the merge counts.
	Merge *merge.Stats

	// Outputs are the files produced by the last step that ran.
	Outputs []string
}

// Check verifies that b is valid and that its inputs exist without writing
// anything. Callers can run it before locating the external tools so that a
// missing input is reported ahead of a missing tool.
func (p *Pipeline) Check(b *Book) (*Layout, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	layout := b.Layout(p.Root)
	if err := merge.CheckInputs(p.Base, layout.Characters); err != nil {
		return nil, &StepError{Step: StepMerge, Err: err}
	}
	return layout, nil
}

// Build builds the dictionary for b. Any previous packaged dictionary is
// removed first so that a failed build cannot be mistaken for a successful
// one.
func (p *Pipeline) Build(ctx context.Context, b *Book) (*Result, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	layout := b.Layout(p.Root)

	if err := os.Remove(layout.Mobi); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, &StepError{Step: StepMerge, Err: fmt.Errorf("removing %q: %w", layout.Mobi, err)}
	}

	p.logf("Merging %s and %s into %s", p.Base, layout.Characters, layout.Union)
	stats, err := merge.Files(ctx, p.Base, layout.Characters, layout.Union, &merge.Options{Tag: p.Tag})
	if err != nil {
		return nil, &StepError{Step: StepMerge, Err: err}
	}
	p.logf("  %d base entries, %d character entries", stats.Base, stats.Characters)

	result := &Result{
		Layout:  layout,
		Merge:   stats,
		Outputs: []string{layout.Union},
	}

	if p.Converter == nil {
		return result, nil
	}
	p.logf("Running %s on %s", p.Converter.Name(), layout.Union)
	outputs, err := p.Converter.Run(ctx, layout.Union)
	if err != nil {
		return nil, &StepError{Step: StepConvert, Err: err}
	}
	result.Outputs = outputs

	if p.Packager == nil {
		return result, nil
	}
	opf := layout.OPF
	if len(outputs) > 0 {
		opf = outputs[0]
	}
	p.logf("Running %s on %s", p.Packager.Name(), opf)
	outputs, err = p.Packager.Run(ctx, opf)
	if err != nil {
		return nil, &StepError{Step: StepPackage, Err: err}
	}
	result.Outputs = outputs

	return result, nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}
