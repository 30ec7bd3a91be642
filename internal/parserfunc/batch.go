// ============================================================================
// sfe - Escaped String Functions
// ============================================================================
//
// Package:     parserfunc
// Description: YAML batch evaluation of function invocations
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package parserfunc

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/sfe/foundation/core/error"
	"github.com/msto63/sfe/foundation/core/log"
	mdwstringx "github.com/msto63/sfe/foundation/utils/stringx"
)

// BatchItem is one invocation in a batch file:
//
//	- name: centered title
//	  fn: pad_e
//	  args: [Title, 11, '-', center]
//	  expect: "---Title---"
type BatchItem struct {
	Name   string   `yaml:"name,omitempty"`
	Fn     string   `yaml:"fn"`
	Args   []string `yaml:"args,omitempty"`
	Expect *string  `yaml:"expect,omitempty"`
}

// Label returns the item name, or the function name when unnamed
func (i BatchItem) Label() string {
	return mdwstringx.FirstNonBlank(i.Name, i.Fn)
}

// BatchResult is the outcome of one batch item
type BatchResult struct {
	Item    BatchItem
	Output  string
	Err     error
	Checked bool // Item carried an expectation
	Passed  bool // Output matched the expectation, or nothing was expected
}

// BatchReport collects the results of a batch run in input order
type BatchReport struct {
	Results []BatchResult
	Failed  int
}

// OK reports whether every item ran and matched its expectation
func (r BatchReport) OK() bool {
	return r.Failed == 0
}

// DecodeBatch reads a YAML list of batch items. Unknown keys and items
// without a function name are rejected; an empty document is an empty batch.
func DecodeBatch(reader io.Reader) ([]BatchItem, error) {
	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)

	var items []BatchItem
	if err := dec.Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, mdwerror.Wrap(err, "failed to decode batch").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("parserfunc.DecodeBatch")
	}

	for idx, item := range items {
		if mdwstringx.IsBlank(item.Fn) {
			return nil, mdwerror.Newf("batch item %d has no function name", idx+1).
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("parserfunc.DecodeBatch").
				WithDetail("item", idx+1)
		}
	}
	return items, nil
}

// RunBatch evaluates items in order. Unknown functions and failed
// expectations count as failures; evaluation never stops early.
func (r *Registry) RunBatch(items []BatchItem) BatchReport {
	report := BatchReport{Results: make([]BatchResult, 0, len(items))}

	for _, item := range items {
		res := BatchResult{Item: item, Passed: true}

		res.Output, res.Err = r.Invoke(item.Fn, item.Args)
		switch {
		case res.Err != nil:
			res.Passed = false
		case item.Expect != nil:
			res.Checked = true
			res.Passed = res.Output == *item.Expect
		}

		if !res.Passed {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}

	r.logger.Debug("batch evaluated",
		log.Int("itemCount", len(items)).Merge(log.Int("failed", report.Failed)))

	return report
}
