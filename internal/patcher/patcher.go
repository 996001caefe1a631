package patcher

import (
	"errors"
	"unicode/utf8"

	"github.com/zoro11031/fix-templates/internal/system"
	"github.com/zoro11031/fix-templates/internal/ui"
)

// ErrInvalidUTF8 is returned for files whose content is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 content")

// Result is the outcome of patching or checking a single file.
type Result struct {
	Path         string
	Replacements Counts
	// Changed is true when the fixed content differs from the original
	Changed bool
	Err     error
}

// OK reports whether the file was processed without error.
func (r Result) OK() bool {
	return r.Err == nil
}

// Patcher applies Rules to files in place.
type Patcher struct {
	fs system.FileSystemManager
	ui *ui.UI
}

// New creates a Patcher using the given filesystem and output.
func New(fs system.FileSystemManager, ui *ui.UI) *Patcher {
	return &Patcher{fs: fs, ui: ui}
}

// Patch reads path, applies Fix and writes the result back to the same path.
// The file is written even when no rule matched. Failures are reported on
// the UI and returned in the Result; Patch never panics or retries.
func (p *Patcher) Patch(path string) Result {
	res := Result{Path: path}

	original, fixed, counts, err := p.load(path)
	if err != nil {
		res.Err = err
		p.ui.ErrorLinef("Error fixing %s: %v", path, err)
		return res
	}
	res.Replacements = counts
	res.Changed = fixed != original

	perms, err := p.fs.GetPermissions(path)
	if err != nil {
		perms = system.DefaultFilePerms
	}

	if err := p.fs.WriteFile(path, []byte(fixed), perms); err != nil {
		res.Err = err
		p.ui.ErrorLinef("Error fixing %s: %v", path, err)
		return res
	}

	p.ui.SuccessLinef("Fixed %s", path)
	return res
}

// Check reports what Patch would change without writing anything.
func (p *Patcher) Check(path string) Result {
	res := Result{Path: path}

	original, fixed, counts, err := p.load(path)
	if err != nil {
		res.Err = err
		p.ui.ErrorLinef("Error checking %s: %v", path, err)
		return res
	}
	res.Replacements = counts
	res.Changed = fixed != original

	if res.Changed {
		p.ui.WarningLinef("Needs fixing %s (%d replacements)", path, counts.Total())
	} else {
		p.ui.SuccessLinef("Clean %s", path)
	}
	return res
}

// Run patches every path in order. A failure on one path never stops the
// remaining ones.
func (p *Patcher) Run(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, p.Patch(path))
	}
	return results
}

// RunCheck checks every path in order.
func (p *Patcher) RunCheck(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, p.Check(path))
	}
	return results
}

func (p *Patcher) load(path string) (original, fixed string, counts Counts, err error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return "", "", nil, err
	}
	if !utf8.Valid(data) {
		return "", "", nil, ErrInvalidUTF8
	}

	original = string(data)
	fixed, counts = Fix(original)
	return original, fixed, counts, nil
}
