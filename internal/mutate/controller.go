package mutate

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/nkoenig/decpac/internal/liststore"
)

var (
	// ErrAborted means the operator declined the confirmation gate. No side
	// effects occurred for the aborted batch.
	ErrAborted = errors.New("aborted")
	// ErrNotFound means no list contains the requested package.
	ErrNotFound = errors.New("not found in any list")
	// ErrCommandFailed means the staged installer command exited non-zero.
	// List files are left untouched on this path.
	ErrCommandFailed = errors.New("external command failed")
)

// Manager is the host package manager the controller stages commands
// against and classifies names with.
type Manager interface {
	Installed() ([]string, error)
	IsOfficial(name string) (bool, error)
	InstallCommand(source liststore.Source, names []string) []string
	RemoveCommand(source liststore.Source, names []string) []string
	ConfirmWord(source liststore.Source) string
	Run(argv []string, log io.Writer) error
}

// Notifier is the external re-sync collaborator.
type Notifier interface {
	Track(path string)
	Changed(path string)
}

// prompt blocks for the operator's confirmation line. Package var so tests
// substitute a canned responder.
var prompt = func(title string) (string, error) {
	var resp string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Value(&resp),
	)).Run()
	if err != nil {
		return "", err
	}
	return resp, nil
}

// Controller mediates every list mutation. A request is classified per
// source, staged as the exact installer command, gated on the operator
// typing the command family back, and only applied to the lists after the
// external command succeeds. Requests scoped to a different machine skip
// staging entirely and edit lists only.
type Controller struct {
	Store   *liststore.Store
	Manager Manager
	Notify  Notifier
	Machine string // resolved scope of the current host
	Log     io.Writer
}

// batch is one post-classification sub-request: names of a single source,
// in request order.
type batch struct {
	source liststore.Source
	names  []string
}

// Add declares names in the given scope. When the scope targets this
// machine (the machine's own scope or common), the install is staged and
// gated first; otherwise the lists are edited directly.
func (c *Controller) Add(names []string, scope string) error {
	batches, err := c.classify(names)
	if err != nil {
		return err
	}
	local := scope == liststore.ScopeCommon || scope == c.Machine
	for _, b := range batches {
		if local {
			if err := c.confirmAndRun(c.Manager.InstallCommand(b.source, b.names), b.source); err != nil {
				return err
			}
		}
		for _, name := range b.names {
			if err := c.applyAdd(b.source, scope, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// Remove undeclares names. With an explicit scope only that list is edited;
// with none, every list containing the name is. Names that are actually
// installed and whose removal targets this machine go through the staged,
// gated removal command first; list edits follow only on success.
func (c *Controller) Remove(names []string, scope string) error {
	batches, err := c.classify(names)
	if err != nil {
		return err
	}
	installed, err := c.installedSet()
	if err != nil {
		return err
	}
	local := scope == "" || scope == liststore.ScopeCommon || scope == c.Machine

	for _, b := range batches {
		var toUninstall []string
		for _, name := range b.names {
			if local && installed[name] {
				toUninstall = append(toUninstall, name)
			}
		}
		if len(toUninstall) > 0 {
			if err := c.confirmAndRun(c.Manager.RemoveCommand(b.source, toUninstall), b.source); err != nil {
				return err
			}
		}
		for _, name := range b.names {
			if err := c.applyRemove(b.source, scope, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// Move relocates a declared name to the destination scope, keeping its
// source. The name is removed from every list currently containing it
// (there may be several) and re-added, per source found, under dest. This
// is a list-only operation; nothing is installed or removed on the system.
func (c *Controller) Move(name, dest string) error {
	refs, err := c.Store.AllLists()
	if err != nil {
		return err
	}
	var containing []liststore.ListRef
	for _, ref := range refs {
		ok, err := c.Store.Contains(ref.Source, ref.Scope, name)
		if err != nil {
			return err
		}
		if ok {
			containing = append(containing, ref)
		}
	}
	if len(containing) == 0 {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	sources := make(map[liststore.Source]bool)
	for _, ref := range containing {
		path := c.Store.Path(ref.Source, ref.Scope)
		c.Notify.Track(path)
		if _, err := c.Store.Remove(ref.Source, ref.Scope, name); err != nil {
			return err
		}
		c.Notify.Changed(path)
		fmt.Fprintf(c.Log, "[decpac] removed %s from %s-%s\n", name, ref.Source, ref.Scope)
		sources[ref.Source] = true
	}
	for _, src := range liststore.Sources() {
		if !sources[src] {
			continue
		}
		if err := c.applyAdd(src, dest, name); err != nil {
			return err
		}
	}
	return nil
}

// classify splits names into per-source batches via repository lookup,
// preserving request order within each batch. Official precedes foreign so
// mixed requests are processed in a stable order, each batch behind its own
// confirmation gate.
func (c *Controller) classify(names []string) ([]batch, error) {
	bySource := make(map[liststore.Source][]string)
	for _, name := range names {
		official, err := c.Manager.IsOfficial(name)
		if err != nil {
			return nil, fmt.Errorf("classifying %s: %w", name, err)
		}
		src := liststore.SourceForeign
		if official {
			src = liststore.SourceOfficial
		}
		bySource[src] = append(bySource[src], name)
	}
	var batches []batch
	for _, src := range liststore.Sources() {
		if len(bySource[src]) > 0 {
			batches = append(batches, batch{source: src, names: bySource[src]})
		}
	}
	return batches, nil
}

// confirmAndRun shows the staged command verbatim, requires the operator to
// type the command family back, and runs it. Any other input aborts with
// zero side effects.
func (c *Controller) confirmAndRun(argv []string, source liststore.Source) error {
	rendered := strings.Join(argv, " ")
	fmt.Fprintf(c.Log, "[decpac] will run: %s\n", rendered)

	word := c.Manager.ConfirmWord(source)
	input, err := prompt(fmt.Sprintf("Type %q to run this command", word))
	if err != nil {
		return err
	}
	if input != word {
		return fmt.Errorf("%w: expected %q", ErrAborted, word)
	}
	if err := c.Manager.Run(argv, c.Log); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCommandFailed, rendered, err)
	}
	return nil
}

func (c *Controller) applyAdd(source liststore.Source, scope, name string) error {
	path := c.Store.Path(source, scope)
	c.Notify.Track(path)
	changed, err := c.Store.Add(source, scope, name)
	if err != nil {
		return err
	}
	if changed {
		fmt.Fprintf(c.Log, "[decpac] added %s to %s-%s\n", name, source, scope)
	} else {
		fmt.Fprintf(c.Log, "[decpac] %s already in %s-%s\n", name, source, scope)
	}
	c.Notify.Changed(path)
	return nil
}

// applyRemove edits one list, or every list containing the name when scope
// is empty.
func (c *Controller) applyRemove(source liststore.Source, scope, name string) error {
	if scope != "" {
		return c.removeFrom(source, scope, name)
	}
	refs, err := c.Store.AllLists()
	if err != nil {
		return err
	}
	removed := false
	for _, ref := range refs {
		ok, err := c.Store.Contains(ref.Source, ref.Scope, name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := c.removeFrom(ref.Source, ref.Scope, name); err != nil {
			return err
		}
		removed = true
	}
	if !removed {
		fmt.Fprintf(c.Log, "[decpac] %s not declared in any list\n", name)
	}
	return nil
}

func (c *Controller) removeFrom(source liststore.Source, scope, name string) error {
	path := c.Store.Path(source, scope)
	c.Notify.Track(path)
	changed, err := c.Store.Remove(source, scope, name)
	if err != nil {
		return err
	}
	if changed {
		fmt.Fprintf(c.Log, "[decpac] removed %s from %s-%s\n", name, source, scope)
	}
	c.Notify.Changed(path)
	return nil
}

func (c *Controller) installedSet() (map[string]bool, error) {
	names, err := c.Manager.Installed()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set, nil
}
