package engine

import (
	"sort"

	"github.com/nkoenig/decpac/internal/liststore"
)

// Inventory is the slice of the host package manager the engine reads.
type Inventory interface {
	Installed() ([]string, error)
}

// Engine computes read-only reconciliation views over the declared lists
// and the installed set. It never mutates either side.
type Engine struct {
	Store     *liststore.Store
	Inventory Inventory
}

// DriftReport answers "is this machine's declared state satisfied".
//
// Extra deliberately intersects the installed set with the union of every
// list, not this machine's target: a package declared only for another
// machine shows up as Extra here, while a package declared nowhere is not
// drift at all from this view (Update surfaces it as Unlisted).
type DriftReport struct {
	Missing []string // declared for this machine, not installed
	Extra   []string // installed and declared somewhere, not in this machine's target
}

// UpdateReport reconciles list content toward observed reality.
type UpdateReport struct {
	Unlisted []string // installed, declared in no list at all
	Removed  []string // declared for this machine, no longer installed
}

// PlanStep is the proposed install for one source: the missing names in
// sorted order, ready to be space-joined into a command line.
type PlanStep struct {
	Source liststore.Source
	Names  []string
}

// Diff compares the machine's target set against the installed set.
func (e *Engine) Diff(machine string) (*DriftReport, error) {
	target, err := e.target(machine)
	if err != nil {
		return nil, err
	}
	declared, err := e.declared()
	if err != nil {
		return nil, err
	}
	installed, err := e.installedSet()
	if err != nil {
		return nil, err
	}

	rep := &DriftReport{}
	for name := range target {
		if !installed[name] {
			rep.Missing = append(rep.Missing, name)
		}
	}
	for name := range installed {
		if declared[name] && !target[name] {
			rep.Extra = append(rep.Extra, name)
		}
	}
	sort.Strings(rep.Missing)
	sort.Strings(rep.Extra)
	return rep, nil
}

// SyncPlan proposes, per source, the install needed to satisfy the
// machine's target. It issues no command itself; steps with nothing missing
// are omitted.
func (e *Engine) SyncPlan(machine string) ([]PlanStep, error) {
	installed, err := e.installedSet()
	if err != nil {
		return nil, err
	}
	var steps []PlanStep
	for _, src := range liststore.Sources() {
		target, err := e.sourceTarget(src, machine)
		if err != nil {
			return nil, err
		}
		var missing []string
		for name := range target {
			if !installed[name] {
				missing = append(missing, name)
			}
		}
		if len(missing) == 0 {
			continue
		}
		sort.Strings(missing)
		steps = append(steps, PlanStep{Source: src, Names: missing})
	}
	return steps, nil
}

// Update reports the divergence of list content from observed reality:
// installed packages declared nowhere, and declared packages that have
// disappeared from the system.
func (e *Engine) Update(machine string) (*UpdateReport, error) {
	target, err := e.target(machine)
	if err != nil {
		return nil, err
	}
	declared, err := e.declared()
	if err != nil {
		return nil, err
	}
	installed, err := e.installedSet()
	if err != nil {
		return nil, err
	}

	rep := &UpdateReport{}
	for name := range installed {
		if !declared[name] {
			rep.Unlisted = append(rep.Unlisted, name)
		}
	}
	for name := range target {
		if !installed[name] {
			rep.Removed = append(rep.Removed, name)
		}
	}
	sort.Strings(rep.Unlisted)
	sort.Strings(rep.Removed)
	return rep, nil
}

// sourceTarget is the union of the common and machine lists for one source.
func (e *Engine) sourceTarget(src liststore.Source, machine string) (map[string]bool, error) {
	target := make(map[string]bool)
	for _, scope := range []string{liststore.ScopeCommon, machine} {
		names, err := e.Store.Load(src, scope)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			target[n] = true
		}
	}
	return target, nil
}

func (e *Engine) target(machine string) (map[string]bool, error) {
	target := make(map[string]bool)
	for _, src := range liststore.Sources() {
		st, err := e.sourceTarget(src, machine)
		if err != nil {
			return nil, err
		}
		for n := range st {
			target[n] = true
		}
	}
	return target, nil
}

// declared is the union of every list on disk, regardless of scope.
func (e *Engine) declared() (map[string]bool, error) {
	refs, err := e.Store.AllLists()
	if err != nil {
		return nil, err
	}
	declared := make(map[string]bool)
	for _, ref := range refs {
		names, err := e.Store.Load(ref.Source, ref.Scope)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			declared[n] = true
		}
	}
	return declared, nil
}

func (e *Engine) installedSet() (map[string]bool, error) {
	names, err := e.Inventory.Installed()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set, nil
}
