package sync

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Theomat/rusync/pkg/group"
)

// Mocked out for unit testing.
var fs = afero.NewOsFs()

// Transfer copies a file between two locations, each either a local path
// or a host:path reference, preserving modification time and permissions.
// Copy blocks until the transfer finishes. A non-nil error marks that
// single copy as failed; it never aborts the surrounding sync run.
type Transfer interface {
	Copy(src, dst string) error
}

// Report summarizes one group's sync run.
type Report struct {
	Group string

	// Updated counts the stale members that were overwritten (or attempted
	// to be). A zero-Updated report means the run was a no-op and warrants
	// no output.
	Updated int

	// Failed lists the stale targets whose overwrite transfer failed.
	Failed []string
}

// Engine synchronizes groups by propagating each group's most recently
// modified member to its stale members.
type Engine struct {
	transfer Transfer
	scratch  string
}

// NewEngine returns an engine that moves bytes with transfer. Remote
// members are staged under scratchDir so their modification times can be
// inspected before any propagation decision is made.
func NewEngine(transfer Transfer, scratchDir string) *Engine {
	return &Engine{transfer: transfer, scratch: scratchDir}
}

// Sync determines the freshest member of g and overwrites every stale
// member with it. Groups with a single member, no members, or no members
// that could be read or staged, produce a zero-Updated report.
func (e *Engine) Sync(g group.Group) Report {
	report := Report{Group: g.Name}

	var candidates []Candidate
	for _, local := range g.Locals {
		candidates = append(candidates, Candidate{ID: local, ModTime: modTime(local)})
	}

	staged := filepath.Join(e.scratch, "staged")
	for _, remote := range g.Remotes {
		if err := e.transfer.Copy(remote.String(), staged); err != nil {
			// The remote simply disappears from this run; the rest of the
			// group still syncs.
			log.WithError(err).WithField("remote", remote.String()).
				Debug("Failed to stage remote, skipping it for this run")
			continue
		}
		candidates = append(candidates, Candidate{ID: remote.String(), ModTime: modTime(staged)})
	}

	partition := PartitionByFreshness(candidates)
	if len(partition.Fresh) == 0 {
		return report
	}

	source := partition.Fresh[0]
	report.Updated = len(partition.Stale)
	for _, target := range partition.Stale {
		log.WithFields(log.Fields{
			"group":  g.Name,
			"source": source,
			"target": target,
		}).Debug("Updating stale member")

		if err := e.transfer.Copy(source, target); err != nil {
			log.WithError(err).WithField("target", target).
				Warn("Failed to update stale member")
			report.Failed = append(report.Failed, target)
		}
	}
	return report
}

// modTime returns the file's modification time in unix seconds. Files that
// can't be read report 0, which classifies them as stale against any
// readable candidate.
func modTime(path string) int64 {
	info, err := fs.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().Unix()
}
