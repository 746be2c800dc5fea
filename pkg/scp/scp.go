// Package scp invokes the system scp binary to move bytes between sync
// members. scp resolves hosts and credentials through the user's own ssh
// configuration and agents, so rusync never handles authentication itself.
package scp

import (
	"os"
	"os/exec"

	"github.com/Theomat/rusync/pkg/errors"
)

// Copier runs scp as a blocking subprocess. It satisfies sync.Transfer.
type Copier struct {
	bin string
}

// New returns a Copier using the scp binary found on PATH.
func New() Copier {
	return Copier{bin: "scp"}
}

// Copy copies src to dst, each either a local path or a host:path
// reference. The -p flag keeps modification times and permissions intact
// across the copy, which the sync algorithm depends on. scp's own output
// goes straight to the user's terminal, and the call blocks until the
// subprocess exits.
func (c Copier) Copy(src, dst string) error {
	cmd := exec.Command(c.bin, "-p", src, dst)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.WithContext(err, "run scp")
	}
	return nil
}
