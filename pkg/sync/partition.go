package sync

// Candidate is one group member considered during a sync run: its transfer
// identity (a local path or a host:path reference) and its last-modified
// time in unix seconds. Members that couldn't be read carry ModTime 0, so
// they always lose against any readable copy.
type Candidate struct {
	ID      string
	ModTime int64
}

// Partition splits a group's candidates into the freshest set and the
// stale targets.
type Partition struct {
	// Latest is the highest modification time observed.
	Latest int64

	// Fresh holds the candidates tied at Latest, in encounter order. The
	// first entry is the propagation source; the rest are already current
	// and are left alone.
	Fresh []string

	// Stale holds the candidates strictly older than Latest, in the order
	// they should be overwritten.
	Stale []string
}

// PartitionByFreshness folds over the candidates in order, tracking the
// newest modification time seen so far. A candidate newer than the current
// leader demotes the whole fresh set to stale; a candidate tied with the
// leader joins the fresh set; anything older is stale. An empty input
// yields an empty partition with no fresh set, which callers must treat as
// "nothing to sync".
func PartitionByFreshness(candidates []Candidate) Partition {
	var p Partition
	for _, c := range candidates {
		switch {
		case c.ModTime > p.Latest:
			p.Stale = append(p.Stale, p.Fresh...)
			p.Fresh = []string{c.ID}
			p.Latest = c.ModTime
		case c.ModTime == p.Latest:
			p.Fresh = append(p.Fresh, c.ID)
		default:
			p.Stale = append(p.Stale, c.ID)
		}
	}
	return p
}
