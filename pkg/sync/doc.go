/*
Package sync implements rusync's synchronization algorithm. For one group
at a time, it determines which member holds the most recently modified copy
and overwrites every stale member with it.

A run proceeds in three phases:

1) Collect candidates -- the group's local paths in stored order, then its
remotes formatted as host:path. A remote's modification time can only be
read once a local copy exists, so each remote is first staged into a
scratch location through the Transfer mechanism. Remotes that fail to
stage drop out of the run entirely.

2) Partition by freshness -- a pure fold over (identity, modification
time) pairs that splits the candidates into the freshest set and the stale
targets. It has no I/O of its own so it can be tested against plain
values.

3) Propagate -- the first member of the freshest set is copied over every
stale target. Individual transfer failures are recorded in the report but
never abort the remaining transfers.

The engine never prints; it returns a structured Report and leaves display
to the caller.
*/
package sync
