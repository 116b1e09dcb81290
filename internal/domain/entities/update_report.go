package entities

// UpdateReport summarizes one update-diff run for the files written next to the dumped sources.
type UpdateReport struct {
	Args           []string
	Changes        []PackageDiff
	LockfileBefore []byte
	LockfileAfter  []byte
}

// LockfileChanged reports whether the update touched the lock file at all.
func (r UpdateReport) LockfileChanged() bool {
	return string(r.LockfileBefore) != string(r.LockfileAfter)
}
