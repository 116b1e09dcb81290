package entities

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// ChangeKind describes how a package moved between two snapshots.
type ChangeKind string

const (
	ChangeAdded      ChangeKind = "added"
	ChangeRemoved    ChangeKind = "removed"
	ChangeUpgraded   ChangeKind = "upgraded"
	ChangeDowngraded ChangeKind = "downgraded"
)

// PackageDiff pairs the source directories of one package before and after an update.
// An empty Before means the package is new; an empty After means it was removed.
type PackageDiff struct {
	Name          string
	Label         string // directory name used when dumping, unique within one diff
	BeforeVersion string
	AfterVersion  string
	Before        string
	After         string
}

// Kind classifies the change.
func (d PackageDiff) Kind() ChangeKind {
	switch {
	case d.Before == "":
		return ChangeAdded
	case d.After == "":
		return ChangeRemoved
	case compareVersions(d.AfterVersion, d.BeforeVersion) < 0:
		return ChangeDowngraded
	default:
		return ChangeUpgraded
	}
}

// DiffSnapshots returns every package added, removed, or version-changed between two snapshots,
// sorted by name and then version. Cargo allows several versions of one crate side by side, so
// versions are compared as sets per name: removed and added versions are paired in ascending
// order and whatever is left over is reported as a pure removal or addition.
func DiffSnapshots(before, after *Snapshot) []PackageDiff {
	beforeByName := groupByName(before)
	afterByName := groupByName(after)

	names := make([]string, 0, len(beforeByName)+len(afterByName))
	for name := range beforeByName {
		names = append(names, name)
	}
	for name := range afterByName {
		if _, seen := beforeByName[name]; !seen {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var result []PackageDiff
	for _, name := range names {
		result = append(result, diffVersions(name, beforeByName[name], afterByName[name])...)
	}
	return result
}

func diffVersions(name string, before, after map[string]ResolvedPackage) []PackageDiff {
	removed := missingFrom(before, after)
	added := missingFrom(after, before)

	var diffs []PackageDiff
	for i := 0; i < len(removed) || i < len(added); i++ {
		diff := PackageDiff{Name: name}
		if i < len(removed) {
			pkg := before[removed[i]]
			diff.BeforeVersion = pkg.Version
			diff.Before = pkg.SourceDir()
		}
		if i < len(added) {
			pkg := after[added[i]]
			diff.AfterVersion = pkg.Version
			diff.After = pkg.SourceDir()
		}
		diffs = append(diffs, diff)
	}

	for i := range diffs {
		diffs[i].Label = name
		if len(diffs) > 1 {
			version := diffs[i].BeforeVersion
			if version == "" {
				version = diffs[i].AfterVersion
			}
			diffs[i].Label = name + ":" + version
		}
	}
	return diffs
}

// missingFrom returns the versions present in from but not in other, ascending.
func missingFrom(from, other map[string]ResolvedPackage) []string {
	var versions []string
	for version := range from {
		if _, ok := other[version]; !ok {
			versions = append(versions, version)
		}
	}
	sort.Slice(versions, func(i, j int) bool {
		return compareVersions(versions[i], versions[j]) < 0
	})
	return versions
}

func groupByName(snapshot *Snapshot) map[string]map[string]ResolvedPackage {
	grouped := make(map[string]map[string]ResolvedPackage)
	if snapshot == nil {
		return grouped
	}
	for _, pkg := range snapshot.Packages {
		if grouped[pkg.Name] == nil {
			grouped[pkg.Name] = make(map[string]ResolvedPackage)
		}
		grouped[pkg.Name][pkg.Version] = pkg
	}
	return grouped
}

// compareVersions compares two cargo versions, falling back to plain string
// comparison when either side is not valid semver.
func compareVersions(a, b string) int {
	va, vb := normalizeVersion(a), normalizeVersion(b)
	if semver.IsValid(va) && semver.IsValid(vb) {
		if c := semver.Compare(va, vb); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

const (
	// BeforeDirName is the destination subdirectory holding pre-update sources.
	BeforeDirName = "before"
	// AfterDirName is the destination subdirectory holding post-update sources.
	AfterDirName = "after"
)
