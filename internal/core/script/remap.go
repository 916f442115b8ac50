package script

import (
	"fmt"
	"sort"
)

// RemapTable rewrites canonical tags into the names a transliteration engine expects.
// Deployments disagree on the synonym set, so each table carries a version
type RemapTable struct {
	Version string
	Tags    map[Tag]Tag
}

// Apply returns the remapped tag or tag itself. The zero table is the identity
func (t RemapTable) Apply(tag Tag) Tag {
	if to, ok := t.Tags[tag]; ok {
		return to
	}
	return tag
}

// DefaultRemap is the version used when none is configured
const DefaultRemap = "v1"

var remaps = map[string]map[Tag]Tag{
	"v1": {
		"Syrc": "Syre",
	},
	"v2": {
		"Syrc": "Syre",
		"Mymr": "Burmese",
		"Avst": "Avestan",
	},
}

// Remap returns the named table. Unknown versions are an error so a typo fails startup
func Remap(version string) (RemapTable, error) {
	tags, ok := remaps[version]
	if !ok {
		return RemapTable{}, fmt.Errorf("script: unknown remap version %q (have %v)", version, RemapVersions())
	}
	cp := make(map[Tag]Tag, len(tags))
	for k, v := range tags {
		cp[k] = v
	}
	return RemapTable{Version: version, Tags: cp}, nil
}

// RemapVersions lists the known table versions, sorted
func RemapVersions() []string {
	out := make([]string, 0, len(remaps))
	for v := range remaps {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
