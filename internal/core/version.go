package core

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"depsolve/internal/types"
)

// versionCache memoizes parsed version objects so ordering a chain
// does not re-parse the same strings on every comparison.
type versionCache struct {
	kind types.VersionKind
	deb  map[string]debversion.Version
	pep  map[string]pep440.Version
}

// newVersionCache creates an empty cache for the given version kind.
func newVersionCache(kind types.VersionKind) *versionCache {
	return &versionCache{
		kind: kind,
		deb:  map[string]debversion.Version{},
		pep:  map[string]pep440.Version{},
	}
}

// debVersion returns a parsed Debian version, caching the result.
func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

// pepVersion returns a parsed PEP 440 version, caching the result.
func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}

// less compares two version strings under the cache's kind.
func (c *versionCache) less(a, b string) (bool, error) {
	switch c.kind {
	case types.VersionKindDeb:
		av, err := c.debVersion(a)
		if err != nil {
			return false, err
		}
		bv, err := c.debVersion(b)
		if err != nil {
			return false, err
		}
		return av.LessThan(bv), nil
	case types.VersionKindPep440:
		av, err := c.pepVersion(a)
		if err != nil {
			return false, err
		}
		bv, err := c.pepVersion(b)
		if err != nil {
			return false, err
		}
		return av.LessThan(bv), nil
	default:
		return false, nil
	}
}

// orderChainMembers sorts a chain's members ascending by parsed
// version when a comparator kind is set; plain manifest order is kept
// otherwise. The sort is stable so equal versions keep their relative
// manifest positions.
func orderChainMembers(kind types.VersionKind, members []types.ManifestCandidate) ([]types.ManifestCandidate, error) {
	ordered := append([]types.ManifestCandidate(nil), members...)
	if kind == types.VersionKindNone || kind == "" {
		return ordered, nil
	}
	cache := newVersionCache(kind)
	var sortErr error
	sort.SliceStable(ordered, func(i, j int) bool {
		less, err := cache.less(ordered[i].Version, ordered[j].Version)
		if err != nil && sortErr == nil {
			sortErr = err
		}
		return less
	})
	if sortErr != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unparsable %s version in chain", kind)).
			WithCause(sortErr)
	}
	return ordered, nil
}
