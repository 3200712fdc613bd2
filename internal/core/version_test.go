package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depsolve/internal/types"
)

func versionsOf(members []types.ManifestCandidate) []string {
	var out []string
	for _, member := range members {
		out = append(out, member.Version)
	}
	return out
}

func TestOrderChainMembersDeb(t *testing.T) {
	members := []types.ManifestCandidate{
		{Version: "2.0-1"},
		{Version: "1:0.5-1"},
		{Version: "1.10-2"},
		{Version: "1.2-1"},
	}
	ordered, err := orderChainMembers(types.VersionKindDeb, members)
	require.NoError(t, err)
	// the epoch outranks any upstream version
	if diff := cmp.Diff([]string{"1.2-1", "1.10-2", "2.0-1", "1:0.5-1"}, versionsOf(ordered)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestOrderChainMembersPep440(t *testing.T) {
	members := []types.ManifestCandidate{
		{Version: "2.1.0"},
		{Version: "2.1.0rc1"},
		{Version: "2.0.9"},
	}
	ordered, err := orderChainMembers(types.VersionKindPep440, members)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"2.0.9", "2.1.0rc1", "2.1.0"}, versionsOf(ordered)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestOrderChainMembersNoneKeepsManifestOrder(t *testing.T) {
	members := []types.ManifestCandidate{
		{Version: "zzz"},
		{Version: "aaa"},
	}
	ordered, err := orderChainMembers(types.VersionKindNone, members)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"zzz", "aaa"}, versionsOf(ordered)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestOrderChainMembersBadVersion(t *testing.T) {
	_, err := orderChainMembers(types.VersionKindPep440, []types.ManifestCandidate{
		{Version: "not-a-version"},
		{Version: "1.0"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pep440")
}

func TestVersionCacheMemoizes(t *testing.T) {
	cache := newVersionCache(types.VersionKindDeb)
	first, err := cache.debVersion("1.0-1")
	require.NoError(t, err)
	second, err := cache.debVersion("1.0-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, cache.deb, 1)
}
