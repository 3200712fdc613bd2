package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"depsolve/internal/types"
)

// UniverseBuilder turns a loaded manifest into the solver's upstream
// contract: ordered chains with dense candidate IDs, the provides
// index, and the request sets.
type UniverseBuilder struct{}

// RequestOverrides carries request material from outside the manifest,
// typically CLI flags. Install and Delete entries use the same
// `uid` / `uid=version` syntax as the manifest's requests block; a
// non-empty Job replaces the manifest's job.
type RequestOverrides struct {
	Job     string
	Install []string
	Delete  []string
}

// NewUniverseBuilder creates a builder.
func NewUniverseBuilder() UniverseBuilder {
	return UniverseBuilder{}
}

var validOrigins = map[string]types.Origin{
	string(types.OriginInstalled): types.OriginInstalled,
	string(types.OriginRemote):    types.OriginRemote,
}

var validConflictKinds = map[string]types.ConflictKind{
	string(types.ConflictRemoteLocal):  types.ConflictRemoteLocal,
	string(types.ConflictRemoteRemote): types.ConflictRemoteRemote,
}

var validJobs = map[string]types.JobType{
	string(types.JobInstall): types.JobInstall,
	string(types.JobUpgrade): types.JobUpgrade,
	string(types.JobDelete):  types.JobDelete,
	string(types.JobFetch):   types.JobFetch,
}

// Build validates the manifest, orders every chain by its version
// kind, assigns candidate identities and digests, and materialises the
// request sets. The returned universe owns its candidates; the problem
// built on top of it only borrows them.
func (b UniverseBuilder) Build(ctx context.Context, manifest types.ManifestFile, overrides RequestOverrides) (types.Universe, error) {
	if err := b.validateManifest(ctx, manifest); err != nil {
		return types.Universe{}, err
	}

	job, err := resolveJob(manifest.Job, overrides.Job)
	if err != nil {
		return types.Universe{}, err
	}

	universe := types.Universe{
		Provides:      map[string][]types.Candidate{},
		RequestAdd:    map[int]bool{},
		RequestDelete: map[int]bool{},
		Job:           job,
	}

	nextID := 0
	for _, chain := range manifest.Candidates {
		ordered, err := orderChainMembers(chain.VersionKind, chain.Members)
		if err != nil {
			return types.Universe{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("chain %s: %s", chain.UID, errorMessage(err))).
				WithCause(err)
		}
		built := types.Chain{UID: chain.UID}
		for i, member := range ordered {
			origin, ok := validOrigins[member.Origin]
			if !ok {
				return types.Universe{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("chain %s: unknown origin %q", chain.UID, member.Origin))
			}
			conflicts, err := buildConflicts(chain.UID, member.Conflicts)
			if err != nil {
				return types.Universe{}, err
			}
			cand := types.Candidate{
				ID:             nextID,
				UID:            chain.UID,
				Version:        member.Version,
				Digest:         member.Digest,
				Origin:         origin,
				Depends:        member.Depends,
				Conflicts:      conflicts,
				RequiresShlibs: member.RequiresShlibs,
				ProvidesShlibs: member.ProvidesShlibs,
				Priority:       i,
			}
			if cand.Digest == "" {
				cand.Digest = defaultDigest(cand)
			}
			nextID++
			built.Members = append(built.Members, cand)
		}
		universe.Chains = append(universe.Chains, built)
	}

	for ci := range universe.Chains {
		for _, cand := range universe.Chains[ci].Members {
			for _, shlib := range cand.ProvidesShlibs {
				universe.Provides[shlib] = append(universe.Provides[shlib], cand)
			}
		}
	}

	install := append(append([]string{}, manifest.Requests.Install...), overrides.Install...)
	remove := append(append([]string{}, manifest.Requests.Delete...), overrides.Delete...)
	for _, spec := range install {
		if err := applyInstallRequest(&universe, spec); err != nil {
			return types.Universe{}, err
		}
	}
	for _, spec := range remove {
		applyDeleteRequest(&universe, spec)
	}
	return universe, nil
}

// validateManifest enforces the structural preconditions every later
// stage assumes.
func (b UniverseBuilder) validateManifest(ctx context.Context, manifest types.ManifestFile) error {
	if len(manifest.Candidates) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest declares no candidates")
	}
	seen := map[string]struct{}{}
	for _, chain := range manifest.Candidates {
		assert.NotEmpty(ctx, chain.UID, "candidate uid must be set")
		if len(chain.Members) == 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("chain %s has no members", chain.UID))
		}
		if _, dup := seen[chain.UID]; dup {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("chain %s declared twice", chain.UID))
		}
		seen[chain.UID] = struct{}{}
		switch chain.VersionKind {
		case "", types.VersionKindNone, types.VersionKindDeb, types.VersionKindPep440:
		default:
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("chain %s: unknown version_kind %q", chain.UID, chain.VersionKind))
		}
	}
	return nil
}

func buildConflicts(uid string, specs []types.ManifestConflictSpec) ([]types.ConflictSpec, error) {
	var out []types.ConflictSpec
	for _, spec := range specs {
		kind, ok := validConflictKinds[spec.Kind]
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("chain %s: unknown conflict kind %q", uid, spec.Kind))
		}
		out = append(out, types.ConflictSpec{UID: spec.UID, Kind: kind})
	}
	return out, nil
}

func resolveJob(fromManifest, fromOverride string) (types.JobType, error) {
	raw := strings.TrimSpace(fromOverride)
	if raw == "" {
		raw = strings.TrimSpace(fromManifest)
	}
	if raw == "" {
		return types.JobInstall, nil
	}
	job, ok := validJobs[strings.ToLower(raw)]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown job type %q", raw))
	}
	return job, nil
}

// applyInstallRequest pins the natural install target of a chain: the
// highest-versioned remote member, or the installed member when the
// chain has nothing remote (the transaction then simply keeps it). An
// explicit `uid=version` pins that exact member instead.
func applyInstallRequest(universe *types.Universe, spec string) error {
	uid, version := splitRequestSpec(spec)
	chain := findUniverseChain(universe, uid)
	if chain == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("install request %s matches no chain", uid))
	}
	if version != "" {
		for _, cand := range chain.Members {
			if cand.Version == version {
				universe.RequestAdd[cand.ID] = true
				return nil
			}
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("install request %s=%s matches no member", uid, version))
	}
	target := -1
	for _, cand := range chain.Members {
		if cand.Origin == types.OriginRemote {
			target = cand.ID
		}
	}
	if target < 0 {
		target = chain.Members[0].ID
	}
	universe.RequestAdd[target] = true
	return nil
}

// applyDeleteRequest pins the installed member for removal. A chain
// that is unknown or has nothing installed makes the request a no-op;
// deleting what is already absent is not an error.
func applyDeleteRequest(universe *types.Universe, spec string) {
	uid, version := splitRequestSpec(spec)
	chain := findUniverseChain(universe, uid)
	if chain == nil {
		log.Warn().Str("uid", uid).Msg("delete request matches no chain, nothing to do")
		return
	}
	for _, cand := range chain.Members {
		if version != "" && cand.Version != version {
			continue
		}
		if version == "" && cand.Origin != types.OriginInstalled {
			continue
		}
		universe.RequestDelete[cand.ID] = true
		return
	}
	log.Warn().Str("uid", uid).Msg("delete request matches no installed member, nothing to do")
}

func splitRequestSpec(spec string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(spec), "=", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

func findUniverseChain(universe *types.Universe, uid string) *types.Chain {
	for i := range universe.Chains {
		if universe.Chains[i].UID == uid {
			return &universe.Chains[i]
		}
	}
	return nil
}

func defaultDigest(cand types.Candidate) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", cand.UID, cand.Version, cand.Origin)))
	return hex.EncodeToString(sum[:])
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
