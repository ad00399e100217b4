package pipeline

import (
	"fmt"

	"github.com/zanicar/shadowbmp/bmp"
	"github.com/zanicar/shadowbmp/permute"
	"github.com/zanicar/shadowbmp/shadow"
	"github.com/zanicar/shadowbmp/shadowerr"
	"github.com/zanicar/shadowbmp/stego"
)

// DistributeOptions configures a single Distribute invocation, mirroring
// the distribute-side flags spec.md section 6 lists.
type DistributeOptions struct {
	SecretPath string
	CarrierDir string
	K, N       int
	Seed       uint16
	Permute    bool // default on, per spec.md section 4.2's note
}

// Distribute implements the data flow spec.md section 2 names
// "distribute": load(secret) -> truncate_grayscale -> [optional
// permute(seed)] -> form_shadows(k, n) -> for each i: load(carrier_i)
// -> hide_shadow(carrier_i, shadow_i) -> store(carrier_i').
func Distribute(store bmp.Store, source CarrierSource, opts DistributeOptions) (*Result, error) {
	secret, err := store.Load(opts.SecretPath)
	if err != nil {
		return nil, fmt.Errorf("loading secret: %w", err)
	}

	secret.TruncateGrayscale()
	logical := secret.LogicalPixels()

	if opts.Permute {
		permute.Permute(logical, opts.Seed)
	}

	// n defaults to the number of valid carriers found in the directory,
	// per spec.md section 6's CLI surface.
	n := opts.N
	carriers, err := source.Enumerate(opts.CarrierDir, opts.K, 0, n, CarrierValidator, store)
	if err != nil {
		return nil, fmt.Errorf("enumerating carriers: %w", err)
	}
	if n == 0 {
		n = len(carriers)
	}
	if len(carriers) < n {
		return nil, fmt.Errorf("%w: found %d, need %d in %s", shadowerr.ErrInsufficientCarriers, len(carriers), n, opts.CarrierDir)
	}

	shadows, err := shadow.FormShadows(logical, opts.K, n)
	if err != nil {
		return nil, fmt.Errorf("forming shadows: %w", err)
	}

	result := &Result{ShadowBytes: len(shadows[0].Pixels), SecretBytes: len(logical)}
	for i, sh := range shadows {
		path := carriers[i]
		carrier, err := store.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading carrier %s: %w", path, err)
		}
		if err := stego.Hide(carrier, sh, opts.Seed); err != nil {
			return nil, fmt.Errorf("hiding shadow %d in %s: %w", sh.Index, path, err)
		}
		if err := store.Save(path, carrier); err != nil {
			return nil, fmt.Errorf("saving carrier %s: %w", path, err)
		}
		result.FilesWritten = append(result.FilesWritten, path)
	}

	return result, nil
}
