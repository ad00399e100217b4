package pipeline

import (
	"fmt"

	"github.com/zanicar/shadowbmp/bmp"
	"github.com/zanicar/shadowbmp/permute"
	"github.com/zanicar/shadowbmp/shadow"
	"github.com/zanicar/shadowbmp/shadowerr"
	"github.com/zanicar/shadowbmp/stego"
)

// RecoverOptions configures a single Recover invocation, mirroring the
// recover-side flags spec.md section 6 lists. Width and Height are the
// secret's dimensions, required because the shadow's own dimensions
// must be reconstructed from them (spec.md section 9's correction of
// the original retrieveshadow defect).
type RecoverOptions struct {
	ShadowDir  string
	SecretPath string
	K          int
	Width      int
	Height     int
	Permute    bool
}

// Recover implements the data flow spec.md section 2 names "recover":
// for i in 1..k: load(carrier_i') -> retrieve_shadow(carrier_i', w, h,
// k) -> gather -> reveal_secret(shadows, k) -> [optional
// unpermute(seed)] -> store(secret').
func Recover(store bmp.Store, source CarrierSource, opts RecoverOptions) (*Result, error) {
	secretSize := opts.Width * opts.Height

	shadowFiles, err := source.Enumerate(opts.ShadowDir, opts.K, secretSize, opts.K, ShadowValidator, store)
	if err != nil {
		return nil, fmt.Errorf("enumerating shadows: %w", err)
	}
	if len(shadowFiles) < opts.K {
		return nil, fmt.Errorf("%w: found %d, need %d in %s", shadowerr.ErrInsufficientShadows, len(shadowFiles), opts.K, opts.ShadowDir)
	}

	shadows := make([]shadow.Shadow, 0, opts.K)
	var seed uint16
	for _, path := range shadowFiles {
		carrier, err := store.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading shadow carrier %s: %w", path, err)
		}
		sh, embeddedSeed, err := stego.Retrieve(carrier, opts.Width, opts.Height, opts.K)
		if err != nil {
			return nil, fmt.Errorf("retrieving shadow from %s: %w", path, err)
		}
		shadows = append(shadows, sh)
		seed = embeddedSeed
	}

	secretPixels, err := shadow.RevealSecret(shadows, opts.K)
	if err != nil {
		return nil, fmt.Errorf("revealing secret: %w", err)
	}

	if opts.Permute {
		permute.Unpermute(secretPixels, seed)
	}

	secret := bmp.New(opts.Width, opts.Height)
	if err := secret.SetLogicalPixels(secretPixels); err != nil {
		return nil, fmt.Errorf("assembling recovered secret: %w", err)
	}

	if err := store.Save(opts.SecretPath, secret); err != nil {
		return nil, fmt.Errorf("saving recovered secret %s: %w", opts.SecretPath, err)
	}

	return &Result{
		FilesWritten: []string{opts.SecretPath},
		ShadowBytes:  len(shadows[0].Pixels),
		SecretBytes:  len(secretPixels),
	}, nil
}
