package workload

import (
	"context"
	"hash"
	"math/rand/v2"

	"github.com/cespare/xxhash"
	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/outofforest/photon"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Result is the summary of completed workload.
type Result struct {
	Workload    string
	Seed        uint64
	Ops         uint64
	Length      uint64
	Fingerprint uint64
}

type runner func(ctx context.Context, config Config, rng *rand.Rand) (Result, error)

var runners = map[string]runner{
	Dense:    runDense,
	BST:      runBST,
	Bitset:   runBitset,
	Sequence: runSequence,
}

// Run runs configured workloads in parallel. Each workload owns its containers and random source, so results depend
// only on the configuration. Results are returned in the order of config.Workloads.
func Run(ctx context.Context, config Config) ([]Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(config.Workloads))
	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i, name := range config.Workloads {
			spawn(name, parallel.Continue, func(ctx context.Context) error {
				seed := Seed(config.Seed, name)
				log := logger.Get(ctx).With(zap.String("workload", name), zap.Uint64("seed", seed))
				log.Info("Workload started", zap.Uint64("ops", config.Ops))

				result, err := runners[name](ctx, config, rand.New(rand.NewPCG(seed, config.Seed)))
				if err != nil {
					return errors.Wrapf(err, "workload %q failed", name)
				}
				result.Workload = name
				result.Seed = seed
				result.Ops = config.Ops
				results[i] = result

				log.Info("Workload finished",
					zap.Uint64("length", result.Length),
					zap.Uint64("fingerprint", result.Fingerprint))
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Seed derives the seed of the named workload from the configured one.
func Seed(seed uint64, name string) uint64 {
	return seed ^ xxhash.Sum64([]byte(name))
}

func newFingerprint() *fingerprint {
	return &fingerprint{
		hasher: xxhash.New(),
	}
}

type fingerprint struct {
	hasher hash.Hash64
}

func (f *fingerprint) Add(v uint64) {
	_, _ = f.hasher.Write(photon.NewFromValue(&v).B)
}

func (f *fingerprint) Sum() uint64 {
	return f.hasher.Sum64()
}

func step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
