package workload

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/dats/types"
)

// Names of available workloads.
const (
	Dense    = "dense"
	BST      = "bst"
	Bitset   = "bitset"
	Sequence = "sequence"
)

// Names lists all the available workloads.
var Names = []string{Dense, BST, Bitset, Sequence}

// Config stores workload configuration.
type Config struct {
	// Seed initializes random sources of workloads.
	Seed uint64 `toml:"seed"`

	// Ops is the number of operations executed by each workload.
	Ops uint64 `toml:"ops"`

	// MaxIndex is the exclusive upper bound of dense array indices.
	MaxIndex uint64 `toml:"max_index"`

	// MaxKey is the exclusive upper bound of keys stored in the tree.
	MaxKey uint64 `toml:"max_key"`

	// BitsetSize is the number of bits in the bitset.
	BitsetSize uint64 `toml:"bitset_size"`

	// Workloads lists workloads to run.
	Workloads []string `toml:"workloads"`
}

// DefaultConfig returns default configuration running all the workloads.
func DefaultConfig() Config {
	return Config{
		Seed:       1,
		Ops:        10000,
		MaxIndex:   512,
		MaxKey:     1024,
		BitsetSize: 100,
		Workloads:  append([]string{}, Names...),
	}
}

// LoadConfig loads configuration from TOML file. Fields missing in the file keep the default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config file %q failed", path)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config file %q failed", path)
	}
	return config, nil
}

// Marshal returns configuration in TOML format.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// Validate checks if configuration is usable.
func (c Config) Validate() error {
	switch {
	case c.Ops == 0:
		return errors.Wrap(types.ErrInvalidArgument, "ops must be greater than 0")
	case c.MaxIndex == 0:
		return errors.Wrap(types.ErrInvalidArgument, "max index must be greater than 0")
	case c.MaxKey == 0:
		return errors.Wrap(types.ErrInvalidArgument, "max key must be greater than 0")
	case c.BitsetSize == 0:
		return errors.Wrap(types.ErrInvalidArgument, "bitset size must be greater than 0")
	case len(c.Workloads) == 0:
		return errors.Wrap(types.ErrInvalidArgument, "no workloads configured")
	case len(lo.Uniq(c.Workloads)) != len(c.Workloads):
		return errors.Wrapf(types.ErrInvalidArgument, "workloads are duplicated: %v", lo.FindDuplicates(c.Workloads))
	}

	for _, name := range c.Workloads {
		if !lo.Contains(Names, name) {
			return errors.Wrapf(types.ErrInvalidArgument, "unknown workload %q", name)
		}
	}
	return nil
}
