package instrument

import (
	"os"
	"sort"
	"sync"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/rxtech-lab/argo-sizing/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Registry supplies instrument trading constraints by symbol.
type Registry interface {
	Register(instrument types.Instrument) error
	Get(symbol string) optional.Option[types.Instrument]
	List() []string
}

// RegistryV1 keeps instruments in memory.
type RegistryV1 struct {
	instruments map[string]types.Instrument
	mu          sync.RWMutex
}

// registryFile is the on-disk layout of an instrument file.
type registryFile struct {
	Instruments []types.Instrument `yaml:"instruments"`
}

func NewRegistry() *RegistryV1 {
	return &RegistryV1{
		instruments: make(map[string]types.Instrument),
		mu:          sync.RWMutex{},
	}
}

// LoadRegistry reads instruments from a YAML file.
func LoadRegistry(path string) (*RegistryV1, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeConfigReadFailed, err, "failed to read instrument file %s", path)
	}

	return ParseRegistry(content)
}

// ParseRegistry builds a registry from YAML content. A missing contract
// multiplier defaults to 1 and a missing max trade quantity to the lot size.
func ParseRegistry(content []byte) (*RegistryV1, error) {
	var file registryFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigParseFailed, "failed to parse instrument file", err)
	}

	registry := NewRegistry()

	for _, inst := range file.Instruments {
		if inst.ContractMultiplier == 0 {
			inst.ContractMultiplier = 1
		}

		if inst.MaxTradeQuantity == 0 {
			inst.MaxTradeQuantity = inst.MinTradeQuantity
		}

		if err := registry.Register(inst); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// Register adds an instrument. Invalid or duplicate instruments are rejected.
func (r *RegistryV1) Register(instrument types.Instrument) error {
	if err := instrument.Validate(); err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidInstrument, err, "invalid instrument %q", instrument.Symbol)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.instruments[instrument.Symbol]; exists {
		return errors.Newf(errors.ErrCodeInstrumentAlreadyExists, "instrument %s already registered", instrument.Symbol)
	}

	r.instruments[instrument.Symbol] = instrument

	return nil
}

// Get returns the instrument for symbol, or None.
func (r *RegistryV1) Get(symbol string) optional.Option[types.Instrument] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instrument, exists := r.instruments[symbol]
	if !exists {
		return optional.None[types.Instrument]()
	}

	return optional.Some(instrument)
}

// List returns the registered symbols in sorted order.
func (r *RegistryV1) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	symbols := make([]string, 0, len(r.instruments))
	for symbol := range r.instruments {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	return symbols
}
