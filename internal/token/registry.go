package token

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	ecommon "github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/vultisig/bridge-rewards/internal/chain"
)

var ErrNotFound = errors.New("token not found")

// Info describes a token on one chain. Native tokens have no contract address.
type Info struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Address  string `json:"address,omitempty" yaml:"address"`
	Decimals uint8  `json:"decimals" yaml:"decimals"`
	IsNative bool   `json:"isNative" yaml:"native"`
}

type key struct {
	chain  chain.ID
	symbol string
}

// Registry is the (chain, symbol) -> Info lookup the query service consults
// to tell native assets from ERC-20 contracts.
type Registry struct {
	mu     sync.RWMutex
	tokens map[key]Info
}

func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[key]Info),
	}
}

// NewDefaultRegistry returns a registry seeded with DefaultTokens.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for id, infos := range DefaultTokens() {
		for _, info := range infos {
			// defaults are static and valid
			_ = r.Add(id, info)
		}
	}
	return r
}

func (r *Registry) Add(id chain.ID, info Info) error {
	if err := validate(info); err != nil {
		return fmt.Errorf("invalid token %s on chain %s: %w", info.Symbol, id, err)
	}
	if !info.IsNative {
		info.Address = ecommon.HexToAddress(info.Address).Hex()
	} else {
		info.Address = ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[key{chain: id, symbol: strings.ToUpper(info.Symbol)}] = info
	return nil
}

// TokenInfoBySymbol resolves a token by chain and case-insensitive symbol.
func (r *Registry) TokenInfoBySymbol(id chain.ID, symbol string) (Info, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.tokens[key{chain: id, symbol: strings.ToUpper(strings.TrimSpace(symbol))}]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s on chain %s", ErrNotFound, symbol, id)
	}
	return info, nil
}

// Tokens returns every token configured for the chain ordered by symbol.
func (r *Registry) Tokens(id chain.ID) []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []Info
	for k, info := range r.tokens {
		if k.chain == id {
			res = append(res, info)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Symbol < res[j].Symbol
	})
	return res
}

type fileChain struct {
	ChainID uint64 `yaml:"chainId"`
	Tokens  []Info `yaml:"tokens"`
}

type file struct {
	Chains []fileChain `yaml:"chains"`
}

// LoadFile merges a YAML token list into the registry. Entries override any
// existing token with the same chain and symbol.
//
//	chains:
//	  - chainId: 1
//	    tokens:
//	      - symbol: USDC
//	        address: "0xa0b8..."
//	        decimals: 6
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read token file: %w", err)
	}
	return r.Load(data)
}

func (r *Registry) Load(data []byte) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse token file: %w", err)
	}

	for _, c := range f.Chains {
		if c.ChainID == 0 {
			return fmt.Errorf("token file: chainId is required")
		}
		for _, info := range c.Tokens {
			if err := r.Add(chain.ID(c.ChainID), info); err != nil {
				return err
			}
		}
	}
	return nil
}

func validate(info Info) error {
	if strings.TrimSpace(info.Symbol) == "" {
		return fmt.Errorf("symbol cannot be empty")
	}
	if info.IsNative {
		return nil
	}
	if !ecommon.IsHexAddress(info.Address) {
		return fmt.Errorf("bad contract address %q", info.Address)
	}
	if ecommon.HexToAddress(info.Address) == (ecommon.Address{}) {
		return fmt.Errorf("contract address cannot be zero")
	}
	return nil
}
