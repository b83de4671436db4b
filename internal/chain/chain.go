package chain

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is an EVM chain identifier.
type ID uint64

const (
	Ethereum ID = 1
	Goerli   ID = 5
	Optimism ID = 10
	BscChain ID = 56
	Polygon  ID = 137
	Boba     ID = 288
	Zksync   ID = 324
	Base     ID = 8453
	Arbitrum ID = 42161
	Mumbai   ID = 80001
)

var names = map[ID]string{
	Ethereum: "Ethereum",
	Goerli:   "Goerli",
	Optimism: "Optimism",
	BscChain: "BSC",
	Polygon:  "Polygon",
	Boba:     "Boba",
	Zksync:   "zkSync",
	Base:     "Base",
	Arbitrum: "Arbitrum",
	Mumbai:   "Mumbai",
}

// SupportedChains returns all chains the bridge knows about, ordered by ID
func SupportedChains() []ID {
	return []ID{
		Ethereum,
		Goerli,
		Optimism,
		BscChain,
		Polygon,
		Boba,
		Zksync,
		Base,
		Arbitrum,
		Mumbai,
	}
}

// Supported checks if the chain is in the bridge chain table
func (id ID) Supported() bool {
	_, ok := names[id]
	return ok
}

func (id ID) Name() string {
	if name, ok := names[id]; ok {
		return name
	}
	return "chain-" + strconv.FormatUint(uint64(id), 10)
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// NativeSymbol returns the gas token symbol: MATIC on Polygon networks, BNB on
// BSC, ETH elsewhere.
func (id ID) NativeSymbol() string {
	switch id {
	case Polygon, Mumbai:
		return "MATIC"
	case BscChain:
		return "BNB"
	default:
		return "ETH"
	}
}

// NativeDecimals is 18 for every supported EVM chain.
func (id ID) NativeDecimals() uint8 {
	return 18
}

// ParseID accepts a decimal chain id ("137") or a chain name ("polygon").
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("chain id cannot be empty")
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		if n == 0 {
			return 0, fmt.Errorf("invalid chain id: %s", s)
		}
		return ID(n), nil
	}
	for id, name := range names {
		if strings.EqualFold(name, s) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown chain: %s", s)
}
