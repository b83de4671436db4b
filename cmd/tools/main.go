package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/vultisig/bridge-rewards/internal/util"
)

var (
	host       = flag.String("host", util.IfEmptyElse(os.Getenv("BRIDGE_API"), "http://localhost:8080"), "bridge api host")
	flatPreset = flag.String("preset", "", "preset to execute")
	account    = flag.String("account", "0xcB9B049B9c937acFDB87EeCfAa9e7f2c51E754f5", "account to query")
	block      = flag.String("block", "latest", "block tag")
)

var presets = map[string]func(context.Context) error{
	"balanceEth":   balanceEth,
	"balanceUsdc":  balanceUsdc,
	"allowanceEth": allowanceEth,
	"portfolioEth": portfolioEth,
	"removeAmount": removeAmount,
}

func main() {
	flag.Parse()

	preset, ok := presets[*flatPreset]
	if !ok {
		names := make([]string, 0, len(presets))
		for name := range presets {
			names = append(names, name)
		}
		sort.Strings(names)
		panic("preset is required, one of: " + strings.Join(names, ", "))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := preset(ctx)
	if err != nil {
		panic(err)
	}
}

func call(ctx context.Context, path string, query url.Values) (map[string]any, error) {
	u := *host + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make http call: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	r := make(map[string]any)
	err = json.Unmarshal(body, &r)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", res.StatusCode, util.GetStr(r, "message"))
	}
	return r, nil
}

func balanceEth(ctx context.Context) error {
	r, err := call(ctx, "/chains/1/balances/"+*account, url.Values{"block": {*block}})
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}
	fmt.Printf("ETH balance at %s: %s wei\n", util.GetStr(r, "block"), util.GetStr(r, "amount"))
	return nil
}

func balanceUsdc(ctx context.Context) error {
	r, err := call(ctx, "/chains/1/balances/"+*account, url.Values{
		"token": {"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"},
		"block": {*block},
	})
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}
	fmt.Printf("USDC balance at %s: %s\n", util.GetStr(r, "block"), util.GetStr(r, "amount"))
	return nil
}

func allowanceEth(ctx context.Context) error {
	r, err := call(ctx, "/chains/1/allowances", url.Values{
		"owner":   {*account},
		"spender": {"0x3fC91A3afd70395Cd496C647d5a6CC9D4B2b7FAD"},
		"symbol":  {"USDC"},
		"block":   {*block},
	})
	if err != nil {
		return fmt.Errorf("failed to get allowance: %w", err)
	}
	fmt.Printf("USDC allowance: %s\n", util.GetStr(r, "amount"))
	return nil
}

func portfolioEth(ctx context.Context) error {
	r, err := call(ctx, "/chains/1/portfolio/"+*account, url.Values{"block": {*block}})
	if err != nil {
		return fmt.Errorf("failed to get portfolio: %w", err)
	}
	holdings, _ := r["holdings"].([]any)
	for _, h := range holdings {
		row, _ := h.(map[string]any)
		fmt.Printf("%-8s %s\n", util.GetStr(row, "symbol"), util.GetStr(row, "formatted"))
	}
	return nil
}

func removeAmount(ctx context.Context) error {
	r, err := call(ctx, "/remove-amount", url.Values{
		"percent":  {"12.5"},
		"position": {"1000000000"},
		"chainId":  {"1"},
		"token":    {"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"},
	})
	if err != nil {
		return fmt.Errorf("failed to calculate remove amount: %w", err)
	}
	fmt.Printf("remove %s USDC\n", util.GetStr(r, "amount"))
	return nil
}
