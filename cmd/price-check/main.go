// cmd/price-check/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"mcp-coingecko/pkg/coingecko"
)

func main() {
	var token, base string
	var timeout time.Duration
	flag.StringVar(&token, "token", "bitcoin", "CoinGecko token id")
	flag.StringVar(&base, "base", "", "API base override (default: COINGECKO_API_BASE or the public API)")
	flag.DurationVar(&timeout, "timeout", 15*time.Second, "lookup timeout")
	flag.Parse()

	c := coingecko.NewFromEnv()
	if base != "" {
		c = coingecko.New(base, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	price, err := c.SimplePrice(ctx, token)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERR:", err)
		os.Exit(1)
	}
	fmt.Printf("%s: $%s USD\n", token, strconv.FormatFloat(price, 'f', -1, 64))
}
