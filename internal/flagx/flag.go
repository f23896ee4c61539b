// Package flagx has helpers for the layered config loaders: picking a subset
// of os.Args for a private FlagSet, and flag.Value types for the few config
// fields that are not plain strings or ints.
package flagx

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FilterArgs returns only the allowed flags (and their values) from args.
//
// Both "-c conf.json" and "-c=conf.json" forms are recognized. A following
// token that starts with '-' is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// JsonConfigFlags returns the config file path given with -c or -config,
// or "" when neither is present.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}

// HexBytes is a flag.Value for fixed-size secrets given in hex.
// Size 0 accepts any length.
type HexBytes struct {
	Target *[]byte
	Size   int
}

func (h HexBytes) String() string {
	if h.Target == nil || len(*h.Target) == 0 {
		return ""
	}
	// never echo secrets back in usage output
	return "<set>"
}

func (h HexBytes) Set(s string) error {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not hex: %w", err)
	}
	if h.Size > 0 && len(b) != h.Size {
		return fmt.Errorf("want %d bytes, got %d", h.Size, len(b))
	}
	*h.Target = b
	return nil
}

// IntList is a flag.Value for comma-separated integers, e.g. "1,2".
type IntList struct {
	Target *[]int
}

func (l IntList) String() string {
	if l.Target == nil {
		return ""
	}
	parts := make([]string, len(*l.Target))
	for i, v := range *l.Target {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l IntList) Set(s string) error {
	var out []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("bad list item %q: %w", p, err)
		}
		out = append(out, v)
	}
	*l.Target = out
	return nil
}
