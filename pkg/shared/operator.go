package shared

import (
	"bufio"
	"crypto/ed25519"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

type OperatorConfig struct {
	Network        string
	CreatorAddress string
	Mnemonic       string
	AlgodAddress   string
	AlgodToken     string
}

var dotenvLoadOnce sync.Once

// OperatorConfigFromEnv loads the issuing account and algod endpoint from the
// environment. The creator address may be omitted when a mnemonic is present.
func OperatorConfigFromEnv() (OperatorConfig, error) {
	loadDotEnvIfPresent()

	network, err := NormalizeNetwork(firstNonEmptyEnv("ALGORAND_NETWORK", "NETWORK"))
	if err != nil {
		return OperatorConfig{}, err
	}

	config := OperatorConfig{
		Network:        network,
		CreatorAddress: firstNonEmptyEnv("ALGORAND_CREATOR_ADDRESS", "CREATOR_ADDRESS"),
		Mnemonic:       firstNonEmptyEnv("ALGORAND_MNEMONIC", "MNEMONIC"),
		AlgodAddress:   firstNonEmptyEnv("ALGOD_ADDRESS", "ALGOD_SERVER"),
		AlgodToken:     firstNonEmptyEnv("ALGOD_TOKEN"),
	}

	if prefix := scopedEnvPrefix(network); prefix != "" {
		if scoped := firstNonEmptyEnv(prefix+"ALGORAND_CREATOR_ADDRESS", prefix+"CREATOR_ADDRESS"); scoped != "" {
			config.CreatorAddress = scoped
		}
		if scoped := firstNonEmptyEnv(prefix+"ALGORAND_MNEMONIC", prefix+"MNEMONIC"); scoped != "" {
			config.Mnemonic = scoped
		}
		if scoped := firstNonEmptyEnv(prefix + "ALGOD_ADDRESS"); scoped != "" {
			config.AlgodAddress = scoped
		}
		if scoped := firstNonEmptyEnv(prefix + "ALGOD_TOKEN"); scoped != "" {
			config.AlgodToken = scoped
		}
	}

	if config.Mnemonic != "" {
		_, derived, parseErr := ParseMnemonic(config.Mnemonic)
		if parseErr != nil {
			return OperatorConfig{}, parseErr
		}
		if config.CreatorAddress == "" {
			config.CreatorAddress = derived.String()
		} else if config.CreatorAddress != derived.String() {
			return OperatorConfig{}, fmt.Errorf(
				"ALGORAND_CREATOR_ADDRESS %s does not match mnemonic account %s",
				config.CreatorAddress,
				derived.String(),
			)
		}
	}

	if config.CreatorAddress == "" {
		return OperatorConfig{}, fmt.Errorf("ALGORAND_CREATOR_ADDRESS or ALGORAND_MNEMONIC is required")
	}
	if _, err := types.DecodeAddress(config.CreatorAddress); err != nil {
		return OperatorConfig{}, fmt.Errorf("invalid creator address %q: %w", config.CreatorAddress, err)
	}

	return config, nil
}

func scopedEnvPrefix(network string) string {
	switch network {
	case NetworkMainnet:
		return "MAINNET_"
	case NetworkTestnet:
		return "TESTNET_"
	default:
		return ""
	}
}

// ParseMnemonic recovers the ed25519 key and address of a 25-word account mnemonic.
func ParseMnemonic(raw string) (ed25519.PrivateKey, types.Address, error) {
	phrase := strings.Join(strings.Fields(raw), " ")
	if phrase == "" {
		return nil, types.Address{}, fmt.Errorf("mnemonic cannot be empty")
	}

	privateKey, err := mnemonic.ToPrivateKey(phrase)
	if err != nil {
		return nil, types.Address{}, fmt.Errorf("failed to parse mnemonic: %w", err)
	}

	account, err := crypto.AccountFromPrivateKey(privateKey)
	if err != nil {
		return nil, types.Address{}, fmt.Errorf("failed to derive account from mnemonic: %w", err)
	}

	return privateKey, account.Address, nil
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		startPaths := make([]string, 0, 2)
		if cwd, err := os.Getwd(); err == nil {
			startPaths = append(startPaths, cwd)
		}
		if _, currentFile, _, ok := runtime.Caller(0); ok {
			startPaths = append(startPaths, filepath.Dir(currentFile))
		}

		if candidate, found := findDotEnv(startPaths); found {
			loadDotEnvFile(candidate)
		}
	})
}

// findDotEnv walks each start path up to the filesystem root and returns the
// first .env it sees.
func findDotEnv(startPaths []string) (string, bool) {
	seen := make(map[string]struct{})
	for _, start := range startPaths {
		for current := start; ; current = filepath.Dir(current) {
			candidate := filepath.Join(current, ".env")
			if _, visited := seen[candidate]; !visited {
				seen[candidate] = struct{}{}
				if _, statErr := os.Stat(candidate); statErr == nil {
					return candidate, true
				}
			}
			if filepath.Dir(current) == current {
				break
			}
		}
	}
	return "", false
}

func loadDotEnvFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	loadedAny := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseDotEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}
		if setErr := os.Setenv(key, value); setErr == nil {
			loadedAny = true
		}
	}

	return loadedAny
}

func parseDotEnvLine(raw string) (string, string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if !isValidEnvKey(key) {
		return "", "", false
	}

	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}

func isValidEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for index, character := range key {
		if (character >= 'A' && character <= 'Z') ||
			(character >= 'a' && character <= 'z') ||
			(index > 0 && character >= '0' && character <= '9') ||
			character == '_' {
			continue
		}
		return false
	}
	return true
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}
