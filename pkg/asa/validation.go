package asa

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/types"
)

// ValidateTokenConfig reports every problem with config in one ConfigurationError.
func ValidateTokenConfig(config TokenConfig) error {
	problems := make([]string, 0)

	name := strings.TrimSpace(config.Name)
	switch {
	case name == "":
		problems = append(problems, "name is required")
	case len(config.Name) > MaxAssetNameLength:
		problems = append(problems, fmt.Sprintf("name must be <= %d bytes", MaxAssetNameLength))
	}

	unitName := strings.TrimSpace(config.UnitName)
	switch {
	case unitName == "":
		problems = append(problems, "unit name is required")
	case len(config.UnitName) > MaxUnitNameLength:
		problems = append(problems, fmt.Sprintf("unit name must be <= %d bytes", MaxUnitNameLength))
	}

	if config.TotalSupply == 0 {
		problems = append(problems, "total supply must be positive")
	}
	if config.Decimals > MaxDecimals {
		problems = append(problems, fmt.Sprintf("decimals must be between 0 and %d", MaxDecimals))
	}
	if len(config.URL) > MaxURLLength {
		problems = append(problems, fmt.Sprintf("url must be <= %d bytes", MaxURLLength))
	}
	if _, err := DecodeMetadataHash(config.MetadataHash); err != nil {
		problems = append(problems, err.Error())
	}

	roles := []struct {
		field string
		value string
	}{
		{"manager", config.Manager},
		{"reserve", config.Reserve},
		{"freeze", config.Freeze},
		{"clawback", config.Clawback},
	}
	for _, role := range roles {
		if role.value == "" {
			continue
		}
		if err := ValidateAddress(role.value); err != nil {
			problems = append(problems, fmt.Sprintf("invalid %s address: %s", role.field, role.value))
		}
	}

	if len(problems) > 0 {
		return NewConfigurationError(problems)
	}
	return nil
}

// ValidateAddress checks an Algorand address, including its checksum.
func ValidateAddress(address string) error {
	if _, err := types.DecodeAddress(address); err != nil {
		return fmt.Errorf("invalid address %q: %w", address, err)
	}
	return nil
}

// DecodeMetadataHash decodes a standard base64 metadata hash. An empty input
// yields nil.
func DecodeMetadataHash(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("metadata hash is not valid base64")
	}
	if len(decoded) != MetadataHashLength {
		return nil, fmt.Errorf("metadata hash must decode to %d bytes, got %d", MetadataHashLength, len(decoded))
	}
	return decoded, nil
}
