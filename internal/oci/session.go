package oci

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oracle/oci-go-sdk/v65/common"
)

// LoadConfig builds a configuration provider from an OCI config file profile.
// A leading "~" in path is expanded to the user's home directory.
func LoadConfig(path, profile string) (common.ConfigurationProvider, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	provider, err := common.ConfigurationProviderFromFileWithProfile(expanded, profile, "")
	if err != nil {
		return nil, fmt.Errorf("loading OCI config %s [%s]: %w", expanded, profile, err)
	}
	if ok, err := common.IsConfigurationProviderValid(provider); !ok {
		return nil, fmt.Errorf("invalid OCI config %s [%s]: %w", expanded, profile, err)
	}
	return provider, nil
}

// TenancyID returns the tenancy OCID of the configured profile.
func TenancyID(provider common.ConfigurationProvider) (string, error) {
	id, err := provider.TenancyOCID()
	if err != nil {
		return "", fmt.Errorf("reading tenancy OCID: %w", err)
	}
	return id, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
