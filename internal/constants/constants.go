package constants

import "time"

// Inventory server defaults.
const (
	DefaultServerHost     = "127.0.0.1"
	DefaultServerPort     = 8000
	DefaultProfile        = "DEFAULT"
	DefaultOCIConfigPath  = "~/.oci/config"
	DefaultRequestTimeout = 60 * time.Second
	ShutdownTimeout       = 30 * time.Second
)

// Query agent defaults.
const (
	DefaultServerURL   = "http://localhost:8000"
	DefaultModel       = "gpt-3.5-turbo"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultLLMTimeout  = 60 * time.Second

	MaxTokens   = 400
	Temperature = 0.2

	SystemPrompt = "You are an expert on Oracle Cloud Infrastructure network configuration."
)

// CompartmentEnvVar names the variable that scopes /network/config.
const CompartmentEnvVar = "OCI_COMPARTMENT_OCID"
