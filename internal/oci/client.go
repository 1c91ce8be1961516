package oci

import (
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/core"
	identitysdk "github.com/oracle/oci-go-sdk/v65/identity"

	ociidentity "github.com/ocinet/ocinet/internal/oci/identity"
	ocinetwork "github.com/ocinet/ocinet/internal/oci/network"
)

type ServiceClient struct {
	Network  *ocinetwork.Client
	Identity *ociidentity.Client
}

func NewServiceClient(configPath, profile string) (*ServiceClient, error) {
	provider, err := LoadConfig(configPath, profile)
	if err != nil {
		return nil, err
	}

	tenancyID, err := TenancyID(provider)
	if err != nil {
		return nil, err
	}

	vcnClient, err := core.NewVirtualNetworkClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("creating virtual network client: %w", err)
	}
	identityClient, err := identitysdk.NewIdentityClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("creating identity client: %w", err)
	}

	return &ServiceClient{
		Network:  ocinetwork.NewClient(vcnClient),
		Identity: ociidentity.NewClient(identityClient, tenancyID),
	}, nil
}
