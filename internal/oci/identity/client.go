package identity

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	ociidentity "github.com/oracle/oci-go-sdk/v65/identity"

	"github.com/ocinet/ocinet/internal/utils"
)

type IdentityAPI interface {
	ListCompartments(ctx context.Context, request ociidentity.ListCompartmentsRequest) (ociidentity.ListCompartmentsResponse, error)
}

type Client struct {
	api       IdentityAPI
	tenancyID string
}

// NewClient returns a client rooted at the given tenancy.
func NewClient(api IdentityAPI, tenancyID string) *Client {
	return &Client{api: api, tenancyID: tenancyID}
}

// ListCompartments walks the whole compartment tree under the tenancy,
// keeping only compartments the caller can access.
func (c *Client) ListCompartments(ctx context.Context) ([]CompartmentInfo, error) {
	compartments := make([]CompartmentInfo, 0)
	var page *string

	for {
		out, err := c.api.ListCompartments(ctx, ociidentity.ListCompartmentsRequest{
			CompartmentId:          common.String(c.tenancyID),
			CompartmentIdInSubtree: common.Bool(true),
			AccessLevel:            ociidentity.ListCompartmentsAccessLevelAccessible,
			Page:                   page,
		})
		if err != nil {
			return nil, fmt.Errorf("ListCompartments: %w", err)
		}

		for _, cmp := range out.Items {
			compartments = append(compartments, CompartmentInfo{
				ID:             utils.ToString(cmp.Id),
				Name:           utils.ToString(cmp.Name),
				Description:    utils.ToString(cmp.Description),
				LifecycleState: string(cmp.LifecycleState),
			})
		}

		if out.OpcNextPage == nil {
			break
		}
		page = out.OpcNextPage
	}
	return compartments, nil
}
