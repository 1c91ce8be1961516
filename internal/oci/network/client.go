package network

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"

	"github.com/ocinet/ocinet/internal/utils"
)

// VirtualNetworkAPI is the subset of core.VirtualNetworkClient used here.
type VirtualNetworkAPI interface {
	ListVcns(ctx context.Context, request core.ListVcnsRequest) (core.ListVcnsResponse, error)
	ListSubnets(ctx context.Context, request core.ListSubnetsRequest) (core.ListSubnetsResponse, error)
	ListSecurityLists(ctx context.Context, request core.ListSecurityListsRequest) (core.ListSecurityListsResponse, error)
	ListServiceGateways(ctx context.Context, request core.ListServiceGatewaysRequest) (core.ListServiceGatewaysResponse, error)
	ListLocalPeeringGateways(ctx context.Context, request core.ListLocalPeeringGatewaysRequest) (core.ListLocalPeeringGatewaysResponse, error)
	ListDrgs(ctx context.Context, request core.ListDrgsRequest) (core.ListDrgsResponse, error)
	ListInternetGateways(ctx context.Context, request core.ListInternetGatewaysRequest) (core.ListInternetGatewaysResponse, error)
	ListNatGateways(ctx context.Context, request core.ListNatGatewaysRequest) (core.ListNatGatewaysResponse, error)
	ListRouteTables(ctx context.Context, request core.ListRouteTablesRequest) (core.ListRouteTablesResponse, error)
}

type Client struct {
	api VirtualNetworkAPI
}

func NewClient(api VirtualNetworkAPI) *Client {
	return &Client{api: api}
}

// Inventory lists every network resource kind in the compartment. The first
// failing list call aborts the whole inventory.
func (c *Client) Inventory(ctx context.Context, compartmentID string) (*Inventory, error) {
	var (
		inv Inventory
		err error
	)

	if inv.VCNs, err = c.ListVCNs(ctx, compartmentID); err != nil {
		return nil, err
	}
	if inv.Subnets, err = c.ListSubnets(ctx, compartmentID); err != nil {
		return nil, err
	}
	if inv.SecurityLists, err = c.ListSecurityLists(ctx, compartmentID); err != nil {
		return nil, err
	}
	if inv.ServiceGateways, err = c.ListServiceGateways(ctx, compartmentID); err != nil {
		return nil, err
	}
	if inv.LocalPeeringGateways, err = c.ListLocalPeeringGateways(ctx, compartmentID); err != nil {
		return nil, err
	}
	if inv.DynamicRoutingGateways, err = c.ListDRGs(ctx, compartmentID); err != nil {
		return nil, err
	}
	if inv.InternetGateways, err = c.ListInternetGateways(ctx, compartmentID); err != nil {
		return nil, err
	}
	if inv.NATGateways, err = c.ListNATGateways(ctx, compartmentID); err != nil {
		return nil, err
	}
	if inv.RouteTables, err = c.ListRouteTables(ctx, compartmentID); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *Client) ListVCNs(ctx context.Context, compartmentID string) ([]VCNInfo, error) {
	vcns := make([]VCNInfo, 0)
	var page *string

	for {
		out, err := c.api.ListVcns(ctx, core.ListVcnsRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("ListVcns: %w", err)
		}

		for _, v := range out.Items {
			vcns = append(vcns, VCNInfo{
				ID:          utils.ToString(v.Id),
				DisplayName: utils.ToString(v.DisplayName),
				CIDRBlock:   utils.ToString(v.CidrBlock),
			})
		}

		if out.OpcNextPage == nil {
			break
		}
		page = out.OpcNextPage
	}
	return vcns, nil
}

func (c *Client) ListSubnets(ctx context.Context, compartmentID string) ([]SubnetInfo, error) {
	subnets := make([]SubnetInfo, 0)
	var page *string

	for {
		out, err := c.api.ListSubnets(ctx, core.ListSubnetsRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("ListSubnets: %w", err)
		}

		for _, s := range out.Items {
			subnets = append(subnets, SubnetInfo{
				ID:            utils.ToString(s.Id),
				DisplayName:   utils.ToString(s.DisplayName),
				CIDRBlock:     utils.ToString(s.CidrBlock),
				VCNID:         utils.ToString(s.VcnId),
				RouteTableID:  utils.ToString(s.RouteTableId),
				DHCPOptionsID: utils.ToString(s.DhcpOptionsId),
			})
		}

		if out.OpcNextPage == nil {
			break
		}
		page = out.OpcNextPage
	}
	return subnets, nil
}

func (c *Client) ListSecurityLists(ctx context.Context, compartmentID string) ([]SecurityListInfo, error) {
	lists := make([]SecurityListInfo, 0)
	var page *string

	for {
		out, err := c.api.ListSecurityLists(ctx, core.ListSecurityListsRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("ListSecurityLists: %w", err)
		}

		for _, sl := range out.Items {
			lists = append(lists, SecurityListInfo{
				ID:          utils.ToString(sl.Id),
				DisplayName: utils.ToString(sl.DisplayName),
				VCNID:       utils.ToString(sl.VcnId),
			})
		}

		if out.OpcNextPage == nil {
			break
		}
		page = out.OpcNextPage
	}
	return lists, nil
}

func (c *Client) ListServiceGateways(ctx context.Context, compartmentID string) ([]ServiceGatewayInfo, error) {
	gws := make([]ServiceGatewayInfo, 0)
	var page *string

	for {
		out, err := c.api.ListServiceGateways(ctx, core.ListServiceGatewaysRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("ListServiceGateways: %w", err)
		}

		for _, sg := range out.Items {
			services := make([]ServiceInfo, 0, len(sg.Services))
			for _, s := range sg.Services {
				services = append(services, ServiceInfo{
					ServiceID:   utils.ToString(s.ServiceId),
					ServiceName: utils.ToString(s.ServiceName),
				})
			}
			gws = append(gws, ServiceGatewayInfo{
				ID:          utils.ToString(sg.Id),
				DisplayName: utils.ToString(sg.DisplayName),
				VCNID:       utils.ToString(sg.VcnId),
				Services:    services,
			})
		}

		if out.OpcNextPage == nil {
			break
		}
		page = out.OpcNextPage
	}
	return gws, nil
}

func (c *Client) ListLocalPeeringGateways(ctx context.Context, compartmentID string) ([]LocalPeeringGatewayInfo, error) {
	lpgs := make([]LocalPeeringGatewayInfo, 0)
	var page *string

	for {
		out, err := c.api.ListLocalPeeringGateways(ctx, core.ListLocalPeeringGatewaysRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("ListLocalPeeringGateways: %w", err)
		}

		for _, lpg := range out.Items {
			lpgs = append(lpgs, LocalPeeringGatewayInfo{
				ID:            utils.ToString(lpg.Id),
				DisplayName:   utils.ToString(lpg.DisplayName),
				VCNID:         utils.ToString(lpg.VcnId),
				PeeringStatus: string(lpg.PeeringStatus),
			})
		}

		if out.OpcNextPage == nil {
			break
		}
		page = out.OpcNextPage
	}
	return lpgs, nil
}

func (c *Client) ListDRGs(ctx context.Context, compartmentID string) ([]DRGInfo, error) {
	drgs := make([]DRGInfo, 0)
	var page *string

	for {
		out, err := c.api.ListDrgs(ctx, core.ListDrgsRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("ListDrgs: %w", err)
		}

		for _, drg := range out.Items {
			drgs = append(drgs, DRGInfo{
				ID:          utils.ToString(drg.Id),
				DisplayName: utils.ToString(drg.DisplayName),
			})
		}

		if out.OpcNextPage == nil {
			break
		}
		page = out.OpcNextPage
	}
	return drgs, nil
}

func (c *Client) ListInternetGateways(ctx context.Context, compartmentID string) ([]InternetGatewayInfo, error) {
	igws := make([]InternetGatewayInfo, 0)
	var page *string

	for {
		out, err := c.api.ListInternetGateways(ctx, core.ListInternetGatewaysRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("ListInternetGateways: %w", err)
		}

		for _, igw := range out.Items {
			igws = append(igws, InternetGatewayInfo{
				ID:          utils.ToString(igw.Id),
				DisplayName: utils.ToString(igw.DisplayName),
				VCNID:       utils.ToString(igw.VcnId),
				IsEnabled:   utils.ToBool(igw.IsEnabled),
			})
		}

		if out.OpcNextPage == nil {
			break
		}
		page = out.OpcNextPage
	}
	return igws, nil
}

func (c *Client) ListNATGateways(ctx context.Context, compartmentID string) ([]NATGatewayInfo, error) {
	nats := make([]NATGatewayInfo, 0)
	var page *string

	for {
		out, err := c.api.ListNatGateways(ctx, core.ListNatGatewaysRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("ListNatGateways: %w", err)
		}

		for _, n := range out.Items {
			nats = append(nats, NATGatewayInfo{
				ID:          utils.ToString(n.Id),
				DisplayName: utils.ToString(n.DisplayName),
				VCNID:       utils.ToString(n.VcnId),
				NATIP:       utils.ToString(n.NatIp),
			})
		}

		if out.OpcNextPage == nil {
			break
		}
		page = out.OpcNextPage
	}
	return nats, nil
}

func (c *Client) ListRouteTables(ctx context.Context, compartmentID string) ([]RouteTableInfo, error) {
	rts := make([]RouteTableInfo, 0)
	var page *string

	for {
		out, err := c.api.ListRouteTables(ctx, core.ListRouteTablesRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("ListRouteTables: %w", err)
		}

		for _, rt := range out.Items {
			rules := make([]RouteRuleInfo, 0, len(rt.RouteRules))
			for _, rr := range rt.RouteRules {
				rules = append(rules, RouteRuleInfo{
					NetworkEntityID: utils.ToString(rr.NetworkEntityId),
					Destination:     utils.ToString(rr.Destination),
					DestinationType: string(rr.DestinationType),
				})
			}
			rts = append(rts, RouteTableInfo{
				ID:          utils.ToString(rt.Id),
				DisplayName: utils.ToString(rt.DisplayName),
				VCNID:       utils.ToString(rt.VcnId),
				RouteRules:  rules,
			})
		}

		if out.OpcNextPage == nil {
			break
		}
		page = out.OpcNextPage
	}
	return rts, nil
}
