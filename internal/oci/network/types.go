package network

// Inventory is the aggregate network view of one compartment. Field order
// fixes the key order of the /network/config response.
type Inventory struct {
	VCNs                   []VCNInfo                 `json:"vcns"`
	Subnets                []SubnetInfo              `json:"subnets"`
	SecurityLists          []SecurityListInfo        `json:"security_lists"`
	InternetGateways       []InternetGatewayInfo     `json:"internet_gateways"`
	NATGateways            []NATGatewayInfo          `json:"nat_gateways"`
	RouteTables            []RouteTableInfo          `json:"route_tables"`
	ServiceGateways        []ServiceGatewayInfo      `json:"service_gateways"`
	LocalPeeringGateways   []LocalPeeringGatewayInfo `json:"local_peering_gateways"`
	DynamicRoutingGateways []DRGInfo                 `json:"dynamic_routing_gateways"`
}

type VCNInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	CIDRBlock   string `json:"cidr_block"`
}

type SubnetInfo struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	CIDRBlock     string `json:"cidr_block"`
	VCNID         string `json:"vcn_id"`
	RouteTableID  string `json:"route_table_id"`
	DHCPOptionsID string `json:"dhcp_options_id"`
}

type SecurityListInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	VCNID       string `json:"vcn_id"`
}

type InternetGatewayInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	VCNID       string `json:"vcn_id"`
	IsEnabled   bool   `json:"is_enabled"`
}

type NATGatewayInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	VCNID       string `json:"vcn_id"`
	NATIP       string `json:"nat_ip"`
}

type RouteTableInfo struct {
	ID          string          `json:"id"`
	DisplayName string          `json:"display_name"`
	VCNID       string          `json:"vcn_id"`
	RouteRules  []RouteRuleInfo `json:"route_rules"`
}

// RouteRuleInfo maps a destination to the network entity traffic is sent to.
type RouteRuleInfo struct {
	NetworkEntityID string `json:"network_entity_id"`
	Destination     string `json:"destination"`
	DestinationType string `json:"destination_type"`
}

type ServiceGatewayInfo struct {
	ID          string        `json:"id"`
	DisplayName string        `json:"display_name"`
	VCNID       string        `json:"vcn_id"`
	Services    []ServiceInfo `json:"services"`
}

type ServiceInfo struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
}

type LocalPeeringGatewayInfo struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	VCNID         string `json:"vcn_id"`
	PeeringStatus string `json:"peering_status"`
}

type DRGInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
