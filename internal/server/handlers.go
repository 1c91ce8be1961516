package server

import (
	"context"
	"net/http"

	"github.com/ocinet/ocinet/internal/config"
	ociidentity "github.com/ocinet/ocinet/internal/oci/identity"
	ocinetwork "github.com/ocinet/ocinet/internal/oci/network"
)

// InventorySource lists the network resources of one compartment.
type InventorySource interface {
	Inventory(ctx context.Context, compartmentID string) (*ocinetwork.Inventory, error)
}

// CompartmentSource lists the compartments visible to the caller.
type CompartmentSource interface {
	ListCompartments(ctx context.Context) ([]ociidentity.CompartmentInfo, error)
}

// InventoryHandler serves the read-only inventory endpoints.
type InventoryHandler struct {
	network      InventorySource
	compartments CompartmentSource
	cfg          *config.ServerConfig
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(network InventorySource, compartments CompartmentSource, cfg *config.ServerConfig) *InventoryHandler {
	return &InventoryHandler{network: network, compartments: compartments, cfg: cfg}
}

// NetworkConfig handles GET /network/config.
func (h *InventoryHandler) NetworkConfig(w http.ResponseWriter, r *http.Request) {
	compartmentID, err := h.cfg.Compartment()
	if err != nil {
		handleError(w, r, err)
		return
	}

	inv, err := h.network.Inventory(r.Context(), compartmentID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, inv)
}

// Compartments handles GET /compartments.
func (h *InventoryHandler) Compartments(w http.ResponseWriter, r *http.Request) {
	cmps, err := h.compartments.ListCompartments(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cmps)
}
