package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/praktyka/records-api/internal/api/metrics"
	"github.com/praktyka/records-api/internal/core/domain"
	"github.com/praktyka/records-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for clients, service offerings and
// contracts.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// --- Clients ---

// CreateClient handles POST /clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  messageResponse
// @Router       /clients [post]
func (h *CatalogHandler) CreateClient(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	client, err := h.catalog.CreateClient(c.Request().Context(), ports.CreateClientInput{
		Name:     req.Name,
		Practice: req.Practice,
		Address:  req.Address,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("client", "create").Inc()
	return c.JSON(http.StatusCreated, client)
}

// ListClients handles GET /clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}  domain.Client
// @Router       /clients [get]
func (h *CatalogHandler) ListClients(c echo.Context) error {
	clients, err := h.catalog.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// GetClient handles GET /clients/:id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  messageResponse
// @Router       /clients/{id} [get]
func (h *CatalogHandler) GetClient(c echo.Context) error {
	client, err := h.catalog.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// DeleteClient handles DELETE /clients/:id.
//
// @Summary      Delete a client
// @Tags         clients
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /clients/{id} [delete]
func (h *CatalogHandler) DeleteClient(c echo.Context) error {
	if err := h.catalog.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: err.Error()})
		}
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("client", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// --- Service offerings ---

// CreateOffering handles POST /services.
//
// @Summary      Create a service offering
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      createOfferingRequest  true  "Offering details"
// @Success      201   {object}  domain.Offering
// @Failure      400   {object}  messageResponse
// @Router       /services [post]
func (h *CatalogHandler) CreateOffering(c echo.Context) error {
	var req createOfferingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	offering, err := h.catalog.CreateOffering(c.Request().Context(), ports.CreateOfferingInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("service", "create").Inc()
	return c.JSON(http.StatusCreated, offering)
}

// ListOfferings handles GET /services.
//
// @Summary      List service offerings
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Offering
// @Router       /services [get]
func (h *CatalogHandler) ListOfferings(c echo.Context) error {
	offerings, err := h.catalog.ListOfferings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offerings)
}

// GetOffering handles GET /services/:id.
//
// @Summary      Get a service offering
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Offering id"
// @Success      200  {object}  domain.Offering
// @Failure      404  {object}  messageResponse
// @Router       /services/{id} [get]
func (h *CatalogHandler) GetOffering(c echo.Context) error {
	offering, err := h.catalog.GetOffering(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOfferingNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, offering)
}

// DeleteOffering handles DELETE /services/:id.
//
// @Summary      Delete a service offering
// @Tags         services
// @Param        id  path  string  true  "Offering id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /services/{id} [delete]
func (h *CatalogHandler) DeleteOffering(c echo.Context) error {
	if err := h.catalog.DeleteOffering(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrOfferingNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: err.Error()})
		}
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("service", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// --- Contracts ---

// CreateContract handles POST /contracts.
//
// @Summary      Create a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        body  body      createContractRequest  true  "Contract details"
// @Success      201   {object}  domain.Contract
// @Failure      400   {object}  messageResponse
// @Router       /contracts [post]
func (h *CatalogHandler) CreateContract(c echo.Context) error {
	var req createContractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	contract, err := h.catalog.CreateContract(c.Request().Context(), ports.CreateContractInput{
		Client:      req.Client,
		Services:    req.Services,
		TotalPrice:  req.TotalPrice,
		Fee:         req.Fee,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("contract", "create").Inc()
	return c.JSON(http.StatusCreated, contract)
}

// ListContracts handles GET /contracts.
//
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Success      200  {array}  domain.Contract
// @Router       /contracts [get]
func (h *CatalogHandler) ListContracts(c echo.Context) error {
	contracts, err := h.catalog.ListContracts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contracts)
}

// GetContract handles GET /contracts/:id.
//
// @Summary      Get a contract
// @Tags         contracts
// @Produce      json
// @Param        id   path      string  true  "Contract id"
// @Success      200  {object}  domain.Contract
// @Failure      404  {object}  messageResponse
// @Router       /contracts/{id} [get]
func (h *CatalogHandler) GetContract(c echo.Context) error {
	contract, err := h.catalog.GetContract(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrContractNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, contract)
}

// DeleteContract handles DELETE /contracts/:id.
//
// @Summary      Delete a contract
// @Tags         contracts
// @Param        id  path  string  true  "Contract id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /contracts/{id} [delete]
func (h *CatalogHandler) DeleteContract(c echo.Context) error {
	if err := h.catalog.DeleteContract(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrContractNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: err.Error()})
		}
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("contract", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
