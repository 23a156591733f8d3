package demands

import (
	"net/http"
	"strconv"
	"time"

	"gestor-politico/internal/api"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/model"
	"gestor-politico/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	listDemands  = service.ListDemands
	createDemand = service.CreateDemand
	updateDemand = service.UpdateDemand
	deleteDemand = service.DeleteDemand
)

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func toResponse(d model.Demand) api.DemandResponse {
	return api.DemandResponse{
		ID:          d.ID,
		FamilyID:    d.FamilyID,
		Family:      d.FamilyLabel,
		Title:       d.Title,
		Description: d.Description,
		Urgency:     string(d.Urgency),
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
		DueDate:     formatDate(d.DueDate),
		CompletedAt: formatDate(d.CompletedAt),
	}
}

// ListDemandsHandler lists demands, newest first.
// @Summary     List demands
// @Tags        demandas
// @Produce     json
// @Param       familiaId query    int    false "Filtra por família"
// @Param       status    query    string false "Pendente, Em andamento ou Concluída"
// @Success     200       {array}  api.DemandResponse
// @Failure     400       {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /demandas [get]
func ListDemandsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		familyID := 0
		if raw := c.QueryParam("familiaId"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return handler.BadRequest(c, "familiaId inválido")
			}
			familyID = id
		}
		list, err := listDemands(c.Request().Context(), db, familyID, c.QueryParam("status"))
		if err != nil {
			return handler.Error(c, err)
		}
		resp := make([]api.DemandResponse, 0, len(list))
		for _, d := range list {
			resp = append(resp, toResponse(d))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CreateDemandHandler records a demand of a family.
// @Summary     Create a demand
// @Tags        demandas
// @Accept      json
// @Produce     json
// @Param       body body     api.DemandRequest true "Demanda"
// @Success     201  {object} api.DemandResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /demandas [post]
func CreateDemandHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.DemandRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "corpo da requisição inválido")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, err)
		}
		d, err := createDemand(c.Request().Context(), db, req)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusCreated, toResponse(*d))
	}
}

// UpdateDemandHandler rewrites a demand.
// @Summary     Update a demand
// @Tags        demandas
// @Accept      json
// @Produce     json
// @Param       id   path     string            true "ID (UUID) da demanda"
// @Param       body body     api.DemandRequest true "Demanda"
// @Success     200  {object} api.DemandResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /demandas/{id} [put]
func UpdateDemandHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.DemandRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "corpo da requisição inválido")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, err)
		}
		d, err := updateDemand(c.Request().Context(), db, c.Param("id"), req)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, toResponse(*d))
	}
}

// DeleteDemandHandler removes a demand.
// @Summary     Delete a demand
// @Tags        demandas
// @Param       id path string true "ID (UUID) da demanda"
// @Success     204
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /demandas/{id} [delete]
func DeleteDemandHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := deleteDemand(c.Request().Context(), db, c.Param("id")); err != nil {
			return handler.Error(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
