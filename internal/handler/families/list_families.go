package families

import (
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"

	"github.com/labstack/echo/v4"
)

// ListFamiliesHandler returns one filtered page of families.
// @Summary     List families
// @Description Lista famílias com filtros, paginação e totais do conjunto filtrado
// @Tags        familias
// @Produce     json
// @Param       cidadeId          query    int    false "Cidade"
// @Param       regiao            query    string false "Nome da região"
// @Param       bairro            query    string false "Bairro (parcial)"
// @Param       responsavel       query    string false "Nome do responsável (parcial)"
// @Param       probabilidadeVoto query    string false "Alta, Média ou Baixa"
// @Param       rua               query    string false "Rua (parcial)"
// @Param       numero            query    string false "Número"
// @Param       cep               query    string false "CEP (parcial)"
// @Param       termo             query    string false "Busca livre"
// @Param       dataInicio        query    string false "AAAA-MM-DD"
// @Param       dataFim           query    string false "AAAA-MM-DD (inclusive)"
// @Param       pagina            query    int    false "Página, a partir de 0"
// @Param       tamanho           query    int    false "Itens por página (máx. 200)"
// @Success     200 {object} api.FamilyListResponse
// @Failure     400 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /familias [get]
func ListFamiliesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q api.FamilyListQuery
		if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
			return handler.BadRequest(c, "parâmetros de consulta inválidos")
		}
		if err := c.Validate(&q); err != nil {
			return handler.Error(c, err)
		}

		page, err := listFamilies(c.Request().Context(), db, q)
		if err != nil {
			return handler.Error(c, err)
		}
		resp := api.FamilyListResponse{
			Families:           make([]api.FamilyResponse, 0, len(page.Families)),
			Total:              page.Stats.Total,
			Page:               page.Page,
			Size:               page.Size,
			TotalMembers:       page.Stats.TotalMembers,
			ActiveResponsibles: page.Stats.ActiveResponsibles,
			NewFamilies:        page.Stats.NewFamilies,
			NewMembers:         page.Stats.NewMembers,
		}
		for _, f := range page.Families {
			resp.Families = append(resp.Families, toResponse(f))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
