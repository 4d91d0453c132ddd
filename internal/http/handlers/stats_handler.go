// Stats HTTP handlers: read-only aggregate views over the catalog.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats godoc
// @ID          getStats
// @Summary     Catalog statistics
// @Description Totals, top five by rating, top five by votes, and the category distribution.
// @Tags        Stats
// @Produce     json
//
// @Success     200  {object} services.CatalogStats
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /stats [get]
func (h *Handlers) GetStats(c *gin.Context) {
	st, err := h.stats.Stats(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, st)
}

// GetCategories godoc
// @ID          getCategories
// @Summary     List categories with joke counts
// @Tags        Stats
// @Produce     json
//
// @Success     200  {array}  repo.CategoryWithCount
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /categories [get]
func (h *Handlers) GetCategories(c *gin.Context) {
	cats, err := h.stats.Categories(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, cats)
}
