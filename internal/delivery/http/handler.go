package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowgen/backend/internal/domain"
)

// pageFiles whitelists the documents the read API can serve, keyed by the
// URL name each is exposed under.
var pageFiles = map[string]string{
	"questions":  "questions",
	"faq":        "faq",
	"product":    "product_page_1",
	"comparison": "comparison_page",
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	store domain.PageStore
}

// NewHandler creates a new HTTP handler
func NewHandler(store domain.PageStore) *Handler {
	return &Handler{store: store}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "glowgen-backend",
		"version": "1.0.0",
	})
}

// GetPages returns every generated page in one payload, mirroring the
// aggregate document the web viewer consumes. Pages the workflow did not
// produce (a single-product run has no comparison page) are omitted; only a
// fully empty store is a 404.
func (h *Handler) GetPages(c *gin.Context) {
	result := gin.H{"success": true}
	found := 0

	for name, file := range pageFiles {
		var page interface{}
		err := h.store.Load(c.Request.Context(), file, &page)
		if err != nil {
			if errors.Is(err, domain.ErrPageNotFound) {
				continue
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		result[name] = page
		found++
	}

	if found == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "generated pages not found - run the generate command first",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPage returns a single generated page by name.
func (h *Handler) GetPage(c *gin.Context) {
	name := c.Param("name")

	file, ok := pageFiles[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "unknown page: " + name,
		})
		return
	}

	var page interface{}
	if err := h.store.Load(c.Request.Context(), file, &page); err != nil {
		if errors.Is(err, domain.ErrPageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "page not generated yet - run the generate command first",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, page)
}
