package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"skyfolio/internal/core/apperror"
	"skyfolio/internal/domain/content"
)

// ContentAssembler assembles populated page schemas and dashboard links.
type ContentAssembler interface {
	AssemblePageContent(ctx context.Context, ownerID, externalID string) (*content.PageContent, error)
	ListEditablePages(ctx context.Context, ownerID string) ([]content.PageLink, error)
}

// AdminContentHandler serves the admin content editor API.
type AdminContentHandler struct {
	*BaseHandler
	assembler ContentAssembler
}

// NewAdminContentHandler creates the admin content handler.
func NewAdminContentHandler(base *BaseHandler, assembler ContentAssembler) *AdminContentHandler {
	return &AdminContentHandler{
		BaseHandler: base,
		assembler:   assembler,
	}
}

// GetPageContent returns the populated admin schema for one page.
// GET /api/admin/page-content/:pageIdentifier
func (h *AdminContentHandler) GetPageContent(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}

	pageIdentifier := c.Param("pageIdentifier")
	if pageIdentifier == "" {
		h.Error(c, apperror.NewValidation("page identifier is required"))
		return
	}

	result, err := h.assembler.AssemblePageContent(c.Request.Context(), ownerID, pageIdentifier)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}

// ListPages returns the dashboard entries: pages with admin schemas.
// GET /api/admin/pages
func (h *AdminContentHandler) ListPages(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}

	links, err := h.assembler.ListEditablePages(c.Request.Context(), ownerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"pages": links})
}
