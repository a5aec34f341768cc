// internal/handlers/content.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/atelier-backend/internal/i18n"
	"github.com/javajoker/atelier-backend/internal/models"
	"github.com/javajoker/atelier-backend/internal/services"
	"github.com/javajoker/atelier-backend/internal/utils"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// GET /api/home
func (h *ContentHandler) GetHome(c *gin.Context) {
	home, err := h.contentService.GetHomeContent()
	if err != nil {
		respondError(c, err, "", i18n.KeyHomeReadFailed)
		return
	}

	utils.SuccessResponse(c, home)
}

// PUT /api/home
func (h *ContentHandler) ReplaceHome(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var home models.HomeContent
	if err := c.ShouldBindJSON(&home); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	updated, err := h.contentService.ReplaceHomeContent(&home)
	if err != nil {
		respondError(c, err, "", i18n.KeyHomeUpdateFailed)
		return
	}

	utils.SuccessResponse(c, updated)
}

// GET /api/contact
func (h *ContentHandler) GetContact(c *gin.Context) {
	contact, err := h.contentService.GetContactInfo()
	if err != nil {
		respondError(c, err, "", i18n.KeyContactReadFailed)
		return
	}

	utils.SuccessResponse(c, contact)
}

// PUT /api/contact
func (h *ContentHandler) ReplaceContact(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var contact models.ContactInfo
	if err := c.ShouldBindJSON(&contact); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&contact)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	updated, err := h.contentService.ReplaceContactInfo(&contact)
	if err != nil {
		respondError(c, err, "", i18n.KeyContactUpdateFailed)
		return
	}

	utils.SuccessResponse(c, updated)
}

// GET /api/categories
func (h *ContentHandler) GetCategories(c *gin.Context) {
	type category struct {
		ID    models.ProductCategory `json:"id"`
		Label models.Bilingual       `json:"label"`
	}

	categories := make([]category, 0, len(models.Categories))
	for _, id := range models.Categories {
		categories = append(categories, category{ID: id, Label: models.CategoryLabels[id]})
	}

	utils.SuccessResponse(c, categories)
}
