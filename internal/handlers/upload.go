// internal/handlers/upload.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/atelier-backend/internal/i18n"
	"github.com/javajoker/atelier-backend/internal/services"
	"github.com/javajoker/atelier-backend/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
	}
}

// POST /api/upload (multipart field "file")
func (h *UploadHandler) Upload(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileMissing), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	defer file.Close()

	result, err := h.storageService.Ingest(file, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			utils.FileTooLargeResponse(c)
			return
		}
		respondError(c, err, "", i18n.KeyFileUploadFailed)
		return
	}

	response := gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"url":     result.URL,
		"key":     result.Key,
		"size":    result.Size,
	}
	if result.ThumbnailURL != "" {
		response["thumbnailUrl"] = result.ThumbnailURL
	}

	utils.SuccessResponse(c, response)
}
