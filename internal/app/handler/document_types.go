package handler

import (
	"net/http"
	"strconv"

	"etatcivil/internal/app/ds"
	"etatcivil/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetDocumentTypes godoc
// @Summary Lister le catalogue des types d'actes
// @Description Types actifs uniquement, recherche par nom possible
// @Tags Catalogue
// @Produce json
// @Param search query string false "Recherche par nom"
// @Success 200 {object} dto.DocumentTypeListResponse
// @Router /api/document-types [get]
func (h *APIHandler) GetDocumentTypes(c *gin.Context) {
	types, err := h.Repository.DocumentTypes(c.Request.Context(), c.Query("search"))
	if err != nil {
		serviceError(c, err)
		return
	}

	resp := dto.DocumentTypeListResponse{DocumentTypes: []dto.DocumentTypeResponse{}}
	for _, docType := range types {
		resp.DocumentTypes = append(resp.DocumentTypes, toDocumentTypeResponse(docType))
	}
	resp.Total = len(resp.DocumentTypes)

	successResponse(c, http.StatusOK, resp)
}

// GetDocumentType godoc
// @Summary Consulter un type d'acte
// @Tags Catalogue
// @Produce json
// @Param id path int true "ID du type d'acte"
// @Success 200 {object} dto.DocumentTypeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/document-types/{id} [get]
func (h *APIHandler) GetDocumentType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "identifiant de type d'acte invalide")
		return
	}

	docType, err := h.Repository.DocumentTypeByID(c.Request.Context(), uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	if docType == nil || !docType.IsActive {
		errorResponse(c, http.StatusNotFound, "type d'acte introuvable")
		return
	}

	successResponse(c, http.StatusOK, toDocumentTypeResponse(*docType))
}

// CreateDocumentType godoc
// @Summary Ajouter un type d'acte au catalogue
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param request body dto.CreateDocumentTypeRequest true "Type d'acte"
// @Success 201 {object} dto.DocumentTypeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/document-types [post]
func (h *APIHandler) CreateDocumentType(c *gin.Context) {
	var body dto.CreateDocumentTypeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, http.StatusBadRequest, "corps de requête invalide: "+err.Error())
		return
	}

	docType := &ds.DocumentType{
		Name:           body.Name,
		Category:       body.Category,
		Description:    body.Description,
		BasePrice:      body.BasePrice,
		ProcessingDays: body.ProcessingDays,
		RequiredFields: ds.StringList(body.RequiredFields),
		IsActive:       true,
	}
	if docType.ProcessingDays == 0 {
		docType.ProcessingDays = 3
	}

	if err := h.Repository.CreateDocumentType(c.Request.Context(), docType); err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusCreated, toDocumentTypeResponse(*docType))
}

// UpdateDocumentType godoc
// @Summary Modifier un type d'acte
// @Description Seuls les champs renseignés sont modifiés
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param id path int true "ID du type d'acte"
// @Param request body dto.UpdateDocumentTypeRequest true "Champs à modifier"
// @Success 200 {object} dto.DocumentTypeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/document-types/{id} [put]
func (h *APIHandler) UpdateDocumentType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "identifiant de type d'acte invalide")
		return
	}

	existing, err := h.Repository.DocumentTypeByID(c.Request.Context(), uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	if existing == nil {
		errorResponse(c, http.StatusNotFound, "type d'acte introuvable")
		return
	}

	var body dto.UpdateDocumentTypeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, http.StatusBadRequest, "corps de requête invalide: "+err.Error())
		return
	}

	var name, category, description *string
	var basePrice *float64
	var processingDays *int
	var requiredFields ds.StringList

	if body.Name != "" {
		name = &body.Name
	}
	if body.Category != "" {
		category = &body.Category
	}
	if body.Description != "" {
		description = &body.Description
	}
	if body.BasePrice > 0 {
		basePrice = &body.BasePrice
	}
	if body.ProcessingDays > 0 {
		processingDays = &body.ProcessingDays
	}
	if body.RequiredFields != nil {
		requiredFields = ds.StringList(body.RequiredFields)
	}

	err = h.Repository.UpdateDocumentType(c.Request.Context(), uint(id),
		name, category, description, basePrice, processingDays, requiredFields)
	if err != nil {
		serviceError(c, err)
		return
	}

	updated, err := h.Repository.DocumentTypeByID(c.Request.Context(), uint(id))
	if err != nil || updated == nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusOK, toDocumentTypeResponse(*updated))
}

// DeleteDocumentType godoc
// @Summary Retirer un type d'acte du catalogue
// @Description Suppression logique: les demandes existantes gardent leur type
// @Tags Catalogue
// @Produce json
// @Param id path int true "ID du type d'acte"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/document-types/{id} [delete]
func (h *APIHandler) DeleteDocumentType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "identifiant de type d'acte invalide")
		return
	}

	if err := h.Repository.DeactivateDocumentType(c.Request.Context(), uint(id)); err != nil {
		errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	successResponse(c, http.StatusOK, dto.SuccessResponse{
		Status:  "ok",
		Message: "type d'acte retiré du catalogue",
	})
}
