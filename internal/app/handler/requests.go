package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"etatcivil/internal/app/dto"
	"etatcivil/internal/app/role"
	"etatcivil/internal/app/service"

	"github.com/gin-gonic/gin"
)

func parseRequestID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "identifiant de demande invalide")
		return 0, false
	}
	return uint(id), true
}

// CreateRequest godoc
// @Summary Déposer une demande d'acte
// @Description Crée une demande avec prix calculé côté serveur, référence attribuée et paiement en attente
// @Tags Demandes
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Demande"
// @Success 201 {object} dto.RequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/requests [post]
func (h *APIHandler) CreateRequest(c *gin.Context) {
	userID, _, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	var body dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, http.StatusBadRequest, "corps de requête invalide: "+err.Error())
		return
	}

	req, err := h.Service.CreateRequest(c.Request.Context(), service.CreateRequestInput{
		DocumentTypeID: body.DocumentTypeID,
		DeliveryMethod: body.DeliveryMethod,
		SubjectData:    body.SubjectData,
		Address:        body.Address,
		Phone:          body.Phone,
		ExpectedTotal:  body.ExpectedTotal,
		CreatorID:      userID,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusCreated, toRequestResponse(req, nil))
}

// GetRequests godoc
// @Summary Lister les demandes
// @Description Liste filtrable par statut et période. Les citoyens ne voient que leurs demandes.
// @Tags Demandes
// @Produce json
// @Param status query string false "Statut" Enums(pending, processing, completed, rejected)
// @Param date_from query string false "Déposées à partir du (YYYY-MM-DD)"
// @Param date_to query string false "Déposées jusqu'au (YYYY-MM-DD)"
// @Success 200 {object} dto.RequestListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/requests [get]
func (h *APIHandler) GetRequests(c *gin.Context) {
	userID, userRole, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	filter := service.RequestFilter{Status: c.Query("status")}

	if v := c.Query("date_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "date_from invalide, format attendu YYYY-MM-DD")
			return
		}
		filter.DateFrom = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "date_to invalide, format attendu YYYY-MM-DD")
			return
		}
		filter.DateTo = &t
	}

	// Un citoyen ne liste que ses propres demandes
	if userRole == role.Citizen {
		filter.CreatorID = &userID
	}

	requests, err := h.Service.Requests(c.Request.Context(), filter)
	if err != nil {
		serviceError(c, err)
		return
	}

	resp := dto.RequestListResponse{Requests: []dto.RequestResponse{}}
	for i := range requests {
		resp.Requests = append(resp.Requests, toRequestResponse(&requests[i], nil))
	}
	resp.Total = len(resp.Requests)

	successResponse(c, http.StatusOK, resp)
}

// GetRequest godoc
// @Summary Consulter une demande
// @Description Instantané complet: statut, paiement, jalons, document généré et notes
// @Tags Demandes
// @Produce json
// @Param id path int true "ID de la demande"
// @Success 200 {object} dto.RequestResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/requests/{id} [get]
func (h *APIHandler) GetRequest(c *gin.Context) {
	userID, userRole, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	req, err := h.Service.Request(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}

	// Le dossier d'autrui est invisible pour un citoyen
	if userRole == role.Citizen && req.CreatorID != userID {
		errorResponse(c, http.StatusNotFound, service.ErrRequestNotFound.Error())
		return
	}

	notes, err := h.Repository.NotesByRequestID(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusOK, toRequestResponse(req, notes))
}

// StartReview godoc
// @Summary Prendre une demande en instruction
// @Description Transition pending -> processing, horodatée et attribuée à l'agent
// @Tags Instruction
// @Produce json
// @Param id path int true "ID de la demande"
// @Success 200 {object} dto.RequestResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/requests/{id}/review [put]
func (h *APIHandler) StartReview(c *gin.Context) {
	agentID, _, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	req, err := h.Service.StartReview(c.Request.Context(), id, agentID)
	if err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusOK, toRequestResponse(req, nil))
}

// ApproveRequest godoc
// @Summary Approuver une demande
// @Description Transition processing -> completed, refusée tant que le paiement n'est pas confirmé
// @Tags Instruction
// @Produce json
// @Param id path int true "ID de la demande"
// @Success 200 {object} dto.RequestResponse
// @Failure 402 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/requests/{id}/approve [put]
func (h *APIHandler) ApproveRequest(c *gin.Context) {
	agentID, _, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	req, err := h.Service.Approve(c.Request.Context(), id, agentID)
	if err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusOK, toRequestResponse(req, nil))
}

// RejectRequest godoc
// @Summary Rejeter une demande
// @Description Transition processing -> rejected, motif obligatoire
// @Tags Instruction
// @Accept json
// @Produce json
// @Param id path int true "ID de la demande"
// @Param request body dto.RejectRequestRequest true "Motif du rejet"
// @Success 200 {object} dto.RequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/requests/{id}/reject [put]
func (h *APIHandler) RejectRequest(c *gin.Context) {
	agentID, _, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	var body dto.RejectRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, http.StatusBadRequest, "le motif du rejet est obligatoire")
		return
	}

	req, err := h.Service.Reject(c.Request.Context(), id, agentID, body.Reason)
	if err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusOK, toRequestResponse(req, nil))
}

// InitializePayment godoc
// @Summary Initialiser le paiement d'une demande
// @Description Prépare le paiement et retourne l'identifiant opaque destiné au prestataire
// @Tags Paiement
// @Accept json
// @Produce json
// @Param id path int true "ID de la demande"
// @Param request body dto.InitializePaymentRequest false "Moyen de paiement"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/requests/{id}/payment [post]
func (h *APIHandler) InitializePayment(c *gin.Context) {
	userID, userRole, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	// Corps optionnel: seul le moyen de paiement peut être précisé
	var body dto.InitializePaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		errorResponse(c, http.StatusBadRequest, "corps de requête invalide: "+err.Error())
		return
	}

	req, err := h.Service.Request(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	if userRole == role.Citizen && req.CreatorID != userID {
		errorResponse(c, http.StatusNotFound, service.ErrRequestNotFound.Error())
		return
	}

	pay, err := h.Service.InitializePayment(c.Request.Context(), id, body.Method)
	if err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusOK, toPaymentResponse(pay))
}

// ConfirmPayment godoc
// @Summary Callback de confirmation de paiement
// @Description Appelé par le prestataire de paiement avec l'issue de la transaction. Authentifié par la clé statique X-Payment-Key.
// @Tags Paiement
// @Accept json
// @Produce json
// @Param id path int true "ID de la demande"
// @Param X-Payment-Key header string true "Clé du prestataire"
// @Param request body dto.ConfirmPaymentRequest true "Issue de la transaction"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/requests/{id}/payment/confirm [put]
func (h *APIHandler) ConfirmPayment(c *gin.Context) {
	if c.GetHeader("X-Payment-Key") != h.Config.Payment.CallbackKey {
		errorResponse(c, http.StatusForbidden, "clé de callback invalide")
		return
	}

	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	var body dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, http.StatusBadRequest, "corps de requête invalide: "+err.Error())
		return
	}

	pay, err := h.Service.ConfirmPayment(c.Request.Context(), id, body.TransactionID, body.Outcome)
	if err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusOK, toPaymentResponse(pay))
}

// GenerateDocument godoc
// @Summary Générer l'acte d'une demande approuvée
// @Description Compose et dessine l'acte PDF, l'écrit dans le stockage objet et rattache le descripteur. Régénérer écrase le descripteur précédent.
// @Tags Documents
// @Produce json
// @Param id path int true "ID de la demande"
// @Success 200 {object} dto.RequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/requests/{id}/document [post]
func (h *APIHandler) GenerateDocument(c *gin.Context) {
	agentID, _, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	req, err := h.Service.GenerateDocument(c.Request.Context(), id, agentID)
	if err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusOK, toRequestResponse(req, nil))
}

// DownloadDocument godoc
// @Summary Obtenir l'URL de téléchargement de l'acte
// @Description Retourne une URL fraîche vers le document généré
// @Tags Documents
// @Produce json
// @Param id path int true "ID de la demande"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/requests/{id}/document [get]
func (h *APIHandler) DownloadDocument(c *gin.Context) {
	userID, userRole, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	req, err := h.Service.Request(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	if userRole == role.Citizen && req.CreatorID != userID {
		errorResponse(c, http.StatusNotFound, service.ErrRequestNotFound.Error())
		return
	}

	url, err := h.Service.DocumentURL(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusOK, dto.SuccessResponse{
		Status: "ok",
		Data:   gin.H{"url": url},
	})
}

// AddNote godoc
// @Summary Ajouter une note à une demande
// @Description Un citoyen ne peut annoter que ses propres demandes
// @Tags Instruction
// @Accept json
// @Produce json
// @Param id path int true "ID de la demande"
// @Param request body dto.NoteRequest true "Contenu de la note"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/requests/{id}/notes [post]
func (h *APIHandler) AddNote(c *gin.Context) {
	userID, userRole, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	id, ok := parseRequestID(c)
	if !ok {
		return
	}

	var body dto.NoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, http.StatusBadRequest, "le contenu de la note est obligatoire")
		return
	}

	if userRole == role.Citizen {
		req, err := h.Service.Request(c.Request.Context(), id)
		if err != nil {
			serviceError(c, err)
			return
		}
		if req.CreatorID != userID {
			errorResponse(c, http.StatusNotFound, service.ErrRequestNotFound.Error())
			return
		}
	}

	note, err := h.Service.AddNote(c.Request.Context(), id, userID, body.Content)
	if err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusCreated, dto.NoteResponse{
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
	})
}
