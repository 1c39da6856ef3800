package handler

import (
	"errors"
	"net/http"

	"etatcivil/internal/app/config"
	"etatcivil/internal/app/ds"
	"etatcivil/internal/app/dto"
	"etatcivil/internal/app/lifecycle"
	"etatcivil/internal/app/payment"
	"etatcivil/internal/app/pricing"
	"etatcivil/internal/app/redis"
	"etatcivil/internal/app/reference"
	"etatcivil/internal/app/render"
	"etatcivil/internal/app/repository"
	"etatcivil/internal/app/role"
	"etatcivil/internal/app/service"
	"etatcivil/internal/app/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIHandler struct {
	Repository  *repository.Repository
	Service     *service.RequestService
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAPIHandler(repo *repository.Repository, svc *service.RequestService, redisClient *redis.Client, cfg *config.Config) *APIHandler {
	return &APIHandler{
		Repository:  repo,
		Service:     svc,
		RedisClient: redisClient,
		Config:      cfg,
	}
}

func errorResponse(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

func successResponse(c *gin.Context, httpCode int, data interface{}) {
	c.JSON(httpCode, data)
}

// serviceError traduit les erreurs métier en réponses HTTP
func serviceError(c *gin.Context, err error) {
	var subjectErr *service.SubjectFieldError
	var typeErr *render.UnsupportedTypeError
	var missingErr *render.MissingFieldError

	switch {
	case errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrDocumentTypeNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, payment.ErrNotFound):
		errorResponse(c, http.StatusNotFound, err.Error())

	case errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, payment.ErrAlreadyPaid),
		errors.Is(err, payment.ErrConflict):
		errorResponse(c, http.StatusConflict, err.Error())

	case errors.Is(err, lifecycle.ErrPaymentNotCompleted):
		errorResponse(c, http.StatusPaymentRequired, err.Error())

	case errors.Is(err, pricing.ErrInvalidDeliveryMethod),
		errors.Is(err, pricing.ErrDocumentTypeUnavailable),
		errors.Is(err, service.ErrPriceMismatch),
		errors.Is(err, service.ErrAddressRequired),
		errors.Is(err, service.ErrPhoneRequired),
		errors.Is(err, service.ErrNotCompleted),
		errors.Is(err, lifecycle.ErrReasonRequired),
		errors.Is(err, payment.ErrUnknownOutcome),
		errors.As(err, &subjectErr),
		errors.As(err, &typeErr):
		errorResponse(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, storage.ErrWriteFailed),
		errors.Is(err, reference.ErrAllocationFailed):
		errorResponse(c, http.StatusServiceUnavailable, err.Error())

	case errors.As(err, &missingErr):
		errorResponse(c, http.StatusInternalServerError, err.Error())

	default:
		log.Errorf("unhandled service error: %v", err)
		errorResponse(c, http.StatusInternalServerError, "erreur interne du serveur")
	}
}

// getUserFromContext relit l'identité posée par le middleware d'authentification
func getUserFromContext(c *gin.Context) (uint, role.Role, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, role.Citizen, false
	}
	userRole, exists := c.Get("userRole")
	if !exists {
		return 0, role.Citizen, false
	}
	return userID.(uint), userRole.(role.Role), true
}

// ============ Conversion entités -> DTO ============

func toPaymentResponse(p *ds.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		Status:        p.Status,
		Amount:        p.Amount,
		Method:        p.Method,
		PaymentRef:    p.PaymentRef,
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
	}
}

func toRequestResponse(req *ds.DocumentRequest, notes []ds.RequestNote) dto.RequestResponse {
	resp := dto.RequestResponse{
		ID:              req.ID,
		Reference:       req.Reference,
		Status:          req.Status,
		DocumentType:    req.DocumentType.Name,
		DeliveryMethod:  req.DeliveryMethod,
		Price:           req.Price,
		SubjectData:     req.SubjectData,
		Address:         req.Address,
		Phone:           req.Phone,
		Creator:         req.Creator.FullName,
		Payment:         toPaymentResponse(req.Payment),
		SubmittedAt:     req.SubmittedAt,
		ProcessedAt:     req.ProcessedAt,
		CompletedAt:     req.CompletedAt,
		RejectedAt:      req.RejectedAt,
		RejectionReason: req.RejectionReason,
	}

	if req.DocumentFileName != "" && req.DocumentGeneratedAt != nil && req.DocumentGeneratedBy != nil {
		resp.GeneratedDocument = &dto.GeneratedDocumentResponse{
			URL:         req.DocumentURL,
			FileName:    req.DocumentFileName,
			GeneratedAt: *req.DocumentGeneratedAt,
			GeneratedBy: *req.DocumentGeneratedBy,
		}
	}

	for _, note := range notes {
		resp.Notes = append(resp.Notes, dto.NoteResponse{
			Content:   note.Content,
			Author:    note.Author.FullName,
			CreatedAt: note.CreatedAt,
		})
	}

	return resp
}

func toDocumentTypeResponse(docType ds.DocumentType) dto.DocumentTypeResponse {
	return dto.DocumentTypeResponse{
		ID:             docType.ID,
		Name:           docType.Name,
		Category:       docType.Category,
		Description:    docType.Description,
		BasePrice:      docType.BasePrice,
		ProcessingDays: docType.ProcessingDays,
		RequiredFields: docType.RequiredFields,
	}
}
