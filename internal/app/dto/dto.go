package dto

import "time"

// ============ Structures communes ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Catalogue (Document Types) ============

type DocumentTypeResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"` // naissance, deces, mariage
	Description    string   `json:"description"`
	BasePrice      float64  `json:"base_price"`
	ProcessingDays int      `json:"processing_days"`
	RequiredFields []string `json:"required_fields"`
}

type DocumentTypeListResponse struct {
	DocumentTypes []DocumentTypeResponse `json:"document_types"`
	Total         int                    `json:"total"`
}

type CreateDocumentTypeRequest struct {
	Name           string   `json:"name" binding:"required"`
	Category       string   `json:"category" binding:"required,oneof=naissance deces mariage"`
	Description    string   `json:"description"`
	BasePrice      float64  `json:"base_price" binding:"required,gt=0"`
	ProcessingDays int      `json:"processing_days" binding:"omitempty,gte=1"`
	RequiredFields []string `json:"required_fields" binding:"required,min=1"`
}

type UpdateDocumentTypeRequest struct {
	Name           string   `json:"name"`
	Category       string   `json:"category" binding:"omitempty,oneof=naissance deces mariage"`
	Description    string   `json:"description"`
	BasePrice      float64  `json:"base_price" binding:"omitempty,gt=0"`
	ProcessingDays int      `json:"processing_days" binding:"omitempty,gte=1"`
	RequiredFields []string `json:"required_fields"`
}

// ============ Demandes (Document Requests) ============

type CreateRequestRequest struct {
	DocumentTypeID uint              `json:"document_type_id" binding:"required"`
	DeliveryMethod string            `json:"delivery_method" binding:"required,oneof=download pickup delivery"`
	SubjectData    map[string]string `json:"subject_data" binding:"required"`
	Address        string            `json:"address"`
	Phone          string            `json:"phone"`
	// Montant affiché au demandeur; recalculé et contrôlé côté serveur
	ExpectedTotal *float64 `json:"expected_total"`
}

type RejectRequestRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type PaymentResponse struct {
	Status        string     `json:"status"` // pending, paid, failed
	Amount        float64    `json:"amount"`
	Method        string     `json:"method,omitempty"`
	PaymentRef    string     `json:"payment_ref,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

type InitializePaymentRequest struct {
	Method string `json:"method" binding:"omitempty,oneof=mobile_money card cash"`
}

type ConfirmPaymentRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Outcome       string `json:"outcome" binding:"required,oneof=succeeded failed"`
}

type GeneratedDocumentResponse struct {
	URL         string    `json:"url"`
	FileName    string    `json:"file_name"`
	GeneratedAt time.Time `json:"generated_at"`
	GeneratedBy uint      `json:"generated_by"`
}

type NoteRequest struct {
	Content string `json:"content" binding:"required"`
}

type NoteResponse struct {
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type RequestResponse struct {
	ID                uint                       `json:"id"`
	Reference         string                     `json:"reference"`
	Status            string                     `json:"status"`
	DocumentType      string                     `json:"document_type"`
	DeliveryMethod    string                     `json:"delivery_method"`
	Price             float64                    `json:"price"`
	SubjectData       map[string]string          `json:"subject_data,omitempty"`
	Address           string                     `json:"address,omitempty"`
	Phone             string                     `json:"phone,omitempty"`
	Creator           string                     `json:"creator"`
	Payment           *PaymentResponse           `json:"payment,omitempty"`
	GeneratedDocument *GeneratedDocumentResponse `json:"generated_document,omitempty"`
	SubmittedAt       time.Time                  `json:"submitted_at"`
	ProcessedAt       *time.Time                 `json:"processed_at,omitempty"`
	CompletedAt       *time.Time                 `json:"completed_at,omitempty"`
	RejectedAt        *time.Time                 `json:"rejected_at,omitempty"`
	RejectionReason   string                     `json:"rejection_reason,omitempty"`
	Notes             []NoteResponse             `json:"notes,omitempty"`
}

type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int               `json:"total"`
}

// ============ Utilisateurs ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Role     int    `json:"role"`
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     int    `json:"role"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
