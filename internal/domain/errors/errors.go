package errors

import (
	"net/http"

	"github.com/BeMaTech82/hortago/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are in French, the locale of
// the application.
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Utilisateur introuvable",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Cette adresse e-mail est déjà enregistrée",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Échec de la création du compte",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou mot de passe incorrect",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Jeton de session invalide ou expiré",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erreur de traitement du mot de passe",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Produit introuvable",
		"",
	)

	ErrProductCategoryInvalid = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_CATEGORY_INVALID",
		"Catégorie de produit invalide",
		"",
	)

	ErrProductPriceInvalid = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_PRICE_INVALID",
		"Le prix doit être positif ou nul",
		"",
	)

	ErrProductStatusInvalid = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_STATUS_INVALID",
		"Statut de produit invalide",
		"",
	)

	ErrProductOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"PRODUCT_OWNERSHIP_VIOLATION",
		"Vous n'êtes pas le vendeur de ce produit",
		"",
	)

	ErrSellerRoleRequired = NewBaseError(
		http.StatusForbidden,
		"SELLER_ROLE_REQUIRED",
		"Seul un vendeur peut publier des produits",
		"",
	)

	// Saved-search-related errors
	ErrSearchNotFound = NewBaseError(
		http.StatusNotFound,
		"SEARCH_NOT_FOUND",
		"Recherche enregistrée introuvable",
		"",
	)

	ErrSearchRadiusInvalid = NewBaseError(
		http.StatusBadRequest,
		"SEARCH_RADIUS_INVALID",
		"Le rayon de recherche doit être strictement positif",
		"",
	)

	ErrSearchCategoryInvalid = NewBaseError(
		http.StatusBadRequest,
		"SEARCH_CATEGORY_INVALID",
		"Catégorie de recherche invalide",
		"",
	)

	ErrSearchOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"SEARCH_OWNERSHIP_VIOLATION",
		"Vous n'êtes pas le propriétaire de cette recherche",
		"",
	)

	ErrBuyerRoleRequired = NewBaseError(
		http.StatusForbidden,
		"BUYER_ROLE_REQUIRED",
		"Seul un acheteur peut enregistrer des recherches",
		"",
	)

	// Sync queue errors
	ErrSyncEnqueueFailed = NewBaseError(
		http.StatusInternalServerError,
		"SYNC_ENQUEUE_FAILED",
		"Impossible d'enregistrer l'opération hors ligne",
		"",
	)

	ErrSyncDrainInProgress = NewBaseError(
		http.StatusConflict,
		"SYNC_DRAIN_IN_PROGRESS",
		"Une synchronisation est déjà en cours",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Les données saisies sont invalides",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erreur interne du système",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Accès refusé",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Ressource introuvable",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflit de ressources",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Échec de l'accès à la base de données"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
