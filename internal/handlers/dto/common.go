package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs),
// estendido com a lista de erros de validação por campo
type ErrorResponse struct {
	*problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// newProblem monta um problem RFC 7807 com título e detalhe traduzidos
func newProblem(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...))
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{DefaultProblem: problem}
}

// RespondProblem escreve um problem no content-type RFC 7807
func RespondProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(response.Status, response)
}

// ValidationErrorResponse cria uma resposta 400 de validação a partir
// dos erros do binding do Gin (go-playground/validator)
func ValidationErrorResponse(c *gin.Context, err error) ErrorResponse {
	response := newProblem(
		c,
		"/problems/validation-error",
		"title.validation_error",
		"error.validation_failed",
		http.StatusBadRequest,
	)

	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrors {
			response.Errors = append(response.Errors, ValidationError{
				Field:   fe.Field(),
				Message: translateFieldError(c, fe),
				Tag:     fe.Tag(),
			})
		}
	}

	return response
}

// translateFieldError traduz um erro de campo pela tag de validação
func translateFieldError(c *gin.Context, fe validator.FieldError) string {
	params := map[string]interface{}{"Field": fe.Field()}

	switch fe.Tag() {
	case "required":
		return T(c, "validation.required", params)
	case "email":
		return T(c, "validation.email", params)
	case "min":
		return T(c, "validation.min", params)
	case "max":
		return T(c, "validation.max", params)
	case "oneof":
		return T(c, "validation.oneof", params)
	default:
		return T(c, "validation.invalid", params)
	}
}

// NotFoundErrorResponse cria uma resposta 404 com o detalhe dado
func NotFoundErrorResponse(c *gin.Context, detailKey string) ErrorResponse {
	return newProblem(
		c,
		"/problems/not-found",
		"title.not_found",
		detailKey,
		http.StatusNotFound,
	)
}

// ConflictErrorResponse cria uma resposta 409
func ConflictErrorResponse(c *gin.Context, detailKey string) ErrorResponse {
	return newProblem(
		c,
		"/problems/conflict",
		"title.conflict",
		detailKey,
		http.StatusConflict,
	)
}

// BadRequestErrorResponse cria uma resposta 400 genérica
func BadRequestErrorResponse(c *gin.Context, detailKey string) ErrorResponse {
	return newProblem(
		c,
		"/problems/bad-request",
		"title.bad_request",
		detailKey,
		http.StatusBadRequest,
	)
}

// UnauthorizedErrorResponse cria uma resposta 401
func UnauthorizedErrorResponse(c *gin.Context) ErrorResponse {
	return newProblem(
		c,
		"/problems/unauthorized",
		"title.unauthorized",
		"error.unauthorized",
		http.StatusUnauthorized,
	)
}

// ForbiddenErrorResponse cria uma resposta 403
func ForbiddenErrorResponse(c *gin.Context) ErrorResponse {
	return newProblem(
		c,
		"/problems/forbidden",
		"title.forbidden",
		"error.forbidden",
		http.StatusForbidden,
	)
}

// InternalErrorResponse cria uma resposta 500
func InternalErrorResponse(c *gin.Context) ErrorResponse {
	return newProblem(
		c,
		"/problems/internal-error",
		"title.internal_error",
		"error.internal",
		http.StatusInternalServerError,
	)
}
