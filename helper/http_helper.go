package helper

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"yournews/logging"
	"yournews/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	textError = `error`
	textOk    = `ok`

	internalErrorMessage = `internal server error`
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  interface{}
	Data     interface{}
	Code     int
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds a helper with an English translated validator.
func NewHTTPHelper() *HTTPHelper {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		logging.Fatal().Err(err).Msg("Failed to register validator translations")
	}

	return &HTTPHelper{Validate: validate, Translator: trans}
}

// GetStatusCode ...
// Map typed errors to HTTP status codes.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		unauthorized models.ErrorUnauthorized
		forbidden    models.ErrorForbidden
		validation   models.ErrorValidation
		notFound     models.ErrorNotFound
		conflict     models.ErrorConflict
	)
	switch {
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func codeType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return `badRequest`
	case http.StatusUnauthorized:
		return `unAuthorized`
	case http.StatusForbidden:
		return `forbidden`
	case http.StatusNotFound:
		return `notFound`
	case http.StatusConflict:
		return `conflict`
	case http.StatusCreated:
		return `created`
	case http.StatusOK:
		return `success`
	}
	return `internalServerError`
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message interface{}, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send the typed error to consumers. Internal errors are logged with their
// stack and replaced by a generic message.
func (u *HTTPHelper) SendError(c *gin.Context, err error) error {
	status := u.GetStatusCode(err)

	var validation models.ErrorValidation
	if errors.As(err, &validation) && len(validation.Fields) > 0 {
		return u.SendResponse(u.SetResponse(c, textError, validation.Fields, u.EmptyJsonMap(), status, `validationError`))
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error().Stack().Err(err).
			Str("path", c.FullPath()).
			Msg("Request failed")
		message = internalErrorMessage
	}

	return u.SendResponse(u.SetResponse(c, textError, message, u.EmptyJsonMap(), status, codeType(status)))
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	return u.SendResponse(u.SetResponse(c, textError, message, data, http.StatusBadRequest, `badRequest`))
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	return u.SendResponse(u.SetResponse(c, textError, errorResponse, u.EmptyJsonMap(), http.StatusBadRequest, `validationError`))
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) error {
	return u.SendResponse(u.SetResponse(c, textError, message, u.EmptyJsonMap(), http.StatusUnauthorized, `unAuthorized`))
}

// SendForbiddenError ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string) error {
	return u.SendResponse(u.SetResponse(c, textError, message, u.EmptyJsonMap(), http.StatusForbidden, `forbidden`))
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	return u.SendResponse(u.SetResponse(c, textOk, message, data, http.StatusOK, `success`))
}

// SendCreated ...
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) error {
	return u.SendResponse(u.SetResponse(c, textOk, message, data, http.StatusCreated, `created`))
}

// SendResponse ...
// Send response. Code is the HTTP status.
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if s, ok := res.Message.(string); ok && len(s) == 0 {
		res.Message = `success`
	}

	res.C.JSON(res.Code, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

// BindJSON decodes and validates the request body. It writes the error
// response itself and reports whether the handler may continue.
func (u *HTTPHelper) BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		u.SendBadRequest(c, "invalid request body", u.EmptyJsonMap())
		return false
	}
	if err := u.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			u.SendValidationError(c, validationErrors)
			return false
		}
		u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
		return false
	}
	return true
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// ParseID reads a positive numeric path parameter.
func (u *HTTPHelper) ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		u.SendBadRequest(c, "invalid "+name, u.EmptyJsonMap())
		return 0, false
	}
	return uint(id), true
}

// get pagination URL, keeping the other query parameters
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page int) string {
	r := c.Request
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	query := r.URL.Query()
	query.Set("page", strconv.Itoa(page))
	return scheme + "://" + r.Host + r.URL.Path + "?" + query.Encode()
}

// Set pagination response
func (u *HTTPHelper) GeneratePaging(c *gin.Context, limit, page int, totalRecord int64) map[string]interface{} {
	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	if page > 1 && page <= totalPages {
		prevURL = u.GetPagingUrl(c, page-1)
		firstURL = u.GetPagingUrl(c, 1)
	}

	if totalPages > page {
		nextURL = u.GetPagingUrl(c, page+1)
	}

	if totalPages >= page && totalPages != page {
		lastURL = u.GetPagingUrl(c, totalPages)
	}

	links := map[string]interface{}{
		"previous": prevURL,
		"next":     nextURL,
		"first":    firstURL,
		"last":     lastURL,
	}

	return map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links":         links,
	}
}
