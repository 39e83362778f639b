package handlers

import (
	"errors"
	"net/http"

	request "kcc_quote/internal/adapter/http/dto/request"
	response "kcc_quote/internal/adapter/http/dto/response"
	"kcc_quote/internal/infrastructure/spreadsheet"
	"kcc_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingSheetFile    = pkg.NewDomainErrorSimple("MISSING_SHEET_FILE", "Estimate sheet file is required", http.StatusBadRequest)
	errInvalidFetchPayload = pkg.NewDomainErrorSimple("INVALID_FETCH_INPUT", "Invalid fetch payload", http.StatusBadRequest)
)

// ExtractHandler turns an uploaded (or URL-hosted) KCC estimate workbook into
// a RawQuoteExtract plus session defaults.

type ExtractHandler struct {
	parser *spreadsheet.Parser
}

func NewExtractHandler(parser *spreadsheet.Parser) *ExtractHandler {
	return &ExtractHandler{parser: parser}
}

// UploadEstimateSheet accepts a multipart upload under the "file" field.
func (h *ExtractHandler) UploadEstimateSheet(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingSheetFile.HTTPStatus, errMissingSheetFile.ToHTTPError())
		return
	}

	f, err := file.Open()
	if err != nil {
		appErr := mapExtractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	extract, err := h.parser.Parse(f)
	if err != nil {
		appErr := mapExtractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExtract(extract))
}

// FetchEstimateSheet downloads a workbook by URL through the proxy path and
// parses it.
func (h *ExtractHandler) FetchEstimateSheet(c *gin.Context) {
	var payload request.FetchExtractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFetchPayload.HTTPStatus, errInvalidFetchPayload.ToHTTPError())
		return
	}

	extract, err := h.parser.FetchAndParse(c.Request.Context(), payload.URL)
	if err != nil {
		appErr := mapExtractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExtract(extract))
}

func mapExtractError(err error) *pkg.AppError {
	if errors.Is(err, spreadsheet.ErrParse) {
		// The parse message is operator-facing; it names what the sheet is
		// missing.
		return pkg.NewDomainErrorSimple("SHEET_PARSE_FAILED", err.Error(), http.StatusUnprocessableEntity)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
