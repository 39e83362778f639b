package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"kcc_quote/internal/infrastructure/spreadsheet"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func estimateWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	cells := map[string]any{
		"A1": "고객명", "B1": "홍길동", "C1": "연락처", "D1": "010-1234-5678",
		"A2": "품명", "B2": "금액",
		"A3": "창호 A", "B3": 9000000,
		"A4": "운반비", "B4": 1000000,
	}
	for addr, v := range cells {
		if err := f.SetCellValue("Sheet1", addr, v); err != nil {
			t.Fatalf("set cell: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func multipartSheet(t *testing.T, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "estimate.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = mw.Close()
	return body, mw.FormDataContentType()
}

func TestExtractHandler_UploadEstimateSheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		h := NewExtractHandler(spreadsheet.NewParser())
		r := gin.New()
		r.POST("/v1/quotes/extract", h.UploadEstimateSheet)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/extract", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not a workbook", func(t *testing.T) {
		h := NewExtractHandler(spreadsheet.NewParser())
		r := gin.New()
		r.POST("/v1/quotes/extract", h.UploadEstimateSheet)

		body, contentType := multipartSheet(t, []byte("not an xlsx"))
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/extract", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "SHEET_PARSE_FAILED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		h := NewExtractHandler(spreadsheet.NewParser())
		r := gin.New()
		r.POST("/v1/quotes/extract", h.UploadEstimateSheet)

		body, contentType := multipartSheet(t, estimateWorkbook(t))
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/extract", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Extract struct {
				CustomerName string `json:"customer_name"`
				TotalSum     int64  `json:"total_sum"`
				TotalEtc     int64  `json:"total_etc"`
			} `json:"extract"`
			Inputs struct {
				SupplyCost      int64   `json:"supply_cost"`
				PriceMultiplier float64 `json:"price_multiplier"`
			} `json:"inputs"`
			Warnings []string `json:"warnings"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Extract.CustomerName != "홍길동" || resp.Extract.TotalSum != 10_000_000 || resp.Extract.TotalEtc != 1_000_000 {
			t.Fatalf("unexpected extract: %s", w.Body.String())
		}
		if resp.Inputs.SupplyCost != 10_000_000 || resp.Inputs.PriceMultiplier != 1.35 {
			t.Fatalf("unexpected session defaults: %s", w.Body.String())
		}
		if len(resp.Warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", resp.Warnings)
		}
	})
}

func TestExtractHandler_FetchEstimateSheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing url", func(t *testing.T) {
		h := NewExtractHandler(spreadsheet.NewParser())
		r := gin.New()
		r.POST("/v1/quotes/extract/fetch", h.FetchEstimateSheet)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/extract/fetch", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		workbook := estimateWorkbook(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(workbook)
		}))
		defer srv.Close()

		h := NewExtractHandler(spreadsheet.NewParser())
		r := gin.New()
		r.POST("/v1/quotes/extract/fetch", h.FetchEstimateSheet)

		payload, _ := json.Marshal(map[string]string{"url": srv.URL + "/estimate.xlsx"})
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/extract/fetch", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("download failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		h := NewExtractHandler(spreadsheet.NewParser())
		r := gin.New()
		r.POST("/v1/quotes/extract/fetch", h.FetchEstimateSheet)

		payload, _ := json.Marshal(map[string]string{"url": srv.URL + "/missing.xlsx"})
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/extract/fetch", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
