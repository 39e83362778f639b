package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kcc_quote/internal/domain/entities"
	"kcc_quote/internal/domain/pricing"

	"github.com/xuri/excelize/v2"
)

// ErrParse wraps every sheet-level failure so callers can map it to one
// operator-facing error kind while keeping the underlying message.
var ErrParse = errors.New("estimate sheet parse failed")

// Labels the KCC estimate form uses for the customer header cells.
var (
	nameLabels    = []string{"고객명", "성명", "고객"}
	phoneLabels   = []string{"연락처", "전화번호", "전화"}
	addressLabels = []string{"주소", "시공주소"}
)

// etcMarkers flag non-material line items (labor, delivery, demolition).
var etcMarkers = []string{"운반비", "시공비", "철거비", "배송비", "인건비", "기타"}

// Parser converts an uploaded KCC estimate workbook into a RawQuoteExtract.
//
// The sheet layout is only partially trusted: header labels are scanned, item
// columns are inferred, junk rows are skipped, and totals fall back to item
// sums when no total row exists. Consistency of the result is judged later by
// pricing.ValidateExtract.
type Parser struct {
	httpClient *http.Client
}

func NewParser() *Parser {
	return &Parser{httpClient: &http.Client{Timeout: 30 * time.Second}}
}

// Parse reads the first sheet of the workbook.
func (p *Parser) Parse(r io.Reader) (pricing.RawQuoteExtract, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return pricing.RawQuoteExtract{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return pricing.RawQuoteExtract{}, fmt.Errorf("%w: workbook has no sheets", ErrParse)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return pricing.RawQuoteExtract{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	extract := pricing.RawQuoteExtract{}
	nameCol, priceCol, etcCol := -1, -1, -1

	for _, row := range rows {
		cells := trimCells(row)
		if len(cells) == 0 {
			continue
		}

		scanHeaderLabels(cells, &extract)

		if nameCol < 0 {
			nameCol, priceCol, etcCol = inferItemColumns(cells)
			continue
		}

		name := pickCell(cells, nameCol)
		priceCell := pickCell(cells, priceCol)
		if name == "" || priceCell == "" {
			continue
		}

		price, ok := parseAmount(priceCell)
		if !ok {
			continue
		}

		if isTotalRow(name) {
			if strings.Contains(name, "기타") {
				extract.TotalEtc = price
			} else {
				extract.TotalSum = price
			}
			continue
		}

		extract.Items = append(extract.Items, entities.QuoteItem{
			Name:  name,
			Price: price,
			IsEtc: isEtcItem(name, pickCell(cells, etcCol)),
		})
	}

	// Sheets without explicit total rows still yield usable extracts.
	if extract.TotalSum == 0 || extract.TotalEtc == 0 {
		var sum, etc int64
		for _, it := range extract.Items {
			sum += it.Price
			if it.IsEtc {
				etc += it.Price
			}
		}
		if extract.TotalSum == 0 {
			extract.TotalSum = sum
		}
		if extract.TotalEtc == 0 {
			extract.TotalEtc = etc
		}
	}

	log.Printf("[extract][parser] parsed sheet=%q items=%d total_sum=%d total_etc=%d", sheets[0], len(extract.Items), extract.TotalSum, extract.TotalEtc)
	return extract, nil
}

// FetchAndParse downloads a workbook through the download proxy path and
// parses it. The HTTP timeout bounds the whole fetch.
func (p *Parser) FetchAndParse(ctx context.Context, fileURL string) (pricing.RawQuoteExtract, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return pricing.RawQuoteExtract{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[extract][parser] download failed url=%s err=%v", fileURL, err)
		return pricing.RawQuoteExtract{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[extract][parser] download bad status url=%s status=%d", fileURL, resp.StatusCode)
		return pricing.RawQuoteExtract{}, fmt.Errorf("%w: download returned status %d", ErrParse, resp.StatusCode)
	}

	return p.Parse(resp.Body)
}

func scanHeaderLabels(cells []string, extract *pricing.RawQuoteExtract) {
	for i := 0; i < len(cells)-1; i++ {
		label := strings.TrimRight(cells[i], ":")
		value := cells[i+1]
		if value == "" {
			continue
		}
		switch {
		case extract.CustomerName == "" && matchesLabel(label, nameLabels):
			extract.CustomerName = value
		case extract.CustomerPhone == "" && matchesLabel(label, phoneLabels):
			extract.CustomerPhone = value
		case extract.Address == "" && matchesLabel(label, addressLabels):
			extract.Address = value
		}
	}
}

// inferItemColumns recognizes the item table header row. Returns -1 columns
// until one is seen.
func inferItemColumns(cells []string) (nameCol, priceCol, etcCol int) {
	nameCol, priceCol, etcCol = -1, -1, -1
	for i, cell := range cells {
		switch {
		case cell == "품명" || cell == "품목" || cell == "항목":
			nameCol = i
		case cell == "금액" || cell == "가격" || cell == "단가":
			priceCol = i
		case cell == "구분" || cell == "비고":
			etcCol = i
		}
	}
	if nameCol < 0 || priceCol < 0 {
		return -1, -1, -1
	}
	return nameCol, priceCol, etcCol
}

func isTotalRow(name string) bool {
	return strings.Contains(name, "합계") || strings.Contains(name, "총계")
}

func isEtcItem(name, marker string) bool {
	if strings.Contains(marker, "기타") {
		return true
	}
	for _, m := range etcMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

func matchesLabel(cell string, labels []string) bool {
	for _, l := range labels {
		if strings.Contains(cell, l) {
			return true
		}
	}
	return false
}

// parseAmount reads a currency cell: "1,234,567", "1234567원", "₩1,234,567".
func parseAmount(cell string) (int64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '-' {
			return r
		}
		return -1
	}, cell)
	if cleaned == "" || cleaned == "-" {
		return 0, false
	}
	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func trimCells(row []string) []string {
	out := make([]string, 0, len(row))
	empty := true
	for _, c := range row {
		c = strings.TrimSpace(c)
		if c != "" {
			empty = false
		}
		out = append(out, c)
	}
	if empty {
		return nil
	}
	return out
}

func pickCell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
