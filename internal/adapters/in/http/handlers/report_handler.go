// internal/adapters/in/http/handlers/report_handler.go
package handlers

import (
	"log"
	"net/http"
	"strings"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	common "github.com/daniuniv/Efficient-Clothing/internal/domain/common"
)

// ReportHandler:
//
//	GET /manager/reports/sales?from=&to=&format=json|xlsx
//	GET /manager/reports/inventory?format=json|xlsx
type ReportHandler struct {
	UC *usecase.ReportUsecase
}

func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{UC: uc}
}

func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	segs := pathSegments(strings.TrimSuffix(r.URL.Path, "/"), "/manager/reports")
	if len(segs) != 1 {
		notFound(w)
		return
	}
	asXLSX := strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("format")), "xlsx")

	switch segs[0] {
	case "sales":
		q := r.URL.Query()
		from, err := parseTimeParam(q.Get("from"), false)
		if err != nil {
			writeDomainError(w, "report_handler", err)
			return
		}
		to, err := parseTimeParam(q.Get("to"), true)
		if err != nil {
			writeDomainError(w, "report_handler", err)
			return
		}
		rep, err := h.UC.Sales(r.Context(), s, common.TimeRange{From: from, To: to})
		if err != nil {
			writeDomainError(w, "report_handler", err)
			return
		}
		if asXLSX {
			h.sendXLSX(w, "sales-report.xlsx", func() ([]byte, error) { return SalesReportXLSX(rep) })
			return
		}
		writeJSON(w, http.StatusOK, rep)

	case "inventory":
		rep, err := h.UC.Inventory(r.Context(), s)
		if err != nil {
			writeDomainError(w, "report_handler", err)
			return
		}
		if asXLSX {
			h.sendXLSX(w, "inventory-report.xlsx", func() ([]byte, error) { return InventoryReportXLSX(rep) })
			return
		}
		writeJSON(w, http.StatusOK, rep)

	default:
		notFound(w)
	}
}

func (h *ReportHandler) sendXLSX(w http.ResponseWriter, filename string, render func() ([]byte, error)) {
	b, err := render()
	if err != nil {
		log.Printf("[report_handler] xlsx render failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to write Excel file")
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Type", xlsxContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
