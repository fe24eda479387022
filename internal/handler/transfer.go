package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/apierror"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportsHandler receives spreadsheet uploads, one collection per request.
type ImportsHandler struct{ svc service.ImportService }

func NewImportsHandler(svc service.ImportService) *ImportsHandler {
	return &ImportsHandler{svc: svc}
}

// Run expects a multipart form with the workbook under the "file" field.
func (h *ImportsHandler) Run(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el archivo a importar"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer f.Close()

	report, err := h.svc.Run(c.Request.Context(), c.Param("target"), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportsHandler renders collections and the monthly report as downloads.
type ExportsHandler struct{ svc service.ExportService }

func NewExportsHandler(svc service.ExportService) *ExportsHandler {
	return &ExportsHandler{svc: svc}
}

func (h *ExportsHandler) Collection(c *gin.Context) {
	data, name, err := h.svc.Collection(c.Request.Context(), c.Param("target"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// reportMonth reads the ?month=YYYY-MM query, defaulting to the current month.
func reportMonth(c *gin.Context) (time.Time, bool) {
	raw := c.Query("month")
	if raw == "" {
		return time.Now(), true
	}
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Mes invalido, use el formato AAAA-MM"))
		return time.Time{}, false
	}
	return month, true
}

func (h *ExportsHandler) MonthlyReport(c *gin.Context) {
	month, ok := reportMonth(c)
	if !ok {
		return
	}
	data, err := h.svc.MonthlyReport(c.Request.Context(), month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reporte-`+month.Format("2006-01")+`.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *ExportsHandler) MonthlyReportPDF(c *gin.Context) {
	month, ok := reportMonth(c)
	if !ok {
		return
	}
	data, err := h.svc.MonthlyReportPDF(c.Request.Context(), month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el PDF"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reporte-`+month.Format("2006-01")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
