package handler

import (
	"net/http"

	"shopadmin/internal/dto"
	"shopadmin/internal/repository"
	"shopadmin/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// Create godoc
// @Summary      Record a sale
// @Description  Inserts the sale exactly as submitted. total_amount is not recomputed and stock is not decremented.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateSaleRequest true "Sale to record"
// @Success      200 {object} dto.SaleResponse
// @Router       /api/v1/sales [post]
func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List sales
// @Description  Returns a page of sales filtered by optional inclusive date range and product id.
// @Tags         sales
// @Produce      json
// @Param        skip       query int    false "Offset (default 0)"
// @Param        limit      query int    false "Page size (default 100)"
// @Param        start_date query string false "Inclusive lower bound (RFC 3339 or YYYY-MM-DD)"
// @Param        end_date   query string false "Inclusive upper bound"
// @Param        product_id query int    false "Filter by product"
// @Success      200 {array} dto.SaleResponse
// @Router       /api/v1/sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	var q dto.SaleFilter
	if !bindQueryAndValidate(c, &q) {
		return
	}
	start, ok := parseOptionalTime(c, "start_date", q.StartDate)
	if !ok {
		return
	}
	end, ok := parseOptionalTime(c, "end_date", q.EndDate)
	if !ok {
		return
	}

	resp, err := h.svc.List(c.Request.Context(), repository.SaleFilter{
		ProductID: q.ProductID,
		StartDate: start,
		EndDate:   end,
		Skip:      q.Skip,
		Limit:     q.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Revenue godoc
// @Summary      Revenue analysis
// @Description  Sums revenue and counts sales over the window, defaulting to the last 30 days. A window with no sales yields zeros, never a division error.
// @Tags         sales
// @Produce      json
// @Param        period     query string false "Label echoed back (default \"daily\")"
// @Param        start_date query string false "Inclusive lower bound"
// @Param        end_date   query string false "Inclusive upper bound"
// @Success      200 {object} dto.RevenueAnalysisResponse
// @Router       /api/v1/sales/revenue [get]
func (h *SalesHandler) Revenue(c *gin.Context) {
	var q dto.RevenueQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	start, ok := parseOptionalTime(c, "start_date", q.StartDate)
	if !ok {
		return
	}
	end, ok := parseOptionalTime(c, "end_date", q.EndDate)
	if !ok {
		return
	}

	resp, err := h.svc.RevenueAnalysis(c.Request.Context(), q.Period, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Compare godoc
// @Summary      Compare revenue between two periods
// @Description  Runs two independent revenue analyses and reports the percentage change, defined as 0 when period 1 earned nothing.
// @Tags         sales
// @Produce      json
// @Param        period1_start query string true "Period 1 lower bound"
// @Param        period1_end   query string true "Period 1 upper bound"
// @Param        period2_start query string true "Period 2 lower bound"
// @Param        period2_end   query string true "Period 2 upper bound"
// @Success      200 {object} dto.RevenueComparisonResponse
// @Router       /api/v1/sales/compare [get]
func (h *SalesHandler) Compare(c *gin.Context) {
	var q dto.CompareQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	p1Start, ok := parseRequiredTime(c, "period1_start", q.Period1Start)
	if !ok {
		return
	}
	p1End, ok := parseRequiredTime(c, "period1_end", q.Period1End)
	if !ok {
		return
	}
	p2Start, ok := parseRequiredTime(c, "period2_start", q.Period2Start)
	if !ok {
		return
	}
	p2End, ok := parseRequiredTime(c, "period2_end", q.Period2End)
	if !ok {
		return
	}

	resp, err := h.svc.CompareRevenue(c.Request.Context(), p1Start, p1End, p2Start, p2End)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ByProduct GET /api/v1/sales/by-product/:product_id — unpaged.
func (h *SalesHandler) ByProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}
	start, ok := parseOptionalTime(c, "start_date", c.Query("start_date"))
	if !ok {
		return
	}
	end, ok := parseOptionalTime(c, "end_date", c.Query("end_date"))
	if !ok {
		return
	}

	resp, err := h.svc.ListByProduct(c.Request.Context(), id, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
