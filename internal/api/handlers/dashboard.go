package handlers

import (
	"net/http"

	"github.com/niveshfolio/portfolio-backend/internal/api/response"
	"github.com/niveshfolio/portfolio-backend/internal/apperrors"
	"github.com/niveshfolio/portfolio-backend/internal/service"
)

// DashboardHandler handles HTTP requests for the dashboard endpoint.
type DashboardHandler struct {
	portfolioService *service.PortfolioService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependency.
func NewDashboardHandler(portfolioService *service.PortfolioService) *DashboardHandler {
	return &DashboardHandler{
		portfolioService: portfolioService,
	}
}

// Dashboard handles GET requests for the full dashboard report: valued
// holdings, portfolio summary with sector allocation, six-month comparative
// growth versus the Nifty 50 and Sensex, top performers, and the pairwise
// correlation matrix.
//
// Endpoint: GET /api/dashboard
// Response: 200 OK with DashboardReport
// Error: 500 Internal Server Error if holdings cannot be loaded or the
// portfolio data violates the analytics contract
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	report, err := h.portfolioService.GetDashboard(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetDashboard.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}
