package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "giftsafer/internal/handler/dto/request"
	resdto "giftsafer/internal/handler/dto/response"
	"giftsafer/internal/usecase/commands"
	"giftsafer/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authUseCase     commands.AuthCommands
	checkLogQueries queries.CheckLogQueries
	usedCodeQueries queries.UsedCodeQueries
}

func NewAdminHandler(
	authUseCase commands.AuthCommands,
	checkLogQueries queries.CheckLogQueries,
	usedCodeQueries queries.UsedCodeQueries,
) *AdminHandler {
	return &AdminHandler{
		authUseCase:     authUseCase,
		checkLogQueries: checkLogQueries,
		usedCodeQueries: usedCodeQueries,
	}
}

// @Summary Operator login
// @Description Exchange the operator password for a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Login request"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid credentials",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AdminLoginResponse{
		Token: result.Token,
		Role:  result.Role,
	})
}

// @Summary List check logs
// @Description Page through the audit log, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param cursor query string false "Keyset cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.CheckLogListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/logs [get]
func (h *AdminHandler) GetCheckLogs(c *gin.Context) {
	filters := queries.CheckLogFilters{}
	if status := c.Query("status"); status != "" {
		filters.Status = &status
	}

	cursor := cursorFromQuery(c)
	limit := limitFromQuery(c)

	logs, next, err := h.checkLogQueries.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
		case errors.Is(err, queries.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	total, err := h.checkLogQueries.Count(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := resdto.CheckLogListResponse{
		Logs:  logs,
		Total: total,
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List used codes
// @Description Page through the consumption ledger, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Keyset cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.UsedCodeListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/used-codes [get]
func (h *AdminHandler) GetUsedCodes(c *gin.Context) {
	cursor := cursorFromQuery(c)
	limit := limitFromQuery(c)

	codes, next, err := h.usedCodeQueries.List(c.Request.Context(), cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	total, err := h.usedCodeQueries.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := resdto.UsedCodeListResponse{
		UsedCodes: codes,
		Total:     total,
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

func cursorFromQuery(c *gin.Context) *queries.Cursor {
	if after := c.Query("cursor"); after != "" {
		return &queries.Cursor{After: after}
	}
	return nil
}

func limitFromQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}
