package api

import (
	"net/http"
	"strconv"

	reqdto "lease-market/internal/handler/dto/request"
	resdto "lease-market/internal/handler/dto/response"
	"lease-market/internal/handler/httperr"
	"lease-market/internal/pkg/errs"
	"lease-market/internal/usecase"
	"lease-market/internal/usecase/commands"
	"lease-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeaseHandler struct {
	cmds commands.LeaseCommands
	q    queries.LeaseQueries
}

func NewLeaseHandler(cmds commands.LeaseCommands, q queries.LeaseQueries) *LeaseHandler {
	return &LeaseHandler{cmds: cmds, q: q}
}

// @Summary Create lease
// @Description Lease a resource to a requester for the hours covered by [time_from, time_till]
// @Tags leases
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLeaseRequest true "Lease request"
// @Success 201 {object} resdto.ContractResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} resdto.ErrorsResponse
// @Failure 500 {object} httperr.Response
// @Router /api/leases [post]
func (h *LeaseHandler) Create(c *gin.Context) {
	var req reqdto.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateLease(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, usecase.MsgProcessingFailed, nil)
		return
	}

	if !result.Response.Succeeded() {
		c.JSON(http.StatusUnprocessableEntity, resdto.ErrorsResponse{Errors: result.Response.Errors()})
		return
	}

	view, err := h.q.GetContract(c.Request.Context(), result.ContractID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load contract", nil)
		return
	}
	h.respondContract(c, http.StatusCreated, view)
}

// @Summary Get lease
// @Description Get a lease contract by ID
// @Tags leases
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} resdto.ContractResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/leases/{id} [get]
func (h *LeaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetContract(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrContractNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load contract", nil)
		return
	}
	h.respondContract(c, http.StatusOK, view)
}

// @Summary List resource leases
// @Description List contracts of a resource whose dates touch [date_from, date_till]
// @Tags leases
// @Produce json
// @Param id path int true "Resource ID"
// @Param date_from query string true "yyyy-mm-dd"
// @Param date_till query string true "yyyy-mm-dd"
// @Success 200 {array} resdto.ContractResponse
// @Failure 400 {object} httperr.Response
// @Router /api/resources/{id}/leases [get]
func (h *LeaseHandler) ListByResource(c *gin.Context) {
	resourceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	var query reqdto.ListResourceLeasesQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query", nil)
		return
	}

	views, err := h.q.ListResourceContracts(c.Request.Context(), resourceID, query.DateFrom, query.DateTill)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidDateRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list contracts", nil)
		return
	}

	res, err := resdto.FromContractViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render contracts", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *LeaseHandler) respondContract(c *gin.Context, status int, view *queries.ContractView) {
	res, err := resdto.FromContractView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render contract", nil)
		return
	}
	if status == http.StatusCreated {
		c.Header("Location", "/api/leases/"+res.ID.String())
	}
	c.JSON(status, res)
}
