package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/complaint-api/internal/service"
	appErrors "github.com/campusdesk/complaint-api/pkg/errors"
	"github.com/campusdesk/complaint-api/pkg/response"
)

// ComplaintHandler wires the complaint lifecycle endpoints.
type ComplaintHandler struct {
	service *service.ComplaintService
}

// NewComplaintHandler creates a new handler.
func NewComplaintHandler(svc *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: svc}
}

// Submit godoc
// @Summary Submit a complaint
// @Description Classify and persist a new complaint
// @Tags Complaints
// @Accept json
// @Produce json
// @Param payload body service.SubmitComplaintRequest true "Complaint"
// @Success 200 {object} service.SubmitComplaintResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /classify-complaint [post]
func (h *ComplaintHandler) Submit(c *gin.Context) {
	var req service.SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Missing complaint text or student ID"))
		return
	}

	res, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, res)
}

// ListForStudent godoc
// @Summary List own complaints
// @Description Complaints submitted by one student, newest first
// @Tags Complaints
// @Produce json
// @Param student_id path string true "Student identifier"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /student/complaints/{student_id} [get]
func (h *ComplaintHandler) ListForStudent(c *gin.Context) {
	complaints, err := h.service.ListForStudent(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"complaints": complaints})
}

// ListAll godoc
// @Summary List all complaints
// @Description Every complaint, newest first
// @Tags Complaints
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/complaints [get]
func (h *ComplaintHandler) ListAll(c *gin.Context) {
	complaints, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"complaints": complaints})
}

// Resolve godoc
// @Summary Resolve a complaint
// @Description Transition a complaint from pending to resolved
// @Tags Complaints
// @Produce json
// @Param id path int true "Complaint identifier"
// @Success 200 {object} service.ResolveComplaintResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/complaints/{id}/resolve [put]
func (h *ComplaintHandler) Resolve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid complaint id"))
		return
	}

	res, err := h.service.Resolve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, res)
}

// Export godoc
// @Summary Export complaints
// @Description Download the complaint table as CSV or PDF
// @Tags Complaints
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/complaints/export [get]
func (h *ComplaintHandler) Export(c *gin.Context) {
	name, contentType, data, err := h.service.Export(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, contentType, data)
}
