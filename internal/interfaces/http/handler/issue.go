package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stockline/backend/internal/application/issuing"
)

// IssueHandler handles vendor issue and in-house issue endpoints
type IssueHandler struct {
	BaseHandler
	issueService *issuing.IssueService
}

// NewIssueHandler creates a new issue handler
func NewIssueHandler(issueService *issuing.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

// NextVendorIssueNo handles GET /api/v1/vendor-issues/next-issue-no
func (h *IssueHandler) NextVendorIssueNo(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	no, err := h.issueService.NextVendorIssueNo(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"issue_no": no})
}

// NextDCNo handles GET /api/v1/vendor-issues/next-dc-no
func (h *IssueHandler) NextDCNo(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	no, err := h.issueService.NextDCNo(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"dc_no": no})
}

// CreateVendorIssue handles POST /api/v1/vendor-issues
func (h *IssueHandler) CreateVendorIssue(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req issuing.CreateVendorIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	issue, err := h.issueService.CreateVendorIssue(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, issue)
}

// ListVendorIssues handles GET /api/v1/vendor-issues
func (h *IssueHandler) ListVendorIssues(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	if poNo := c.Query("po_no"); poNo != "" {
		list, err := h.issueService.ListVendorIssuesByPO(c.Request.Context(), userID, poNo)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, list)
		return
	}

	list, err := h.issueService.ListVendorIssues(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, list)
}

// GetVendorIssue handles GET /api/v1/vendor-issues/:id
func (h *IssueHandler) GetVendorIssue(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	issue, err := h.issueService.GetVendorIssue(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, issue)
}

// AssignVendorBatch handles POST /api/v1/vendor-issues/:id/vendor-batch,
// stamping the batch number the vendor reports back on their paperwork.
func (h *IssueHandler) AssignVendorBatch(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req issuing.AssignVendorBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	issue, err := h.issueService.AssignVendorBatch(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, issue)
}

// DeleteVendorIssue handles DELETE /api/v1/vendor-issues/:id
func (h *IssueHandler) DeleteVendorIssue(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.issueService.DeleteVendorIssue(c.Request.Context(), userID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// NextReqNo handles GET /api/v1/inhouse-issues/next-req-no
func (h *IssueHandler) NextReqNo(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	no, err := h.issueService.NextReqNo(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"req_no": no})
}

// NextInHouseIssueNo handles GET /api/v1/inhouse-issues/next-issue-no
func (h *IssueHandler) NextInHouseIssueNo(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	no, err := h.issueService.NextInHouseIssueNo(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"issue_no": no})
}

// CreateInHouseIssue handles POST /api/v1/inhouse-issues
func (h *IssueHandler) CreateInHouseIssue(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req issuing.CreateInHouseIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	issue, err := h.issueService.CreateInHouseIssue(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, issue)
}

// ListInHouseIssues handles GET /api/v1/inhouse-issues
func (h *IssueHandler) ListInHouseIssues(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	list, err := h.issueService.ListInHouseIssues(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, list)
}

// GetInHouseIssue handles GET /api/v1/inhouse-issues/:id
func (h *IssueHandler) GetInHouseIssue(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	issue, err := h.issueService.GetInHouseIssue(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, issue)
}

// UpdateInHouseIssue handles PUT /api/v1/inhouse-issues/:id
func (h *IssueHandler) UpdateInHouseIssue(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req issuing.UpdateInHouseIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	issue, err := h.issueService.UpdateInHouseIssue(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, issue)
}

// DeleteInHouseIssue handles DELETE /api/v1/inhouse-issues/:id
func (h *IssueHandler) DeleteInHouseIssue(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.issueService.DeleteInHouseIssue(c.Request.Context(), userID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
