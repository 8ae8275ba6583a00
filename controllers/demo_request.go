package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/labax/labax-server/models"
	"github.com/labax/labax-server/repository"
	"github.com/labax/labax-server/service"
	"github.com/labax/labax-server/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// DemoRequestController handles the demo-request endpoints.
type DemoRequestController struct {
	store    repository.DemoRequestStore
	notifier *service.Notifier
}

// NewDemoRequestController wires the controller. notifier may be nil when
// email is not configured.
func NewDemoRequestController(store repository.DemoRequestStore, notifier *service.Notifier) *DemoRequestController {
	return &DemoRequestController{store: store, notifier: notifier}
}

// Submit handles POST /api/demo/request.
func (ctl *DemoRequestController) Submit(c *gin.Context) {
	var input models.SubmitDemoRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, "Invalid request body", http.StatusBadRequest)
		return
	}

	input.Normalize()
	if errs := utils.ValidateDemoRequest(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	now := time.Now()
	request := &models.DemoRequest{
		FullName:           input.FullName,
		Email:              input.Email,
		Phone:              input.Phone,
		JobTitle:           input.JobTitle,
		OrganizationName:   input.OrganizationName,
		IndustryType:       models.IndustryType(input.IndustryType),
		OrganizationSize:   models.OrganizationSize(input.OrganizationSize),
		Country:            input.Country,
		InterestedProducts: input.InterestedProducts,
		PreferredDate:      input.PreferredDateValue(),
		PreferredTime:      models.PreferredTime(input.PreferredTime),
		Comments:           input.Comments,
		SubmittedAt:        now,
		Status:             models.StatusPending,
		IPAddress:          c.ClientIP(),
		UserAgent:          c.Request.UserAgent(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	id, err := ctl.store.Insert(c.Request.Context(), request)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"email": request.Email}, "failed to persist demo request")
		utils.ErrorResponse(c, "Failed to submit demo request. Please try again later.", http.StatusInternalServerError)
		return
	}
	request.ID = id

	utils.LogInfo(map[string]interface{}{
		"name":         request.FullName,
		"email":        request.Email,
		"organization": request.OrganizationName,
	}, "new demo request received")

	// Persistence already succeeded; email failures must not downgrade
	// the response.
	ctl.notifier.NotifySubmission(request)

	utils.SuccessResponse(c, models.SubmissionReceipt{
		ID:          id.Hex(),
		SubmittedAt: request.SubmittedAt.Format(time.RFC3339),
	}, "Demo request submitted successfully", http.StatusCreated)
}

// List handles GET /api/demo/requests.
func (ctl *DemoRequestController) List(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), defaultPage)
	limit := parsePositiveInt(c.Query("limit"), defaultLimit)

	requests, total, err := ctl.store.List(c.Request.Context(), page, limit)
	if err != nil {
		utils.LogError(err, nil, "failed to fetch demo requests")
		utils.ErrorResponse(c, "Failed to fetch demo requests", http.StatusInternalServerError)
		return
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    requests,
		"pagination": models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}

// Get handles GET /api/demo/requests/:id.
func (ctl *DemoRequestController) Get(c *gin.Context) {
	request, err := ctl.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Error(utils.CreateNotFoundError("Demo request"))
			return
		}
		utils.LogError(err, map[string]interface{}{"id": c.Param("id")}, "failed to fetch demo request")
		utils.ErrorResponse(c, "Failed to fetch demo request", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(c, request, "")
}

// UpdateStatus handles PATCH /api/demo/requests/:id/status.
func (ctl *DemoRequestController) UpdateStatus(c *gin.Context) {
	var input models.StatusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, "Invalid status", http.StatusBadRequest)
		return
	}

	if !models.IsValidStatus(input.Status) {
		c.Error(utils.CreateBadRequestError("Invalid status"))
		return
	}

	request, err := ctl.store.UpdateStatus(c.Request.Context(), c.Param("id"), models.RequestStatus(input.Status))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Error(utils.CreateNotFoundError("Demo request"))
			return
		}
		utils.LogError(err, map[string]interface{}{"id": c.Param("id")}, "failed to update status")
		utils.ErrorResponse(c, "Failed to update status", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(c, request, "Status updated successfully")
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
