package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/bizdirectory-golang/internal/contact"
	"github.com/01moynul/bizdirectory-golang/internal/directory"
	"github.com/01moynul/bizdirectory-golang/internal/format"
	"github.com/01moynul/bizdirectory-golang/internal/metrics"
	"github.com/01moynul/bizdirectory-golang/internal/models"
)

// SubmitContact handles POST /v1/contact
// The recipient is the member behind the posted category/member route, never
// an address supplied by the client.
func (h *Handlers) SubmitContact(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. --- Bind Input ---
	var input models.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Metrics.RecordEvent(metrics.ActionContact, metrics.OutcomeInvalid)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Resolve Recipient ---
	res := h.Directory.ResolveMember(ctx, input.Category, input.Member)
	if !res.Found() {
		h.Metrics.RecordEvent(metrics.ActionContact, metrics.OutcomeInvalid)
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}
	member := res.Member

	// 3. --- Store & Notify ---
	conf, err := h.Contact.Submit(ctx, contact.Submission{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		Message:        input.Message,
		RecipientName:  member.BusinessName(),
		RecipientEmail: models.Deref(member.Email),
		Category:       res.Category.Name,
		BusinessURL:    h.BaseURL + directory.MemberPath(res.Category, *member),
		BusinessName:   format.MemberSlug(member.Firstname, member.Lastname),
	})
	switch {
	case errors.Is(err, contact.ErrStoreFailed):
		h.Metrics.RecordEvent(metrics.ActionContact, metrics.OutcomeStoreFailed)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
		return
	case errors.Is(err, contact.ErrEmailFailed):
		h.Metrics.RecordEvent(metrics.ActionContact, metrics.OutcomeEmailFailed)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
		return
	case err != nil:
		h.Logger.Error("Unexpected contact failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	h.Metrics.RecordEvent(metrics.ActionContact, metrics.OutcomeSuccess)
	c.JSON(http.StatusOK, gin.H{
		"message":      "Message sent successfully",
		"confirmation": conf,
		"redirect":     "/thank-you",
	})
}

// SubmitLead handles POST /v1/leads ("List Your Business")
func (h *Handlers) SubmitLead(c *gin.Context) {
	var input models.LeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Metrics.RecordEvent(metrics.ActionLead, metrics.OutcomeInvalid)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Contact.SubmitLead(c.Request.Context(), contact.Lead{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		BusinessType: input.BusinessType,
		Message:      input.Message,
	})
	if err != nil {
		h.Metrics.RecordEvent(metrics.ActionLead, metrics.OutcomeStoreFailed)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request. Please try again."})
		return
	}

	h.Metrics.RecordEvent(metrics.ActionLead, metrics.OutcomeSuccess)
	c.JSON(http.StatusCreated, gin.H{"message": "Request submitted. We will be in touch soon."})
}
