package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mexicoindia/membership-backend/internal/mailer"
	"github.com/mexicoindia/membership-backend/internal/models"
	"github.com/mexicoindia/membership-backend/internal/store"
	"github.com/mexicoindia/membership-backend/internal/ws"
)

// Notifier is what the controllers need from the mail layer. The real
// implementation dispatches in the background; tests use a synchronous fake.
type Notifier interface {
	MembershipAccepted(m models.Membership)
	ContactReceived(msg mailer.ContactMessage)
}

type MembershipController struct {
	Store    store.MembershipStore
	Notifier Notifier
	Feed     *ws.FeedHub
}

type membershipRequest struct {
	SelectedPlan   string `json:"selectedPlan"`
	ContactName    string `json:"contactName" binding:"required"`
	ContactPhone   string `json:"contactPhone" binding:"required"`
	ContactEmail   string `json:"contactEmail" binding:"required,email"`
	CompanyName    string `json:"companyName"`
	ContactMessage string `json:"contactMessage"`
}

// Create accepts a membership application: validate, persist, then answer.
// Emails and the admin feed are notified after the response is written and
// never block or fail the request.
func (mc *MembershipController) Create(c *gin.Context) {
	var req membershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please fill all required fields."})
		return
	}

	m := models.Membership{
		Reference:    uuid.NewString(),
		SelectedPlan: orDefault(req.SelectedPlan, "Not Specified"),
		Name:         req.ContactName,
		Phone:        req.ContactPhone,
		Email:        req.ContactEmail,
		Company:      orDefault(req.CompanyName, "N/A"),
		Message:      orDefault(req.ContactMessage, "N/A"),
	}

	if err := mc.Store.Insert(c.Request.Context(), &m); err != nil {
		log.Error().Err(err).Msg("membership insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error. Please try again."})
		return
	}

	log.Info().Str("reference", m.Reference).Str("plan", m.SelectedPlan).Msg("membership application stored")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application submitted successfully! Check your email."})

	mc.Notifier.MembershipAccepted(m)
	mc.Feed.Broadcast(m)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
