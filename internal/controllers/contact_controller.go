package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mexicoindia/membership-backend/internal/mailer"
)

type ContactController struct {
	Notifier Notifier
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// Create handles the contact form. Nothing is persisted; the admin email is
// dispatched after the response and its failure is only logged.
func (cc *ContactController) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please fill all required fields."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully."})

	cc.Notifier.ContactReceived(mailer.ContactMessage{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
}
