package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mexicoindia/membership-backend/internal/models"
	"github.com/mexicoindia/membership-backend/internal/store"
)

type AdminController struct {
	Store store.MembershipStore
}

// ListMemberships returns every application, newest first.
func (ac *AdminController) ListMemberships(c *gin.Context) {
	members, err := ac.Store.ListNewestFirst(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("membership list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not fetch submissions."})
		return
	}
	if members == nil {
		members = []models.Membership{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": members})
}
