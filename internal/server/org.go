package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spiten/spiten/internal/organization/domain"
	"go.uber.org/zap"
)

type createOrgRequest struct {
	OrganizationName string `json:"organization_name" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Password         string `json:"password" binding:"required"`
}

type updateOrgRequest struct {
	OrganizationName    string `json:"organization_name" binding:"required"`
	NewOrganizationName string `json:"new_organization_name"`
	Email               string `json:"email"`
	Password            string `json:"password"`
}

func (s *Server) CreateOrg(c *gin.Context) {
	var req createOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	org, err := s.orgsvc.Create(c.Request.Context(), domain.CreateOrganizationRequest{
		Name:     strings.TrimSpace(req.OrganizationName),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Organization created",
		"data": gin.H{
			"organization_name": org.Name,
			"email":             org.Email,
			"id":                org.ID.String(),
		},
	})
}

func (s *Server) GetOrg(c *gin.Context) {
	name := strings.TrimSpace(c.Query("organization_name"))
	if name == "" {
		AbortWithError(c, newValidationError("organization_name", "required", "organization_name is required"))
		return
	}

	org, err := s.orgsvc.Get(c.Request.Context(), name)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": org})
}

func (s *Server) ListOrgs(c *gin.Context) {
	orgs, err := s.orgsvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": orgs})
}

func (s *Server) UpdateOrg(c *gin.Context) {
	var req updateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	org, err := s.orgsvc.Update(c.Request.Context(), domain.UpdateOrganizationRequest{
		Name:     strings.TrimSpace(req.OrganizationName),
		NewName:  strings.TrimSpace(req.NewOrganizationName),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": org})
}

func (s *Server) DeleteOrg(c *gin.Context) {
	name := strings.TrimSpace(c.Query("organization_name"))
	if name == "" {
		AbortWithError(c, newValidationError("organization_name", "required", "organization_name is required"))
		return
	}

	if err := s.orgsvc.Delete(c.Request.Context(), name); err != nil {
		AbortWithError(c, err)
		return
	}

	if claims, ok := claimsFromContext(c); ok {
		s.log.Info("organization deleted",
			zap.String("organization", name),
			zap.String("admin_id", claims.AdminID))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Organization '" + name + "' deleted",
	})
}
