package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spiten/spiten/internal/organization/domain"
)

// organizationPayload accepts both field-naming conventions used by clients
// of the /organizations surface and is normalized into a typed request
// before it reaches the store.
type organizationPayload struct {
	Name                string `json:"name"`
	OrganizationName    string `json:"organization_name"`
	AdminEmail          string `json:"admin_email"`
	Email               string `json:"email"`
	Password            string `json:"password"`
	NewOrganizationName string `json:"new_organization_name"`
}

func (p organizationPayload) name() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return strings.TrimSpace(p.OrganizationName)
}

func (p organizationPayload) email() string {
	if email := strings.TrimSpace(p.AdminEmail); email != "" {
		return email
	}
	return strings.TrimSpace(p.Email)
}

// organizationView is the normalized response shape of this surface.
type organizationView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	AdminEmail     string `json:"admin_email"`
	CollectionName string `json:"collection_name"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

func toOrganizationView(org *domain.Organization) organizationView {
	return organizationView{
		ID:             org.ID.String(),
		Name:           org.Name,
		AdminEmail:     org.Email,
		CollectionName: org.CollectionName,
		CreatedAt:      org.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      org.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *Server) ListOrganizations(c *gin.Context) {
	orgs, err := s.orgsvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	views := make([]organizationView, 0, len(orgs))
	for i := range orgs {
		views = append(views, toOrganizationView(&orgs[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"organizations": views},
	})
}

func (s *Server) CreateOrganization(c *gin.Context) {
	var payload organizationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	name := payload.name()
	email := payload.email()
	if name == "" || email == "" || payload.Password == "" {
		AbortWithError(c, newValidationError("request", "required",
			"name, admin_email/email, and password are required"))
		return
	}

	org, err := s.orgsvc.Create(c.Request.Context(), domain.CreateOrganizationRequest{
		Name:     name,
		Email:    email,
		Password: payload.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Organization created",
		"data": gin.H{
			"name":        org.Name,
			"admin_email": org.Email,
			"id":          org.ID.String(),
		},
	})
}

func (s *Server) GetOrganization(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	org, err := s.orgsvc.Get(c.Request.Context(), name)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"organization": toOrganizationView(org)},
	})
}

func (s *Server) UpdateOrganization(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	var payload organizationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	newName := payload.name()
	if newName == "" {
		newName = strings.TrimSpace(payload.NewOrganizationName)
	}

	org, err := s.orgsvc.Update(c.Request.Context(), domain.UpdateOrganizationRequest{
		Name:     name,
		NewName:  newName,
		Email:    payload.email(),
		Password: payload.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"organization": toOrganizationView(org)},
	})
}

func (s *Server) DeleteOrganization(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	if err := s.orgsvc.Delete(c.Request.Context(), name); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Organization '" + name + "' deleted",
	})
}
