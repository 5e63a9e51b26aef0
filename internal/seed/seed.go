package seed

import (
	"context"
	"errors"

	orgdomain "github.com/spiten/spiten/internal/organization/domain"
)

type demoOrg struct {
	Name     string
	Email    string
	Password string
}

var demoOrgs = []demoOrg{
	{Name: "acme-corp", Email: "admin@acme-corp.com", Password: "Demo@123"},
	{Name: "techstart-io", Email: "contact@techstart.io", Password: "Demo@123"},
	{Name: "globalsoft", Email: "info@globalsoft.com", Password: "Demo@123"},
	{Name: "innovate-labs", Email: "hello@innovate-labs.com", Password: "Demo@123"},
	{Name: "cloudnine-systems", Email: "support@cloudnine.systems", Password: "Demo@123"},
}

// Result reports which demo organizations were created and which already
// existed.
type Result struct {
	Created []string `json:"created"`
	Skipped []string `json:"skipped"`
}

// DemoData creates the demo organizations, skipping names that already exist.
func DemoData(ctx context.Context, orgSvc orgdomain.Service) (Result, error) {
	result := Result{Created: []string{}, Skipped: []string{}}
	for _, org := range demoOrgs {
		_, err := orgSvc.Create(ctx, orgdomain.CreateOrganizationRequest{
			Name:     org.Name,
			Email:    org.Email,
			Password: org.Password,
		})
		if err != nil {
			if errors.Is(err, orgdomain.ErrOrganizationExists) {
				result.Skipped = append(result.Skipped, org.Name)
				continue
			}
			return result, err
		}
		result.Created = append(result.Created, org.Name)
	}
	return result, nil
}
