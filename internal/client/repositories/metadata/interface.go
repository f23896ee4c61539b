package metadata

import (
	"context"

	"github.com/dmitrijs2005/zkkeeper/internal/client/models"
)

// ActiveProfileKey names the profile used when a command gives none.
const ActiveProfileKey = "active_profile"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// GetProfile returns common.ErrorNotFound for an unknown name.
	GetProfile(ctx context.Context, name string) (*models.Profile, error)
	SaveProfile(ctx context.Context, p *models.Profile) error
	DeleteProfile(ctx context.Context, name string) error
	ListProfiles(ctx context.Context) ([]*models.Profile, error)
}
