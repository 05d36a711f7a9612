package providers

import (
	"context"
	"errors"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/models"

	"gorm.io/gorm"
)

type AccountsDB struct {
	db *gorm.DB
}

func NewAccountsDB(db *gorm.DB) *AccountsDB {
	return &AccountsDB{db: db}
}

func (a *AccountsDB) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := a.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser patches only the supplied profile fields, mirroring the
// accounts service's partial update semantics.
func (a *AccountsDB) UpdateUser(ctx context.Context, id uint, info core.ProfileInput) (*models.User, error) {
	user, err := a.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if info.Name != nil {
		user.Name = *info.Name
	}
	if info.ProfileDescription != nil {
		user.ProfileDescription = *info.ProfileDescription
	}
	if info.ProfilePicture != nil {
		user.ProfilePicture = *info.ProfilePicture
	}

	if err := a.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
