package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/models"

	"gorm.io/gorm"
)

type PaymentsDB struct {
	db *gorm.DB
}

func NewPaymentsDB(db *gorm.DB) *PaymentsDB {
	return &PaymentsDB{db: db}
}

func (p *PaymentsDB) wallet(tx *gorm.DB, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := tx.Where("user_id = ?", userID).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// SubtractFunds debits the wallet inside a transaction so a concurrent debit
// cannot overdraw it.
func (p *PaymentsDB) SubtractFunds(ctx context.Context, userID uint, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wallet, err := p.wallet(tx, userID)
		if err != nil {
			return err
		}
		if wallet.Amount < amount {
			return core.ErrInsufficientFunds
		}
		wallet.Amount -= amount
		return tx.Save(wallet).Error
	})
}

func (p *PaymentsDB) AddFunds(ctx context.Context, userID uint, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	var updated float64
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wallet, err := p.wallet(tx, userID)
		if err != nil {
			return err
		}
		wallet.Amount += amount
		updated = wallet.Amount
		return tx.Save(wallet).Error
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (p *PaymentsDB) GetUserWalletAmount(ctx context.Context, userID uint) (float64, error) {
	wallet, err := p.wallet(p.db.WithContext(ctx), userID)
	if err != nil {
		return 0, err
	}
	return wallet.Amount, nil
}
