package store

import (
	"context"
	"errors"

	"github.com/JosuePG/pokemon-trader/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a conditional write finds the record no
	// longer in the expected state.
	ErrConflict = errors.New("state conflict")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	TopByTradeCount(ctx context.Context, limit int) ([]models.User, error)
}

type TradeRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Trade, error)
	Create(ctx context.Context, trade *models.Trade) error
	ListForUser(ctx context.Context, userID uint) ([]models.Trade, error)
	// Settle flips the trade to accepted, locks both participants and hands
	// their current rows to apply, then persists everything in one
	// transaction. The status flip is conditional on the trade still being
	// pending; ErrConflict is returned when a concurrent transition won the
	// race, ErrNotFound when a participant no longer exists. Reading the
	// users inside the transaction boundary keeps concurrent settlements
	// that share a participant from overwriting each other.
	Settle(ctx context.Context, trade *models.Trade, apply func(requester, responder *models.User) error) error
	// MarkRejected flips the trade to rejected under the same pending-only
	// condition.
	MarkRejected(ctx context.Context, trade *models.Trade) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *GormUserRepository) TopByTradeCount(ctx context.Context, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Select("id", "username", "trade_count").
		Order("trade_count DESC, id ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

type GormTradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) *GormTradeRepository {
	return &GormTradeRepository{db: db}
}

func (r *GormTradeRepository) FindByID(ctx context.Context, id uint) (*models.Trade, error) {
	var trade models.Trade
	if err := r.db.WithContext(ctx).First(&trade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &trade, nil
}

func (r *GormTradeRepository) Create(ctx context.Context, trade *models.Trade) error {
	return r.db.WithContext(ctx).Create(trade).Error
}

func (r *GormTradeRepository) ListForUser(ctx context.Context, userID uint) ([]models.Trade, error) {
	var trades []models.Trade
	err := r.db.WithContext(ctx).
		Where("requester_id = ? OR responder_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&trades).Error
	return trades, err
}

func (r *GormTradeRepository) Settle(ctx context.Context, trade *models.Trade, apply func(requester, responder *models.User) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Trade{}).
			Where("id = ? AND status = ?", trade.ID, models.TradeStatusPending).
			Update("status", models.TradeStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConflict
		}

		// Lock both participants in id order so two settlements sharing a
		// user cannot deadlock.
		var participants []models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", []uint{trade.RequesterID, trade.ResponderID}).
			Order("id").
			Find(&participants).Error; err != nil {
			return err
		}
		byID := make(map[uint]*models.User, len(participants))
		for i := range participants {
			byID[participants[i].ID] = &participants[i]
		}
		requester, ok := byID[trade.RequesterID]
		if !ok {
			return ErrNotFound
		}
		responder, ok := byID[trade.ResponderID]
		if !ok {
			return ErrNotFound
		}

		if err := apply(requester, responder); err != nil {
			return err
		}
		if err := tx.Save(requester).Error; err != nil {
			return err
		}
		return tx.Save(responder).Error
	})
}

func (r *GormTradeRepository) MarkRejected(ctx context.Context, trade *models.Trade) error {
	res := r.db.WithContext(ctx).Model(&models.Trade{}).
		Where("id = ? AND status = ?", trade.ID, models.TradeStatusPending).
		Update("status", models.TradeStatusRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

type GormNotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}
