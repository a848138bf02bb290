package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type StoreService struct {
	storeRepo ports.StoreRepo
	logger    logger.Logger
}

func NewStoreService(storeRepo ports.StoreRepo, logger logger.Logger) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		logger:    logger,
	}
}

// Create registers a store. The owner defaults to the actor; only an admin
// may create a store on behalf of someone else.
func (s *StoreService) Create(ctx context.Context, actor domain.Actor, input domain.CreateStoreInput) (*domain.Store, error) {
	if actor.Anonymous() {
		return nil, domain.ErrForbidden
	}
	if input.OwnerID == "" {
		input.OwnerID = actor.UserID
	}
	if input.OwnerID != actor.UserID && !actor.Admin {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	store := &domain.Store{
		ID:             uuid.New().String(),
		OwnerID:        input.OwnerID,
		Name:           input.Name,
		Description:    input.Description,
		Address:        input.Address,
		City:           input.City,
		Phone:          input.Phone,
		IsActive:       true,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	s.logger.Info("store created",
		logger.String("store_id", store.ID),
		logger.String("owner_id", store.OwnerID),
	)

	return store, nil
}

func (s *StoreService) Get(ctx context.Context, id string) (*domain.Store, error) {
	return s.storeRepo.GetByID(ctx, id)
}

func (s *StoreService) List(ctx context.Context) ([]*domain.Store, error) {
	return s.storeRepo.List(ctx)
}
