package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type TableService struct {
	tableRepo   ports.TableRepo
	bookingRepo ports.BookingRepo
	gate        *OwnershipGate
	logger      logger.Logger
}

func NewTableService(
	tableRepo ports.TableRepo,
	bookingRepo ports.BookingRepo,
	gate *OwnershipGate,
	logger logger.Logger,
) *TableService {
	return &TableService{
		tableRepo:   tableRepo,
		bookingRepo: bookingRepo,
		gate:        gate,
		logger:      logger,
	}
}

func (s *TableService) Create(ctx context.Context, actor domain.Actor, input domain.CreateTableInput) (*domain.Table, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.gate.authorize(ctx, actor, input.StoreID); err != nil {
		return nil, err
	}

	table := &domain.Table{
		StoreID:        input.StoreID,
		Name:           input.Name,
		Capacity:       input.Capacity,
		Indoor:         input.Indoor,
		SmokingAllowed: input.SmokingAllowed,
		Status:         domain.TableStatusAvailable,
		Description:    input.Description,
		IsActive:       true,
	}
	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}

	s.logger.Info("table created",
		logger.Int64("table_id", table.ID),
		logger.String("store_id", table.StoreID),
	)

	return table, nil
}

func (s *TableService) Get(ctx context.Context, id int64) (*domain.Table, error) {
	return s.tableRepo.GetByID(ctx, id)
}

func (s *TableService) ListByStore(ctx context.Context, storeID string) ([]*domain.Table, error) {
	return s.tableRepo.ListByStore(ctx, storeID)
}

func (s *TableService) Update(ctx context.Context, actor domain.Actor, id int64, input domain.UpdateTableInput) (*domain.Table, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	table, err := s.managedTable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	table.Name = input.Name
	table.Capacity = input.Capacity
	table.Indoor = input.Indoor
	table.SmokingAllowed = input.SmokingAllowed
	table.Description = input.Description
	table.IsActive = input.IsActive

	if err = s.tableRepo.Update(ctx, table); err != nil {
		return nil, fmt.Errorf("update table: %w", err)
	}

	return table, nil
}

// SetStatus overrides the advisory status, e.g. when guests are seated.
func (s *TableService) SetStatus(ctx context.Context, actor domain.Actor, id int64, status domain.TableStatus) (*domain.Table, error) {
	if !status.Valid() {
		var v domain.ValidationError
		v.Add("status", "status must be one of available, reserved, occupied")
		return nil, v.OrNil()
	}

	table, err := s.managedTable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err = s.tableRepo.SetStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("set table status: %w", err)
	}
	table.Status = status

	return table, nil
}

// Delete removes a table together with its bookings in three steps:
// deactivate, delete bookings, delete the table. If a step after the first
// fails the table stays inactive and the error wraps ErrTableDeletePartial.
func (s *TableService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if _, err := s.managedTable(ctx, actor, id); err != nil {
		return err
	}

	if err := s.tableRepo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate table: %w", err)
	}

	removed, err := s.bookingRepo.DeleteByTable(ctx, id)
	if err != nil {
		s.logger.Error("table delete stopped after deactivation",
			logger.Int64("table_id", id),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: table deactivated, bookings kept: %v", domain.ErrTableDeletePartial, err)
	}

	if err = s.tableRepo.Delete(ctx, id); err != nil {
		s.logger.Error("table delete stopped after removing bookings",
			logger.Int64("table_id", id),
			logger.Int64("bookings_removed", removed),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: table deactivated, %d bookings removed, table row kept: %v",
			domain.ErrTableDeletePartial, removed, err)
	}

	s.logger.Info("table deleted",
		logger.Int64("table_id", id),
		logger.Int64("bookings_removed", removed),
	)

	return nil
}

func (s *TableService) managedTable(ctx context.Context, actor domain.Actor, id int64) (*domain.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get table: %w", err)
	}

	if err = s.gate.authorize(ctx, actor, table.StoreID); err != nil {
		return nil, err
	}

	return table, nil
}
