package gormrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
)

func TestUnitOfWork_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	uow := NewUnitOfWork(db)
	repo := NewProfessionalRepository(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, &entities.Professional{Nome: "Dra. Eva"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	professionals, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, professionals)
}

func TestUnitOfWork_CommitAndNested(t *testing.T) {
	db := newTestDB(t)
	uow := NewUnitOfWork(db)
	repo := NewProfessionalRepository(db)
	ctx := context.Background()

	err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return uow.WithTransaction(txCtx, func(inner context.Context) error {
			return repo.Create(inner, &entities.Professional{Nome: "Dra. Eva"})
		})
	})
	require.NoError(t, err)

	professionals, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, professionals, 1)
}
