package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cModel "quadroescolar_backend/internals/features/catalogs/model"
	"quadroescolar_backend/internals/localcache"
)

const testOwner = "44444444-4444-4444-4444-444444444444"

func TestSectorStoreLifecycleLocalOnly(t *testing.T) {
	store := NewSectorStore(nil, localcache.New(t.TempDir()), func() bool { return false })
	ctx := context.Background()

	m := &cModel.SectorModel{
		SectorID:      uuid.New(),
		SectorName:    "Pedagógico",
		SectorOwnerID: testOwner,
	}
	require.NoError(t, store.Save(ctx, m, testOwner))

	rows := store.GetAll(ctx, testOwner)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pedagógico", rows[0].SectorName)

	// renomear reaproveita o mesmo id
	m.SectorName = "Coordenação Pedagógica"
	require.NoError(t, store.Save(ctx, m, testOwner))
	rows = store.GetAll(ctx, testOwner)
	require.Len(t, rows, 1)
	assert.Equal(t, "Coordenação Pedagógica", rows[0].SectorName)

	require.NoError(t, store.Delete(ctx, m.SectorID.String()))
	assert.Empty(t, store.GetAll(ctx, testOwner))
}

func TestRoleStoreIsolatesOwners(t *testing.T) {
	store := NewRoleStore(nil, localcache.New(t.TempDir()), func() bool { return false })
	ctx := context.Background()
	otherOwner := "55555555-5555-5555-5555-555555555555"

	require.NoError(t, store.Save(ctx, &cModel.RoleModel{
		RoleID: uuid.New(), RoleName: "Professor", RoleOwnerID: testOwner,
	}, testOwner))
	require.NoError(t, store.Save(ctx, &cModel.RoleModel{
		RoleID: uuid.New(), RoleName: "Diretor", RoleOwnerID: otherOwner,
	}, otherOwner))

	rows := store.GetAll(ctx, testOwner)
	require.Len(t, rows, 1)
	assert.Equal(t, "Professor", rows[0].RoleName)
}
