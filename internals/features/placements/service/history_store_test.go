package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadroescolar_backend/internals/constants"
	phModel "quadroescolar_backend/internals/features/placements/model"
	"quadroescolar_backend/internals/localcache"
)

const testOwner = "66666666-6666-6666-6666-666666666666"

func TestListByEmployeeFallbackSortsByTimestamp(t *testing.T) {
	cache := localcache.New(t.TempDir())
	unconfigured := func() bool { return false }
	store := NewStore(nil, cache, unconfigured)
	lister := &Lister{DB: nil, Configured: unconfigured, Store: store}
	ctx := context.Background()

	employeeID := uuid.New()
	otherEmployee := uuid.New()
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	// gravadas fora de ordem de propósito
	for _, offset := range []int{2, 0, 1} {
		require.NoError(t, store.Save(ctx, &phModel.PlacementHistoryModel{
			PlacementHistoryID:         uuid.New(),
			PlacementHistoryEmployeeID: employeeID,
			PlacementHistoryTimestamp:  base.AddDate(0, 0, offset),
			PlacementHistoryReason:     "Transferência de unidade",
			PlacementHistoryOwnerID:    testOwner,
		}, testOwner))
	}
	require.NoError(t, store.Save(ctx, &phModel.PlacementHistoryModel{
		PlacementHistoryID:         uuid.New(),
		PlacementHistoryEmployeeID: otherEmployee,
		PlacementHistoryTimestamp:  base,
		PlacementHistoryReason:     "Transferência de unidade",
		PlacementHistoryOwnerID:    testOwner,
	}, testOwner))

	rows := lister.ListByEmployee(ctx, employeeID, testOwner)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].PlacementHistoryTimestamp.Before(rows[1].PlacementHistoryTimestamp))
	assert.True(t, rows[1].PlacementHistoryTimestamp.Before(rows[2].PlacementHistoryTimestamp))
	// sem o remoto os nomes das unidades ficam em branco
	assert.Nil(t, rows[0].PreviousSchoolName)
}

func TestListByEmployeeQueryScopesOwner(t *testing.T) {
	employeeID := uuid.New()

	q, args := listByEmployeeQuery(employeeID, testOwner)
	assert.Contains(t, q, "ph.placement_history_owner_id = ?")
	require.Len(t, args, 2)
	assert.Equal(t, employeeID, args[0])
	assert.Equal(t, testOwner, args[1])
	assert.True(t, strings.Contains(q, "ORDER BY ph.placement_history_timestamp ASC"))

	q, args = listByEmployeeQuery(employeeID, constants.OwnerAll)
	assert.NotContains(t, q, "placement_history_owner_id")
	assert.Len(t, args, 1)
}

func TestMergeEntriesAppendsCacheOnlyRows(t *testing.T) {
	employeeID := uuid.New()
	otherEmployee := uuid.New()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	shared := phModel.PlacementHistoryModel{
		PlacementHistoryID:         uuid.New(),
		PlacementHistoryEmployeeID: employeeID,
		PlacementHistoryTimestamp:  base,
		PlacementHistoryOwnerID:    testOwner,
	}
	cacheOnly := phModel.PlacementHistoryModel{
		PlacementHistoryID:         uuid.New(),
		PlacementHistoryEmployeeID: employeeID,
		PlacementHistoryTimestamp:  base.AddDate(0, 0, 1),
		PlacementHistoryOwnerID:    testOwner,
	}
	foreign := phModel.PlacementHistoryModel{
		PlacementHistoryID:         uuid.New(),
		PlacementHistoryEmployeeID: otherEmployee,
		PlacementHistoryTimestamp:  base,
		PlacementHistoryOwnerID:    testOwner,
	}

	remote := []HistoryEntry{{PlacementHistoryModel: shared}}
	cached := []phModel.PlacementHistoryModel{shared, cacheOnly, foreign}

	rows := mergeEntries(remote, cached, employeeID)
	require.Len(t, rows, 2)
	assert.Equal(t, shared.PlacementHistoryID, rows[0].PlacementHistoryID)
	assert.Equal(t, cacheOnly.PlacementHistoryID, rows[1].PlacementHistoryID)
}
