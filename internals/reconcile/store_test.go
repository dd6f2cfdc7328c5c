package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadroescolar_backend/internals/constants"
	"quadroescolar_backend/internals/localcache"
)

type note struct {
	NoteID    string `json:"note_id"`
	NoteOwner string `json:"note_owner"`
	NoteBody  string `json:"note_body"`
}

type fakeRemote struct {
	rows map[string]note

	failList   bool
	failFind   bool
	failUpsert bool
	failDelete bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{rows: make(map[string]note)}
}

func (f *fakeRemote) ListByOwner(ctx context.Context, ownerID string) ([]note, error) {
	if f.failList {
		return nil, errors.New("remoto fora do ar")
	}
	var out []note
	for _, r := range f.rows {
		if ownerID == constants.OwnerAll || r.NoteOwner == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRemote) FindByID(ctx context.Context, id, ownerID string) (*note, error) {
	if f.failFind {
		return nil, errors.New("remoto fora do ar")
	}
	r, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	if ownerID != constants.OwnerAll && r.NoteOwner != ownerID {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeRemote) Upsert(ctx context.Context, row *note) error {
	if f.failUpsert {
		return errors.New("remoto fora do ar")
	}
	f.rows[row.NoteID] = *row
	return nil
}

func (f *fakeRemote) Delete(ctx context.Context, id string) error {
	if f.failDelete {
		return errors.New("remoto fora do ar")
	}
	delete(f.rows, id)
	return nil
}

func newTestStore(t *testing.T, remote *fakeRemote, configured bool) *Store[note] {
	t.Helper()
	return &Store[note]{
		Entity:     "notes",
		Configured: func() bool { return configured },
		Remote:     remote,
		Cache:      localcache.New(t.TempDir()),
		ID:         func(n *note) string { return n.NoteID },
		SetID:      func(n *note, id string) { n.NoteID = id },
		Owner:      func(n *note) string { return n.NoteOwner },
	}
}

func TestSaveAssignsIDWhenEmpty(t *testing.T) {
	s := newTestStore(t, newFakeRemote(), false)
	n := &note{NoteOwner: "o1", NoteBody: "x"}

	require.NoError(t, s.Save(context.Background(), n, "o1"))
	assert.NotEmpty(t, n.NoteID)
}

func TestSaveAndGetAllLocalOnly(t *testing.T) {
	s := newTestStore(t, newFakeRemote(), false)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &note{NoteID: "a", NoteOwner: "o1", NoteBody: "um"}, "o1"))
	require.NoError(t, s.Save(ctx, &note{NoteID: "b", NoteOwner: "o1", NoteBody: "dois"}, "o1"))

	rows := s.GetAll(ctx, "o1")
	assert.Len(t, rows, 2)
}

func TestSaveLocalReplacesSameID(t *testing.T) {
	s := newTestStore(t, newFakeRemote(), false)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &note{NoteID: "a", NoteOwner: "o1", NoteBody: "velho"}, "o1"))
	require.NoError(t, s.Save(ctx, &note{NoteID: "a", NoteOwner: "o1", NoteBody: "novo"}, "o1"))

	rows := s.GetAll(ctx, "o1")
	require.Len(t, rows, 1)
	assert.Equal(t, "novo", rows[0].NoteBody)
}

func TestSaveRemoteSkipsCache(t *testing.T) {
	remote := newFakeRemote()
	s := newTestStore(t, remote, true)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &note{NoteID: "a", NoteOwner: "o1"}, "o1"))

	assert.Contains(t, remote.rows, "a")
	keys, err := s.Cache.Keys("notes__")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSaveFallsBackToCacheOnRemoteError(t *testing.T) {
	remote := newFakeRemote()
	remote.failUpsert = true
	s := newTestStore(t, remote, true)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &note{NoteID: "a", NoteOwner: "o1", NoteBody: "salvo"}, "o1"))

	// remoto lista vazio, mas a linha do cache aparece na mescla
	rows := s.GetAll(ctx, "o1")
	require.Len(t, rows, 1)
	assert.Equal(t, "salvo", rows[0].NoteBody)
}

func TestGetAllRemoteIsAuthoritative(t *testing.T) {
	remote := newFakeRemote()
	remote.rows["a"] = note{NoteID: "a", NoteOwner: "o1", NoteBody: "remoto"}
	s := newTestStore(t, remote, true)
	ctx := context.Background()

	// mesma linha desatualizada no cache + uma linha só local
	require.NoError(t, s.Cache.Set(localcache.Key("notes", "o1"),
		[]byte(`[{"note_id":"a","note_owner":"o1","note_body":"cache"},{"note_id":"b","note_owner":"o1","note_body":"so-local"}]`)))

	rows := s.GetAll(ctx, "o1")
	require.Len(t, rows, 2)

	byID := map[string]string{}
	for _, r := range rows {
		byID[r.NoteID] = r.NoteBody
	}
	assert.Equal(t, "remoto", byID["a"])
	assert.Equal(t, "so-local", byID["b"])
}

func TestGetAllDegradesToCacheWhenRemoteFails(t *testing.T) {
	remote := newFakeRemote()
	remote.failList = true
	s := newTestStore(t, remote, true)
	ctx := context.Background()

	require.NoError(t, s.Cache.Set(localcache.Key("notes", "o1"),
		[]byte(`[{"note_id":"a","note_owner":"o1"}]`)))

	rows := s.GetAll(ctx, "o1")
	assert.Len(t, rows, 1)
}

func TestGetAllOwnerAllUnionsCachePartitions(t *testing.T) {
	s := newTestStore(t, newFakeRemote(), false)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &note{NoteID: "a", NoteOwner: "o1"}, "o1"))
	require.NoError(t, s.Save(ctx, &note{NoteID: "b", NoteOwner: "o2"}, "o2"))

	rows := s.GetAll(ctx, constants.OwnerAll)
	assert.Len(t, rows, 2)
}

func TestSaveFallbackUsesRecordOwnerSlot(t *testing.T) {
	s := newTestStore(t, newFakeRemote(), false)
	ctx := context.Background()

	// save administrativo (chamador com o valor reservado) de um registro
	// de o1 precisa aparecer na leitura particionada de o1
	require.NoError(t, s.Save(ctx, &note{NoteID: "a", NoteOwner: "o1", NoteBody: "x"}, constants.OwnerAll))

	rows := s.GetAll(ctx, "o1")
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].NoteID)

	keys, err := s.Cache.Keys("notes__")
	require.NoError(t, err)
	assert.Equal(t, []string{"notes__o1"}, keys)
}

func TestFindByIDUnconfiguredReadsCache(t *testing.T) {
	s := newTestStore(t, newFakeRemote(), false)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &note{NoteID: "a", NoteOwner: "o1", NoteBody: "x"}, "o1"))

	got, err := s.FindByID(ctx, "a", "o1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "x", got.NoteBody)

	missing, err := s.FindByID(ctx, "zzz", "o1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindByIDScopedToOwner(t *testing.T) {
	remote := newFakeRemote()
	remote.rows["a"] = note{NoteID: "a", NoteOwner: "o1", NoteBody: "x"}
	s := newTestStore(t, remote, true)
	ctx := context.Background()

	// outra mantenedora não enxerga o registro nem conhecendo o id
	got, err := s.FindByID(ctx, "a", "o2")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = s.FindByID(ctx, "a", "o1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "x", got.NoteBody)

	got, err = s.FindByID(ctx, "a", constants.OwnerAll)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestFindByIDRemoteErrorPropagates(t *testing.T) {
	remote := newFakeRemote()
	remote.failFind = true
	s := newTestStore(t, remote, true)

	_, err := s.FindByID(context.Background(), "a", "o1")
	assert.Error(t, err)
}

func TestDeleteScrubsAllCachePartitions(t *testing.T) {
	s := newTestStore(t, newFakeRemote(), false)
	ctx := context.Background()

	// mesmo id presente em duas partições (registro migrado de mantenedora)
	require.NoError(t, s.Save(ctx, &note{NoteID: "a", NoteOwner: "o1"}, "o1"))
	require.NoError(t, s.Save(ctx, &note{NoteID: "a", NoteOwner: "o2"}, "o2"))
	require.NoError(t, s.Save(ctx, &note{NoteID: "b", NoteOwner: "o2"}, "o2"))

	require.NoError(t, s.Delete(ctx, "a"))

	assert.Empty(t, s.GetAll(ctx, "o1"))
	rows := s.GetAll(ctx, "o2")
	require.Len(t, rows, 1)
	assert.Equal(t, "b", rows[0].NoteID)
}

func TestDeleteRemoteFailureStillScrubsCache(t *testing.T) {
	remote := newFakeRemote()
	remote.failDelete = true
	s := newTestStore(t, remote, true)
	ctx := context.Background()

	require.NoError(t, s.Cache.Set(localcache.Key("notes", "o1"),
		[]byte(`[{"note_id":"a","note_owner":"o1"}]`)))

	require.NoError(t, s.Delete(ctx, "a"))

	keys, err := s.Cache.Keys("notes__")
	require.NoError(t, err)
	require.Len(t, keys, 1)
	raw, err := s.Cache.Get(keys[0])
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestConcurrentSavesKeepAllRows(t *testing.T) {
	s := newTestStore(t, newFakeRemote(), false)
	ctx := context.Background()

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			owner := "o1"
			if i%2 == 1 {
				owner = "o2"
			}
			err := s.Save(ctx, &note{
				NoteID:    fmt.Sprintf("n%02d", i),
				NoteOwner: owner,
				NoteBody:  fmt.Sprintf("corpo %d", i),
			}, owner)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.GetAll(ctx, "o1"), n/2)
	assert.Len(t, s.GetAll(ctx, "o2"), n/2)
	assert.Len(t, s.GetAll(ctx, constants.OwnerAll), n)
}
