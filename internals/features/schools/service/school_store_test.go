package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sModel "quadroescolar_backend/internals/features/schools/model"
	"quadroescolar_backend/internals/localcache"
)

const testOwner = "33333333-3333-3333-3333-333333333333"

func TestEnsureAccessCodesFillsBlanksOnly(t *testing.T) {
	m := &sModel.SchoolModel{SchoolManagerCode: "AAAA1111"}
	EnsureAccessCodes(m)

	assert.Equal(t, "AAAA1111", m.SchoolManagerCode)
	assert.Len(t, m.SchoolAccessCode, 8)
}

func TestRegenerateAccessCodesReplacesBoth(t *testing.T) {
	m := &sModel.SchoolModel{
		SchoolManagerCode: "AAAA1111",
		SchoolAccessCode:  "BBBB2222",
	}
	RegenerateAccessCodes(m)

	assert.NotEqual(t, "AAAA1111", m.SchoolManagerCode)
	assert.NotEqual(t, "BBBB2222", m.SchoolAccessCode)
	assert.Len(t, m.SchoolManagerCode, 8)
	assert.Len(t, m.SchoolAccessCode, 8)
}

func TestSchoolStorePersistsLocally(t *testing.T) {
	store := NewStore(nil, localcache.New(t.TempDir()), func() bool { return false })
	ctx := context.Background()

	m := &sModel.SchoolModel{
		SchoolName:    "EMEF Monteiro Lobato",
		SchoolOwnerID: testOwner,
	}
	EnsureAccessCodes(m)
	require.NoError(t, store.Save(ctx, m, testOwner))

	rows := store.GetAll(ctx, testOwner)
	require.Len(t, rows, 1)
	assert.Equal(t, "EMEF Monteiro Lobato", rows[0].SchoolName)
	assert.NotEmpty(t, rows[0].SchoolManagerCode)
	assert.NotEmpty(t, rows[0].SchoolAccessCode)
}
