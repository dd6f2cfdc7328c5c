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
	aModel "quadroescolar_backend/internals/features/attendance/model"
	eModel "quadroescolar_backend/internals/features/employees/model"
	eService "quadroescolar_backend/internals/features/employees/service"
	phService "quadroescolar_backend/internals/features/placements/service"
	"quadroescolar_backend/internals/helpers/media"
	"quadroescolar_backend/internals/localcache"
	"quadroescolar_backend/internals/reconcile"
)

const testOwner = "22222222-2222-2222-2222-222222222222"

type fixture struct {
	machine   *StateMachine
	employees *reconcile.Store[eModel.EmployeeModel]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cache := localcache.New(t.TempDir())
	unconfigured := func() bool { return false }

	employees := eService.NewStore(nil, cache, unconfigured)
	history := phService.NewStore(nil, cache, unconfigured)
	occurrences := NewOccurrenceStore(nil, cache, unconfigured)
	tracker := eService.NewPlacementTracker(employees, history)

	machine := NewStateMachine(occurrences, employees, tracker, media.NewWithClient("", "", nil))
	machine.Now = func() time.Time { return time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC) }
	return &fixture{machine: machine, employees: employees}
}

func (f *fixture) addEmployee(t *testing.T, school *uuid.UUID) *eModel.EmployeeModel {
	t.Helper()
	emp := &eModel.EmployeeModel{
		EmployeeID:       uuid.New(),
		EmployeeFullName: "João Pereira",
		EmployeeSchoolID: school,
		EmployeeStatus:   eModel.StatusAtivo,
		EmployeeOwnerID:  testOwner,
	}
	require.NoError(t, f.employees.Save(context.Background(), emp, testOwner))
	return emp
}

func TestRegisterOccurrencePresente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	school := uuid.New()
	emp := f.addEmployee(t, &school)

	occ, err := f.machine.RegisterOccurrence(ctx, RegisterInput{
		EmployeeID: emp.EmployeeID,
		Kind:       aModel.KindPresente,
		OwnerID:    testOwner,
	})
	require.NoError(t, err)

	assert.Equal(t, aModel.KindPresente, occ.OccurrenceKind)
	assert.Equal(t, "2026-03-02", occ.OccurrenceDate.Format("2006-01-02"))
	require.NotNil(t, occ.OccurrenceSchoolID)
	assert.Equal(t, school, *occ.OccurrenceSchoolID)

	saved, err := f.employees.FindByID(ctx, emp.EmployeeID.String(), testOwner)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.EmployeePresenceConfirmedToday)
	require.NotNil(t, saved.EmployeeLastAttendanceDate)
	assert.Equal(t, "2026-03-02", saved.EmployeeLastAttendanceDate.Format("2006-01-02"))
}

func TestRegisterOccurrenceSameDayOverwrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.addEmployee(t, nil)

	first, err := f.machine.RegisterOccurrence(ctx, RegisterInput{
		EmployeeID: emp.EmployeeID,
		Kind:       aModel.KindPresente,
		OwnerID:    testOwner,
	})
	require.NoError(t, err)

	second, err := f.machine.RegisterOccurrence(ctx, RegisterInput{
		EmployeeID: emp.EmployeeID,
		Kind:       aModel.KindFaltaInjustificada,
		OwnerID:    testOwner,
	})
	require.NoError(t, err)

	// mesmo dia = mesma linha, sobrescrita
	assert.Equal(t, first.OccurrenceID, second.OccurrenceID)

	rows := f.machine.ListByDate(ctx, testOwner, f.machine.Now(), nil)
	require.Len(t, rows, 1)
	assert.Equal(t, aModel.KindFaltaInjustificada, rows[0].OccurrenceKind)

	saved, err := f.employees.FindByID(ctx, emp.EmployeeID.String(), testOwner)
	require.NoError(t, err)
	assert.False(t, saved.EmployeePresenceConfirmedToday)
}

func TestRegisterOccurrenceAtestadoForcesLicencaMedica(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.addEmployee(t, nil)

	requested := eModel.StatusAtivo
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	occ, err := f.machine.RegisterOccurrence(ctx, RegisterInput{
		EmployeeID:      emp.EmployeeID,
		Kind:            aModel.KindAtestado,
		ResultingStatus: &requested,
		Certificate:     []byte("atestado medico"),
		CertificateName: "atestado.txt",
		PeriodStart:     &start,
		PeriodEnd:       &end,
		OwnerID:         testOwner,
	})
	require.NoError(t, err)

	require.NotNil(t, occ.OccurrenceCertificateURL)
	assert.True(t, strings.HasPrefix(*occ.OccurrenceCertificateURL, "data:"))
	require.NotNil(t, occ.OccurrencePeriodStart)
	assert.Equal(t, "2026-03-02", occ.OccurrencePeriodStart.Format("2006-01-02"))

	saved, err := f.employees.FindByID(ctx, emp.EmployeeID.String(), testOwner)
	require.NoError(t, err)
	// o status pedido é ignorado quando há atestado
	assert.Equal(t, eModel.StatusLicencaMedica, saved.EmployeeStatus)
	assert.False(t, saved.EmployeePresenceConfirmedToday)
}

func TestRegisterOccurrenceResultingStatusApplied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.addEmployee(t, nil)

	requested := eModel.StatusFerias
	_, err := f.machine.RegisterOccurrence(ctx, RegisterInput{
		EmployeeID:      emp.EmployeeID,
		Kind:            aModel.KindFaltaInjustificada,
		ResultingStatus: &requested,
		OwnerID:         testOwner,
	})
	require.NoError(t, err)

	saved, err := f.employees.FindByID(ctx, emp.EmployeeID.String(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, eModel.StatusFerias, saved.EmployeeStatus)
}

func TestRegisterOccurrenceInvalidKind(t *testing.T) {
	f := newFixture(t)
	emp := f.addEmployee(t, nil)

	_, err := f.machine.RegisterOccurrence(context.Background(), RegisterInput{
		EmployeeID: emp.EmployeeID,
		Kind:       aModel.OccurrenceKind("meio_presente"),
		OwnerID:    testOwner,
	})
	assert.Error(t, err)
}

func TestRegisterOccurrenceUnknownEmployee(t *testing.T) {
	f := newFixture(t)

	_, err := f.machine.RegisterOccurrence(context.Background(), RegisterInput{
		EmployeeID: uuid.New(),
		Kind:       aModel.KindPresente,
		OwnerID:    testOwner,
	})
	assert.Error(t, err)
}

func TestRegisterOccurrenceOwnerAllResolvesToEmployeeOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.addEmployee(t, nil)

	occ, err := f.machine.RegisterOccurrence(ctx, RegisterInput{
		EmployeeID: emp.EmployeeID,
		Kind:       aModel.KindPresente,
		OwnerID:    constants.OwnerAll,
	})
	require.NoError(t, err)
	assert.Equal(t, testOwner, occ.OccurrenceOwnerID)
}

func TestListByDateFiltersBySchool(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	schoolA := uuid.New()
	schoolB := uuid.New()
	empA := f.addEmployee(t, &schoolA)
	empB := f.addEmployee(t, &schoolB)

	_, err := f.machine.RegisterOccurrence(ctx, RegisterInput{
		EmployeeID: empA.EmployeeID, Kind: aModel.KindPresente, OwnerID: testOwner,
	})
	require.NoError(t, err)
	_, err = f.machine.RegisterOccurrence(ctx, RegisterInput{
		EmployeeID: empB.EmployeeID, Kind: aModel.KindPresente, OwnerID: testOwner,
	})
	require.NoError(t, err)

	all := f.machine.ListByDate(ctx, testOwner, f.machine.Now(), nil)
	assert.Len(t, all, 2)

	onlyA := f.machine.ListByDate(ctx, testOwner, f.machine.Now(), &schoolA)
	require.Len(t, onlyA, 1)
	assert.Equal(t, empA.EmployeeID, onlyA[0].OccurrenceEmployeeID)

	other := f.machine.ListByDate(ctx, testOwner, f.machine.Now().AddDate(0, 0, 1), nil)
	assert.Empty(t, other)
}
