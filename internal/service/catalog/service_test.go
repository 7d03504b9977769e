package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type fakeServices struct {
	items      []*domain.Service
	activeOnly bool
	lastUpdate domain.ServiceUpdate
	err        error
}

func (f *fakeServices) List(_ context.Context, activeOnly bool) ([]*domain.Service, error) {
	f.activeOnly = activeOnly
	return f.items, f.err
}

func (f *fakeServices) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	cp := *s
	cp.ID = "svc-new"
	return &cp, nil
}

func (f *fakeServices) Update(_ context.Context, id string, upd domain.ServiceUpdate) (*domain.Service, error) {
	f.lastUpdate = upd
	for _, s := range f.items {
		if s.ID == id {
			if upd.NamePublic != nil {
				s.NamePublic = *upd.NamePublic
			}
			if upd.DurationMin != nil {
				s.DurationMin = *upd.DurationMin
			}
			if upd.IsActive != nil {
				s.IsActive = *upd.IsActive
			}
			return s, nil
		}
	}
	return nil, serviceRepo.ErrServiceNotFound
}

type fakeStaff struct {
	items []*domain.Staff
}

func (f *fakeStaff) List(context.Context, bool) ([]*domain.Staff, error) { return f.items, nil }

func (f *fakeStaff) Create(_ context.Context, s *domain.Staff) (*domain.Staff, error) {
	cp := *s
	cp.ID = "staff-new"
	return &cp, nil
}

func (f *fakeStaff) Update(_ context.Context, id string, upd domain.StaffUpdate) (*domain.Staff, error) {
	for _, s := range f.items {
		if s.ID == id {
			if upd.Name != nil {
				s.Name = *upd.Name
			}
			if upd.IsActive != nil {
				s.IsActive = *upd.IsActive
			}
			return s, nil
		}
	}
	return nil, staffRepo.ErrStaffNotFound
}

func newService() (*Service, *fakeServices, *fakeStaff) {
	services := &fakeServices{items: []*domain.Service{
		{ID: "s1", NamePublic: "Standard", DurationMin: 30, IsActive: true},
	}}
	staff := &fakeStaff{items: []*domain.Staff{{ID: "anna", Name: "Anna", IsActive: true}}}
	return NewService(services, staff, logger.NewNop()), services, staff
}

func TestCreateService(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.CreateService(context.Background(), &models.CreateServiceRequest{NamePublic: "  Lång  ", DurationMin: 60})
	require.NoError(t, err)
	assert.Equal(t, "svc-new", resp.ID)
	assert.Equal(t, "Lång", resp.NamePublic)
	assert.True(t, resp.IsActive)

	resp, err = svc.CreateService(context.Background(), &models.CreateServiceRequest{NamePublic: "Snabb", DurationMin: 15, IsActive: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestCreateService_Validation(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.CreateService(context.Background(), &models.CreateServiceRequest{NamePublic: " ", DurationMin: 30})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = svc.CreateService(context.Background(), &models.CreateServiceRequest{NamePublic: "Standard", DurationMin: 45})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestUpdateService(t *testing.T) {
	svc, services, _ := newService()

	resp, err := svc.UpdateService(context.Background(), "s1", &models.UpdateServiceRequest{IsActive: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.Nil(t, services.lastUpdate.NamePublic)

	_, err = svc.UpdateService(context.Background(), "s1", &models.UpdateServiceRequest{DurationMin: ptr.Ptr(20)})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = svc.UpdateService(context.Background(), "missing", &models.UpdateServiceRequest{IsActive: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestListServices(t *testing.T) {
	svc, services, _ := newService()

	resp, err := svc.ListServices(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, resp.Services, 1)
	assert.True(t, services.activeOnly)

	services.err = errors.New("db down")
	_, err = svc.ListServices(context.Background(), false)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestStaff(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.CreateStaff(context.Background(), &models.CreateStaffRequest{Name: "Erik"})
	require.NoError(t, err)
	assert.Equal(t, "staff-new", created.ID)

	updated, err := svc.UpdateStaff(context.Background(), "anna", &models.UpdateStaffRequest{Name: ptr.Ptr("Anna K")})
	require.NoError(t, err)
	assert.Equal(t, "Anna K", updated.Name)

	_, err = svc.UpdateStaff(context.Background(), "missing", &models.UpdateStaffRequest{IsActive: ptr.Ptr(false)})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = svc.CreateStaff(context.Background(), &models.CreateStaffRequest{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidName)

	list, err := svc.ListStaff(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, list.Staff, 1)
}
