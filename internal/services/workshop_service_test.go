package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divi1127/BackendDeepF/internal/dtos"
	"github.com/divi1127/BackendDeepF/internal/models"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

type fakeRegistrationRepo struct {
	created []*models.Registration
}

func (f *fakeRegistrationRepo) Create(_ context.Context, reg *models.Registration) (int64, error) {
	f.created = append(f.created, reg)
	return int64(len(f.created)), nil
}

type fakeWorkshopRepo struct {
	workshops []*models.Workshop
}

func (f *fakeWorkshopRepo) ListAll(_ context.Context) ([]*models.Workshop, error) {
	return f.workshops, nil
}

func TestRegisterStoresWorkshopTitle(t *testing.T) {
	regs := &fakeRegistrationRepo{}
	notifier := &fakeNotifier{}
	svc := NewWorkshopService(&fakeWorkshopRepo{}, regs, notifier, nil)

	id, err := svc.Register(context.Background(), dtos.RegisterRequest{
		Name:          "Ravi",
		Email:         "ravi@example.com",
		Phone:         "+14155552671",
		CurrentStatus: "student",
		Workshop:      "System Design Bootcamp",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	require.Len(t, regs.created, 1)
	assert.Equal(t, "System Design Bootcamp", regs.created[0].WorkshopTitle)
	assert.Equal(t, "student", regs.created[0].CurrentStatus)
	assert.Equal(t, []string{"Workshop Registration"}, notifier.intern)
}

func TestRegisterRejectsBadPhone(t *testing.T) {
	regs := &fakeRegistrationRepo{}
	svc := NewWorkshopService(&fakeWorkshopRepo{}, regs, &fakeNotifier{}, nil)

	_, err := svc.Register(context.Background(), dtos.RegisterRequest{
		Name:          "Ravi",
		Email:         "ravi@example.com",
		Phone:         "abc",
		CurrentStatus: "student",
		Workshop:      "System Design Bootcamp",
	})
	require.ErrorIs(t, err, utils.ErrInvalidPhone)
	assert.Empty(t, regs.created)
}

func TestListWorkshops(t *testing.T) {
	svc := NewWorkshopService(&fakeWorkshopRepo{workshops: []*models.Workshop{
		{ID: 1, Title: "System Design Bootcamp"},
	}}, &fakeRegistrationRepo{}, &fakeNotifier{}, nil)

	out, err := svc.ListWorkshops(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "System Design Bootcamp", out[0].Title)
}
