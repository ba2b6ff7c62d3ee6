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

type fakeDemoRepo struct {
	created []*models.DemoRequest
}

func (f *fakeDemoRepo) Create(_ context.Context, d *models.DemoRequest) (int64, error) {
	f.created = append(f.created, d)
	return int64(len(f.created)), nil
}

func TestRequestDemo(t *testing.T) {
	repo := &fakeDemoRepo{}
	notifier := &fakeNotifier{}
	svc := NewDemoService(repo, notifier, nil)

	id, err := svc.RequestDemo(context.Background(), dtos.DemoRequestRequest{
		Name:   "Meera",
		Email:  "meera@example.com",
		Phone:  "+14155552671",
		Course: "Go Basics",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "Go Basics", repo.created[0].Course)
	assert.Equal(t, []string{"meera@example.com"}, notifier.acks)
	assert.Equal(t, []string{"Demo Request"}, notifier.intern)
}

func TestRequestDemoRejectsBadPhone(t *testing.T) {
	repo := &fakeDemoRepo{}
	svc := NewDemoService(repo, &fakeNotifier{}, nil)

	_, err := svc.RequestDemo(context.Background(), dtos.DemoRequestRequest{
		Name:   "Meera",
		Email:  "meera@example.com",
		Phone:  "12",
		Course: "Go Basics",
	})
	require.ErrorIs(t, err, utils.ErrInvalidPhone)
	assert.Empty(t, repo.created)
}
