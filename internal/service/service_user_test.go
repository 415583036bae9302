package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/mock"
	"github.com/MKhiriev/go-natours/internal/store"
	"github.com/MKhiriev/go-natours/internal/validators"
	"github.com/MKhiriev/go-natours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()

	repo := mock.NewMockUserRepository(gomock.NewController(t))
	return NewUserService(repo, validators.NewStructValidator(), logger.Nop()), repo
}

func TestUpdateMe_KeepsOnlyNameAndEmail(t *testing.T) {
	svc, repo := newTestUserService(t)

	name := "Laura Wilson"
	role := models.RoleAdmin
	photo := "hacked.jpg"

	repo.EXPECT().UpdateUser(gomock.Any(), int64(3), models.UserUpdate{Name: &name}).
		Return(models.User{ID: 3, Name: name, Role: models.RoleUser}, nil)

	user, err := svc.UpdateMe(context.Background(), 3, models.UserUpdate{Name: &name, Role: &role, Photo: &photo})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestUpdateMe_NothingToUpdate(t *testing.T) {
	svc, _ := newTestUserService(t)

	role := models.RoleAdmin
	_, err := svc.UpdateMe(context.Background(), 3, models.UserUpdate{Role: &role})
	assert.ErrorIs(t, err, store.ErrNothingToUpdate)
}

func TestUpdateUser_InvalidEmail(t *testing.T) {
	svc, _ := newTestUserService(t)

	email := "not-an-email"
	_, err := svc.UpdateUser(context.Background(), 3, models.UserUpdate{Email: &email})
	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestUpdateUser_InvalidRole(t *testing.T) {
	svc, _ := newTestUserService(t)

	role := models.Role("superuser")
	_, err := svc.UpdateUser(context.Background(), 3, models.UserUpdate{Role: &role})
	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestDeleteMe_Deactivates(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().DeactivateUser(gomock.Any(), int64(3)).Return(nil)

	assert.NoError(t, svc.DeleteMe(context.Background(), 3))
}

func TestDeleteMe_AlreadyGone(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().DeactivateUser(gomock.Any(), int64(3)).Return(store.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteMe(context.Background(), 3), store.ErrNotFound)
}
