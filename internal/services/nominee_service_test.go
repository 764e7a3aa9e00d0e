package services_test

import (
	"context"
	"testing"

	"github.com/Daniyar457/Legacy_Vault/internal/models"
	"github.com/Daniyar457/Legacy_Vault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func userPrincipal(id primitive.ObjectID) models.Principal {
	return models.Principal{Kind: models.PrincipalUser, UserID: id}
}

var adminPrincipal = models.Principal{Kind: models.PrincipalAdministrator}

func TestCreateNominee(t *testing.T) {
	ctx := context.Background()
	owner := &models.User{Email: "owner@example.com", Mobile: "+77010001122", Status: models.StatusActive}
	users := newMemUserStore(owner)
	nominees := newMemNomineeStore()
	svc := services.NewNomineeService(nominees, users)

	created, err := svc.CreateNominee(ctx, userPrincipal(owner.ID), &models.Nominee{
		FullName:     "Marat Bek",
		Relationship: "brother",
		Mobile:       "+77017778899",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, created.UserID)
	assert.False(t, created.Verified)
}

func TestCreateNomineeForMissingUser(t *testing.T) {
	ctx := context.Background()
	nominees := newMemNomineeStore()
	svc := services.NewNomineeService(nominees, newMemUserStore())

	_, err := svc.CreateNominee(ctx, userPrincipal(primitive.NewObjectID()), &models.Nominee{
		FullName: "Marat Bek",
		Mobile:   "+77017778899",
	})
	require.Error(t, err)
	assert.Equal(t, 404, services.HTTPStatus(err))
	assert.Zero(t, nominees.count(), "no nominee may be written for a missing owner")
}

func TestNomineeOwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	owner := &models.User{Email: "owner@example.com", Mobile: "+77010001122", Status: models.StatusActive}
	other := &models.User{Email: "other@example.com", Mobile: "+77013334455", Status: models.StatusActive}
	users := newMemUserStore(owner, other)
	nominees := newMemNomineeStore()
	svc := services.NewNomineeService(nominees, users)

	created, err := svc.CreateNominee(ctx, userPrincipal(owner.ID), &models.Nominee{
		FullName: "Marat Bek",
		Mobile:   "+77017778899",
	})
	require.NoError(t, err)

	_, err = svc.GetNominee(ctx, userPrincipal(other.ID), created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, services.HTTPStatus(err))

	err = svc.DeleteNominee(ctx, userPrincipal(other.ID), created.ID)
	require.Error(t, err)
	assert.Equal(t, 1, nominees.count())
}

func TestAdministratorOwnsNoNominees(t *testing.T) {
	ctx := context.Background()
	svc := services.NewNomineeService(newMemNomineeStore(), newMemUserStore())

	list, err := svc.GetNominees(ctx, adminPrincipal)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.CreateNominee(ctx, adminPrincipal, &models.Nominee{
		FullName: "Marat Bek",
		Mobile:   "+77017778899",
	})
	require.Error(t, err)
	assert.Equal(t, 403, services.HTTPStatus(err))
}

func TestUpdateNomineeProtectedFields(t *testing.T) {
	ctx := context.Background()
	owner := &models.User{Email: "owner@example.com", Mobile: "+77010001122", Status: models.StatusActive}
	users := newMemUserStore(owner)
	nominees := newMemNomineeStore()
	svc := services.NewNomineeService(nominees, users)

	created, err := svc.CreateNominee(ctx, userPrincipal(owner.ID), &models.Nominee{
		FullName: "Marat Bek",
		Mobile:   "+77017778899",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateNominee(ctx, userPrincipal(owner.ID), created.ID, map[string]interface{}{
		"full_name": "Marat Bekov",
		"verified":  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Marat Bekov", updated.FullName)
	assert.False(t, updated.Verified, "verification is not user-writable")
}
