package users

import (
	"context"
	"testing"

	"github.com/agrisense-io/agrisense-backend/pkg/db/models"
	"github.com/agrisense-io/agrisense-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}))
	return conn
}

func TestCreateAndFindByEmail(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Name:         "Farmer John",
		Email:        "farmer_john@example.com",
		PasswordHash: "$argon2id$...",
		Role:         enums.UserRoleFarmer,
	})
	require.NoError(t, err)
	require.NotEqual(t, "", created.ID.String())

	found, err := repo.FindByEmail(ctx, "farmer_john@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Farmer John", found.Name)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, found.Email, byID.Email)
}

func TestFindByEmailMissing(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestExistsByEmail(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	exists, err := repo.ExistsByEmail(ctx, "jane@research.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Create(ctx, CreateUserDTO{
		Name:         "Jane",
		Email:        "jane@research.com",
		PasswordHash: "$argon2id$...",
		Role:         enums.UserRoleResearcher,
	})
	require.NoError(t, err)

	exists, err = repo.ExistsByEmail(ctx, "jane@research.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateDefaultsRoleToFarmer(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	created, err := repo.Create(context.Background(), CreateUserDTO{
		Name:         "Unroled",
		Email:        "unroled@example.com",
		PasswordHash: "$argon2id$...",
	})
	require.NoError(t, err)
	assert.Equal(t, enums.UserRoleFarmer, created.Role)
}

func TestUserDTOOmitsPasswordHash(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	created, err := repo.Create(context.Background(), CreateUserDTO{
		Name:         "Jane",
		Email:        "jane@research.com",
		PasswordHash: "$argon2id$...",
		Role:         enums.UserRoleResearcher,
	})
	require.NoError(t, err)

	dto := FromModel(created)
	require.NotNil(t, dto)
	assert.Equal(t, created.Email, dto.Email)
	assert.Equal(t, enums.UserRoleResearcher, dto.Role)
}
