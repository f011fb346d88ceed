package mysql

import (
	"testing"

	"Hive_Community/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB 用 sqlmock 顶替 MySQL 连接。显式事务仍然产生 Begin/Commit
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gmysql.New(gmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestCommunityRepository_NameTaken(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := &CommunityRepository{DB: gdb}

	mock.ExpectQuery("SELECT (.+) FROM `communities`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "lifenautjoe"))

	taken, err := repo.NameTaken("lifenautjoe")
	require.NoError(t, err)
	assert.True(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepository_NameFree(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := &CommunityRepository{DB: gdb}

	mock.ExpectQuery("SELECT (.+) FROM `communities`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	taken, err := repo.NameTaken("lifenautjoe")
	require.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepository_Create(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := &CommunityRepository{DB: gdb}

	// 一个事务写社区、分类关联、创建者成员和 outbox
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `communities`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO `community_categories`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `community_categories`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO `community_members`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `community_outbox`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	community := &model.Community{
		Name:      "lifenautjoe",
		Title:     "Nautical life",
		Type:      model.CommunityTypePublic,
		Color:     "#2d53a0",
		CreatorID: 3,
	}
	created, err := repo.Create(community, []uint64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, uint64(11), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepository_CreateRollsBackOnError(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := &CommunityRepository{DB: gdb}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `communities`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := repo.Create(&model.Community{Name: "dup"}, nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepository_ListJoined(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := &CommunityRepository{DB: gdb}

	mock.ExpectQuery("SELECT (.+) FROM `communities` JOIN community_members").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "alpha").
			AddRow(2, "beta").
			AddRow(3, "gamma"))

	list, err := repo.ListJoined(7)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "alpha", list[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepository_ListFavorites(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := &CommunityRepository{DB: gdb}

	mock.ExpectQuery("SELECT (.+) FROM `communities` JOIN community_favorites").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(2, "beta"))

	list, err := repo.ListFavorites(7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "beta", list[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
