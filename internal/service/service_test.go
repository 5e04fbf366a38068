package service_test

import (
	"os"
	"strconv"
	"testing"
	"time"

	"cms_backend/internal/model"
	"cms_backend/internal/repository"
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"cms_backend/pkg/database"
	"cms_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func newPollService(t *testing.T) (*service.PollService, *gorm.DB) {
	db := newTestDB(t)
	return service.NewPollService(repository.NewQuizRepository(db), repository.NewResponseRepository(db)), db
}

func seedQuiz(t *testing.T, db *gorm.DB) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{
		Name:   "uzaleznienia",
		NameEn: "addictions",
		Questions: []model.QuizQuestion{
			{
				Question:   "Pytanie 1",
				QuestionEn: "Question 1",
				Answers: []model.QuizAnswerOption{
					{Answer: "Tak", AnswerEn: "Yes"},
					{Answer: "Nie", AnswerEn: "No"},
				},
			},
			{
				Question:   "Pytanie 2",
				QuestionEn: "Question 2",
				Answers: []model.QuizAnswerOption{
					{Answer: "Często", AnswerEn: "Often"},
					{Answer: "Rzadko", AnswerEn: "Rarely"},
				},
			},
		},
	}
	require.NoError(t, db.Create(quiz).Error)
	return quiz
}

func TestPollSubmitEmpty(t *testing.T) {
	polls, _ := newPollService(t)
	err := polls.Submit(map[string]string{})
	assert.ErrorIs(t, err, util.ErrEmptySubmission)
}

func TestPollSubmitMalformed(t *testing.T) {
	polls, db := newPollService(t)
	quiz := seedQuiz(t, db)
	q1 := quiz.Questions[0]

	err := polls.Submit(map[string]string{"abc": "1"})
	assert.ErrorIs(t, err, util.ErrMalformedSubmission)

	err = polls.Submit(map[string]string{"1": "xyz"})
	assert.ErrorIs(t, err, util.ErrMalformedSubmission)

	// Unknown ids survive parsing but fail the foreign keys; the whole
	// batch must roll back.
	err = polls.Submit(map[string]string{
		formatID(q1.ID): formatID(q1.Answers[0].ID),
		formatID(99999): formatID(q1.Answers[1].ID),
	})
	assert.ErrorIs(t, err, util.ErrMalformedSubmission)

	var count int64
	db.Model(&model.QuizUserAnswer{}).Count(&count)
	assert.Zero(t, count)
}

func TestPollSubmitAndTally(t *testing.T) {
	polls, db := newPollService(t)
	quiz := seedQuiz(t, db)
	q1, q2 := quiz.Questions[0], quiz.Questions[1]

	require.NoError(t, polls.Submit(map[string]string{
		formatID(q1.ID): formatID(q1.Answers[0].ID),
		formatID(q2.ID): formatID(q2.Answers[0].ID),
	}))
	require.NoError(t, polls.Submit(map[string]string{
		formatID(q1.ID): formatID(q1.Answers[0].ID),
		formatID(q2.ID): formatID(q2.Answers[1].ID),
	}))

	full, err := polls.Resolve("uzaleznienia")
	require.NoError(t, err)

	tallies, err := polls.Tally(full)
	require.NoError(t, err)

	matrix := service.CountMatrix(tallies)
	assert.Equal(t, [][]int64{{2, 0}, {1, 1}}, matrix)
}

func TestPollResolveUnknown(t *testing.T) {
	polls, _ := newPollService(t)
	_, err := polls.Resolve("missing")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestUserNicknameProbing(t *testing.T) {
	db := newTestDB(t)
	users := service.NewUserService(repository.NewUserRepository(db))

	first, err := users.Provision("alice", "alice@example.com", model.PermissionAdmin)
	require.NoError(t, err)
	assert.Equal(t, "alice", first.Nickname)

	second, err := users.Provision("alice", "alice2@example.com", model.PermissionNone)
	require.NoError(t, err)
	assert.Equal(t, "alice2", second.Nickname)

	third, err := users.Provision("alice", "alice3@example.com", model.PermissionNone)
	require.NoError(t, err)
	assert.Equal(t, "alice3", third.Nickname)
}

func TestUserUpdateNickname(t *testing.T) {
	db := newTestDB(t)
	users := service.NewUserService(repository.NewUserRepository(db))

	alice, err := users.Provision("alice", "alice@example.com", model.PermissionAdmin)
	require.NoError(t, err)
	_, err = users.Provision("bob", "bob@example.com", model.PermissionNone)
	require.NoError(t, err)

	// Renaming to the current nickname is a trivial success.
	require.NoError(t, users.UpdateNickname(alice, "alice"))

	err = users.UpdateNickname(alice, "bob")
	var vErr *util.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "nickname")

	require.NoError(t, users.UpdateNickname(alice, "carol"))
	renamed, err := users.GetByNickname("carol")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, renamed.ID)
}

func TestAuthLoginByEmail(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	auth := service.NewAuthService(userRepo)

	require.NoError(t, userRepo.Create(&model.User{
		Nickname: "alice", Email: "alice@example.com", RegisterDate: time.Now(),
	}))

	_, err := auth.LoginByEmail("", "whoever")
	assert.ErrorIs(t, err, util.ErrInvalidLogin)

	_, err = auth.LoginByEmail("stranger@example.com", "stranger")
	assert.ErrorIs(t, err, util.ErrInvalidLogin)

	// Failed logins never provision accounts.
	var count int64
	db.Model(&model.User{}).Count(&count)
	assert.Equal(t, int64(1), count)

	user, err := auth.LoginByEmail("alice@example.com", "whatever-the-provider-said")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Nickname)
}

func TestMenuUniqueness(t *testing.T) {
	db := newTestDB(t)
	menus := service.NewMenuService(repository.NewMenuRepository(db))

	_, err := menus.Create(service.MenuRequest{
		Sequence: 1, Link: "a", Type: model.MenuTypeItem, Caption: "Menu", CaptionEn: "Menu EN",
	})
	require.NoError(t, err)

	_, err = menus.Create(service.MenuRequest{
		Sequence: 1, Link: "b", Type: model.MenuTypeItem, Caption: "Menu", CaptionEn: "Other",
	})
	var vErr *util.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "sequence")
	assert.Contains(t, vErr.Fields, "caption")
}

func TestSubmenuParentMustBeContainer(t *testing.T) {
	db := newTestDB(t)
	menuRepo := repository.NewMenuRepository(db)
	submenus := service.NewSubmenuService(repository.NewSubmenuRepository(db), menuRepo)

	item := &model.Menu{Sequence: 1, Caption: "item", CaptionEn: "item-en", Type: model.MenuTypeItem}
	container := &model.Menu{Sequence: 2, Caption: "box", CaptionEn: "box-en", Type: model.MenuTypeContainer}
	require.NoError(t, menuRepo.Create(item))
	require.NoError(t, menuRepo.Create(container))

	var vErr *util.ValidationError

	_, err := submenus.Create(service.SubmenuRequest{
		Sequence: 1, Link: "x", Caption: "sub", CaptionEn: "sub-en", MenuID: item.ID,
	})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "menu_id")

	_, err = submenus.Create(service.SubmenuRequest{
		Sequence: 1, Link: "x", Caption: "sub", CaptionEn: "sub-en", MenuID: 999,
	})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "menu_id")

	created, err := submenus.Create(service.SubmenuRequest{
		Sequence: 1, Link: "x", Caption: "sub", CaptionEn: "sub-en", MenuID: container.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, container.ID, created.MenuID)
}

func TestPageLifecycle(t *testing.T) {
	db := newTestDB(t)
	pages := service.NewPageService(repository.NewPageRepository(db))

	created, err := pages.Create(service.PageRequest{
		Link: "about", Title: "O nas", TitleEn: "About",
		Content: "treść", ContentEn: "content", ImgName: "img.png",
	})
	require.NoError(t, err)

	resolved, err := pages.Resolve("about")
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)

	updated, err := pages.Update(created.ID, service.PageRequest{
		Link: "about", Title: "O nas 2", TitleEn: "About 2",
		Content: "treść", ContentEn: "content", ImgName: "img.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "O nas 2", updated.Title)

	// Applying the same update again leaves the page unchanged.
	again, err := pages.Update(created.ID, service.PageRequest{
		Link: "about", Title: "O nas 2", TitleEn: "About 2",
		Content: "treść", ContentEn: "content", ImgName: "img.png",
	})
	require.NoError(t, err)
	assert.Equal(t, updated.Title, again.Title)
	assert.Equal(t, updated.Link, again.Link)

	deleted, err := pages.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = pages.Get(created.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestNavigationBuild(t *testing.T) {
	db := newTestDB(t)
	menuRepo := repository.NewMenuRepository(db)
	nav := service.NewNavigationService(menuRepo)

	require.NoError(t, menuRepo.Create(&model.Menu{Sequence: 20, Caption: "b", CaptionEn: "b-en"}))
	require.NoError(t, menuRepo.Create(&model.Menu{Sequence: 10, Caption: "a", CaptionEn: "a-en"}))

	menus, err := nav.Build()
	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, "a", menus[0].Caption)
	assert.Equal(t, "b", menus[1].Caption)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
