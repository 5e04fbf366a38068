package repository_test

import (
	"strconv"
	"testing"
	"time"

	"cms_backend/internal/model"
	"cms_backend/internal/repository"
	"cms_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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

func TestPageFindBySlugOrID(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPageRepository(db)

	page := &model.Page{Link: "about", Title: "O nas", TitleEn: "About"}
	require.NoError(t, repo.Create(page))

	byLink, err := repo.FindBySlugOrID("about")
	require.NoError(t, err)
	assert.Equal(t, page.ID, byLink.ID)

	byID, err := repo.FindBySlugOrID(strconv.FormatUint(uint64(page.ID), 10))
	require.NoError(t, err)
	assert.Equal(t, page.ID, byID.ID)

	_, err = repo.FindBySlugOrID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPageDeleteIsSilent(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPageRepository(db)

	page := &model.Page{Link: "tmp", Title: "t", TitleEn: "t"}
	require.NoError(t, repo.Create(page))

	deleted, err := repo.Delete(page.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(page.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMenuListOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMenuRepository(db)

	third := &model.Menu{Sequence: 30, Caption: "c", CaptionEn: "c-en"}
	first := &model.Menu{Sequence: 10, Caption: "a", CaptionEn: "a-en", Type: model.MenuTypeContainer}
	second := &model.Menu{Sequence: 20, Caption: "b", CaptionEn: "b-en"}
	for _, m := range []*model.Menu{third, first, second} {
		require.NoError(t, repo.Create(m))
	}

	require.NoError(t, db.Create(&model.Submenu{Sequence: 2, Caption: "s2", CaptionEn: "s2-en", MenuID: first.ID}).Error)
	require.NoError(t, db.Create(&model.Submenu{Sequence: 1, Caption: "s1", CaptionEn: "s1-en", MenuID: first.ID}).Error)

	menus, err := repo.ListOrdered()
	require.NoError(t, err)
	require.Len(t, menus, 3)
	assert.Equal(t, []int{10, 20, 30}, []int{menus[0].Sequence, menus[1].Sequence, menus[2].Sequence})

	require.Len(t, menus[0].Submenus, 2)
	assert.Equal(t, "s1", menus[0].Submenus[0].Caption)
	assert.Equal(t, "s2", menus[0].Submenus[1].Caption)
}

func TestMenuCascadeDelete(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMenuRepository(db)

	menu := &model.Menu{Sequence: 1, Caption: "parent", CaptionEn: "parent-en", Type: model.MenuTypeContainer}
	require.NoError(t, repo.Create(menu))
	require.NoError(t, db.Create(&model.Submenu{Sequence: 1, Caption: "child", CaptionEn: "child-en", MenuID: menu.ID}).Error)

	deleted, err := repo.Delete(menu.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	var count int64
	db.Model(&model.Submenu{}).Count(&count)
	assert.Zero(t, count)
}

func TestQuizCascadeDelete(t *testing.T) {
	db := newTestDB(t)
	quizzes := repository.NewQuizRepository(db)
	responses := repository.NewResponseRepository(db)

	quiz := seedQuiz(t, db)
	q1 := quiz.Questions[0]
	require.NoError(t, responses.RecordBatch([]model.QuizUserAnswer{
		{QuizQuestionID: q1.ID, QuizAnswerOptionID: q1.Answers[0].ID},
	}))

	deleted, err := quizzes.Delete(quiz.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	var questions, options, answers int64
	db.Model(&model.QuizQuestion{}).Count(&questions)
	db.Model(&model.QuizAnswerOption{}).Count(&options)
	db.Model(&model.QuizUserAnswer{}).Count(&answers)
	assert.Zero(t, questions)
	assert.Zero(t, options)
	assert.Zero(t, answers)
}

func TestRecordBatchIsAtomic(t *testing.T) {
	db := newTestDB(t)
	responses := repository.NewResponseRepository(db)

	quiz := seedQuiz(t, db)
	q1 := quiz.Questions[0]

	err := responses.RecordBatch([]model.QuizUserAnswer{
		{QuizQuestionID: q1.ID, QuizAnswerOptionID: q1.Answers[0].ID},
		{QuizQuestionID: q1.ID, QuizAnswerOptionID: 9999},
	})
	require.Error(t, err)

	var count int64
	db.Model(&model.QuizUserAnswer{}).Count(&count)
	assert.Zero(t, count, "a rejected batch must persist no rows")
}

func TestCountByPair(t *testing.T) {
	db := newTestDB(t)
	responses := repository.NewResponseRepository(db)

	quiz := seedQuiz(t, db)
	q1, q2 := quiz.Questions[0], quiz.Questions[1]

	batches := [][]model.QuizUserAnswer{
		{
			{QuizQuestionID: q1.ID, QuizAnswerOptionID: q1.Answers[0].ID},
			{QuizQuestionID: q2.ID, QuizAnswerOptionID: q2.Answers[0].ID},
		},
		{
			{QuizQuestionID: q1.ID, QuizAnswerOptionID: q1.Answers[0].ID},
			{QuizQuestionID: q2.ID, QuizAnswerOptionID: q2.Answers[1].ID},
		},
	}
	for _, batch := range batches {
		require.NoError(t, responses.RecordBatch(batch))
	}

	pairs, err := responses.CountByPair([]uint{q1.ID, q2.ID})
	require.NoError(t, err)

	counts := map[[2]uint]int64{}
	for _, p := range pairs {
		counts[[2]uint{p.QuizQuestionID, p.QuizAnswerOptionID}] = p.Count
	}
	assert.Equal(t, int64(2), counts[[2]uint{q1.ID, q1.Answers[0].ID}])
	assert.Zero(t, counts[[2]uint{q1.ID, q1.Answers[1].ID}])
	assert.Equal(t, int64(1), counts[[2]uint{q2.ID, q2.Answers[0].ID}])
	assert.Equal(t, int64(1), counts[[2]uint{q2.ID, q2.Answers[1].ID}])
}

func TestNicknameTaken(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)

	user := &model.User{Nickname: "alice", Email: "alice@example.com", RegisterDate: time.Now()}
	require.NoError(t, repo.Create(user))

	taken, err := repo.NicknameTaken("alice", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.NicknameTaken("alice", user.ID)
	require.NoError(t, err)
	assert.False(t, taken, "the user's own row must not count")

	taken, err = repo.NicknameTaken("bob", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}
