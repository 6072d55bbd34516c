package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/lshigami/Tiku/internal/model"
	"github.com/lshigami/Tiku/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sequenceSource replays a fixed sequence, reduced modulo n.
type sequenceSource struct {
	seq []int
	pos int
}

func (s *sequenceSource) Intn(n int) int {
	v := 0
	if len(s.seq) > 0 {
		v = s.seq[s.pos%len(s.seq)]
	}
	s.pos++
	return v % n
}

type testEnv struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	sessionRepo  repository.ExamSessionRepository
	answerRepo   repository.AnswerRecordRepository
	wrongRepo    repository.WrongQuestionRepository
	selector     *QuestionSelector
	exams        ExamService
	wrongs       WrongQuestionService
	questions    QuestionService
	imports      ImportService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(&model.Question{}, &model.ExamSession{}, &model.AnswerRecord{}, &model.WrongQuestionEntry{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestEnv(t *testing.T, rnd RandomSource) *testEnv {
	t.Helper()
	db := newTestDB(t)
	env := &testEnv{
		db:           db,
		questionRepo: repository.NewQuestionRepository(db),
		sessionRepo:  repository.NewExamSessionRepository(db),
		answerRepo:   repository.NewAnswerRecordRepository(db),
		wrongRepo:    repository.NewWrongQuestionRepository(db),
	}
	if rnd == nil {
		rnd = &sequenceSource{seq: []int{3, 1, 4, 1, 5, 9, 2, 6}}
	}
	env.selector = NewQuestionSelector(env.questionRepo, rnd)
	env.wrongs = NewWrongQuestionService(env.wrongRepo)
	env.exams = NewExamService(env.sessionRepo, env.answerRepo, env.questionRepo, env.wrongs, env.selector, db)
	env.questions = NewQuestionService(env.questionRepo, env.wrongRepo, env.selector, db)
	env.imports = NewImportService(env.questionRepo, db)
	return env
}

// seedQuestions stores n questions of one type and returns them.
func seedQuestions(t *testing.T, env *testEnv, questionType string, n int, answer string) []model.Question {
	t.Helper()
	out := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		q := model.Question{
			QuestionText:  fmt.Sprintf("%s question number %d for testing", questionType, i),
			QuestionType:  questionType,
			CorrectAnswer: answer,
			Difficulty:    1,
		}
		q.SetOption("A", "first")
		q.SetOption("B", "second")
		if err := env.questionRepo.Create(context.Background(), &q); err != nil {
			t.Fatalf("failed to seed question: %v", err)
		}
		out = append(out, q)
	}
	return out
}
