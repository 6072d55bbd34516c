package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/model"
)

func TestStartRejectsSecondActiveSession(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	first, err := env.exams.Start(ctx, 1)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if first.Exam.Status != model.SessionStatusInProgress || first.Exam.TotalQuestions != model.DefaultTotalQuestions {
		t.Errorf("unexpected new session: %+v", first.Exam)
	}

	_, err = env.exams.Start(ctx, 1)
	if !errors.Is(err, ErrSessionAlreadyActive) {
		t.Fatalf("expected ErrSessionAlreadyActive, got %v", err)
	}
	var active *ActiveSessionError
	if !errors.As(err, &active) || active.SessionID != first.ExamID {
		t.Errorf("expected active session id %d, got %+v", first.ExamID, active)
	}

	if _, err := env.exams.Start(ctx, 2); err != nil {
		t.Errorf("another user must be able to start: %v", err)
	}
}

func TestActiveSessionIndexRejectsDirectInsert(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	if _, err := env.exams.Start(ctx, 7); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	dup := model.ExamSession{UserID: 7, Status: model.SessionStatusInProgress}
	if err := env.sessionRepo.Create(ctx, &dup); err == nil {
		t.Fatalf("expected unique index violation for second in-progress session")
	}
}

func TestStartAllowedAfterCompletion(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	started, err := env.exams.Start(ctx, 1)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if _, err := env.exams.Submit(ctx, started.ExamID, 1, nil); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if _, err := env.exams.Start(ctx, 1); err != nil {
		t.Errorf("expected new session after completion, got %v", err)
	}
}

func TestSelectQuestionsTakesWholeSmallBank(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	seedQuestions(t, env, model.QuestionTypeMultiple, 10, "A,B")
	seedQuestions(t, env, model.QuestionTypeJudge, 5, "正确")
	seedQuestions(t, env, model.QuestionTypeSingle, 20, "A")

	started, _ := env.exams.Start(ctx, 1)
	resp, err := env.exams.SelectQuestions(ctx, started.ExamID, 1)
	if err != nil {
		t.Fatalf("SelectQuestions returned error: %v", err)
	}
	if len(resp.Questions) != 35 {
		t.Fatalf("expected 35 questions, got %d", len(resp.Questions))
	}
	if resp.Exam.TotalQuestions != 35 {
		t.Errorf("expected total_questions 35 in response, got %d", resp.Exam.TotalQuestions)
	}

	seen := make(map[uint]bool)
	for _, q := range resp.Questions {
		if seen[q.ID] {
			t.Fatalf("question %d selected twice", q.ID)
		}
		seen[q.ID] = true
	}

	stored, err := env.sessionRepo.FindByID(ctx, started.ExamID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.TotalQuestions != 35 {
		t.Errorf("expected persisted total_questions 35, got %d", stored.TotalQuestions)
	}
}

func TestSelectQuestionsRespectsQuotas(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	seedQuestions(t, env, model.QuestionTypeMultiple, 70, "A,B")
	seedQuestions(t, env, model.QuestionTypeJudge, 25, "错误")
	seedQuestions(t, env, model.QuestionTypeSingle, 65, "C")

	started, _ := env.exams.Start(ctx, 1)
	resp, err := env.exams.SelectQuestions(ctx, started.ExamID, 1)
	if err != nil {
		t.Fatalf("SelectQuestions returned error: %v", err)
	}

	counts := map[string]int{}
	seen := make(map[uint]bool)
	for _, q := range resp.Questions {
		counts[q.QuestionType]++
		if seen[q.ID] {
			t.Fatalf("question %d selected twice", q.ID)
		}
		seen[q.ID] = true
	}
	if counts[model.QuestionTypeMultiple] != 60 || counts[model.QuestionTypeJudge] != 20 || counts[model.QuestionTypeSingle] != 60 {
		t.Errorf("unexpected per-type counts: %v", counts)
	}
	if len(resp.Questions) != 140 {
		t.Errorf("expected 140 questions, got %d", len(resp.Questions))
	}
}

func TestSelectQuestionsAccessChecks(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	started, _ := env.exams.Start(ctx, 1)

	if _, err := env.exams.SelectQuestions(ctx, started.ExamID, 2); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if _, err := env.exams.SelectQuestions(ctx, 9999, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := env.exams.Submit(ctx, started.ExamID, 1, nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := env.exams.SelectQuestions(ctx, started.ExamID, 1); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("expected ErrAlreadyCompleted, got %v", err)
	}
}

func TestUpdateTotalQuestionsSkipsCompletedSession(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	started, _ := env.exams.Start(ctx, 1)

	if n, err := env.sessionRepo.UpdateTotalQuestions(ctx, started.ExamID, 7); err != nil || n != 1 {
		t.Fatalf("UpdateTotalQuestions on open session = %d, %v; want 1 row", n, err)
	}
	if _, err := env.exams.Submit(ctx, started.ExamID, 1, nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	n, err := env.sessionRepo.UpdateTotalQuestions(ctx, started.ExamID, 99)
	if err != nil || n != 0 {
		t.Fatalf("UpdateTotalQuestions on completed session = %d, %v; want 0 rows", n, err)
	}
	session, err := env.sessionRepo.FindByID(ctx, started.ExamID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if session.TotalQuestions != 7 {
		t.Errorf("completed session total_questions = %d, want 7", session.TotalQuestions)
	}
}

func TestSubmitScoresAndRecordsMistakes(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	multi := seedQuestions(t, env, model.QuestionTypeMultiple, 1, "A,B")[0]
	single := seedQuestions(t, env, model.QuestionTypeSingle, 1, "C")[0]

	started, _ := env.exams.Start(ctx, 1)
	resp, err := env.exams.Submit(ctx, started.ExamID, 1, []dto.UserAnswerDTO{
		{QuestionID: multi.ID, Answer: "B,A"},
		{QuestionID: single.ID, Answer: "D"},
		{QuestionID: 424242, Answer: "A"},
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if resp.CorrectCount != 1 || resp.TotalQuestions != 3 {
		t.Errorf("expected 1 of 3 correct, got %d of %d", resp.CorrectCount, resp.TotalQuestions)
	}
	if math.Abs(resp.Score-100.0/3.0) > 1e-9 {
		t.Errorf("expected score 33.33..., got %v", resp.Score)
	}
	if resp.Exam.Status != model.SessionStatusCompleted || resp.Exam.EndTime == nil {
		t.Errorf("session not completed in response: %+v", resp.Exam)
	}

	records, err := env.answerRepo.FindBySession(ctx, started.ExamID)
	if err != nil {
		t.Fatalf("FindBySession: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 answer records (unknown question skipped), got %d", len(records))
	}

	entry, err := env.wrongRepo.FindByUserAndQuestion(ctx, 1, single.ID)
	if err != nil {
		t.Fatalf("expected ledger entry for missed question: %v", err)
	}
	if entry.WrongCount != 1 || entry.IsMastered {
		t.Errorf("unexpected ledger entry: %+v", entry)
	}
	if _, err := env.wrongRepo.FindByUserAndQuestion(ctx, 1, multi.ID); err == nil {
		t.Errorf("correct answer must not create a ledger entry")
	}
}

func TestSubmitEmptyAnswersScoresZero(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	started, _ := env.exams.Start(ctx, 1)

	resp, err := env.exams.Submit(ctx, started.ExamID, 1, []dto.UserAnswerDTO{})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if resp.Score != 0 || resp.CorrectCount != 0 || resp.TotalQuestions != 0 {
		t.Errorf("expected zero score, got %+v", resp)
	}
}

func TestSubmitTwiceFails(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	single := seedQuestions(t, env, model.QuestionTypeSingle, 1, "A")[0]
	started, _ := env.exams.Start(ctx, 1)
	answers := []dto.UserAnswerDTO{{QuestionID: single.ID, Answer: "B"}}

	if _, err := env.exams.Submit(ctx, started.ExamID, 1, answers); err != nil {
		t.Fatalf("first Submit returned error: %v", err)
	}
	if _, err := env.exams.Submit(ctx, started.ExamID, 1, answers); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted, got %v", err)
	}

	entry, err := env.wrongRepo.FindByUserAndQuestion(ctx, 1, single.ID)
	if err != nil {
		t.Fatalf("FindByUserAndQuestion: %v", err)
	}
	if entry.WrongCount != 1 {
		t.Errorf("rejected submission must not touch the ledger, wrong_count=%d", entry.WrongCount)
	}
	if _, err := env.exams.Submit(ctx, started.ExamID, 2, answers); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for another user, got %v", err)
	}
}

func TestSubmitRollsBackWhenLedgerWriteFails(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	right := seedQuestions(t, env, model.QuestionTypeSingle, 1, "A")[0]
	wrong := seedQuestions(t, env, model.QuestionTypeJudge, 1, "正确")[0]
	started, _ := env.exams.Start(ctx, 1)

	if err := env.db.Migrator().DropTable(&model.WrongQuestionEntry{}); err != nil {
		t.Fatalf("DropTable: %v", err)
	}
	_, err := env.exams.Submit(ctx, started.ExamID, 1, []dto.UserAnswerDTO{
		{QuestionID: right.ID, Answer: "A"},
		{QuestionID: wrong.ID, Answer: "错误"},
	})
	if err == nil {
		t.Fatal("expected Submit to fail without a wrong_questions table")
	}

	session, err := env.sessionRepo.FindByID(ctx, started.ExamID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if session.Status != model.SessionStatusInProgress || session.EndTime != nil || session.CorrectCount != 0 {
		t.Errorf("failed submission must leave the session untouched, got %+v", session)
	}
	records, err := env.answerRepo.FindBySession(ctx, started.ExamID)
	if err != nil {
		t.Fatalf("FindBySession: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no answer records, got %d", len(records))
	}
}

func TestSubmitRollsBackLedgerWhenRecordsFail(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	wrong := seedQuestions(t, env, model.QuestionTypeSingle, 1, "A")[0]
	started, _ := env.exams.Start(ctx, 1)

	if err := env.db.Migrator().DropTable(&model.AnswerRecord{}); err != nil {
		t.Fatalf("DropTable: %v", err)
	}
	_, err := env.exams.Submit(ctx, started.ExamID, 1, []dto.UserAnswerDTO{{QuestionID: wrong.ID, Answer: "B"}})
	if err == nil {
		t.Fatal("expected Submit to fail without an answer_records table")
	}

	if _, err := env.wrongRepo.FindByUserAndQuestion(ctx, 1, wrong.ID); err == nil {
		t.Errorf("ledger entry written by a rolled-back submission")
	}
	session, err := env.sessionRepo.FindByID(ctx, started.ExamID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if session.Status != model.SessionStatusInProgress {
		t.Errorf("expected session to stay in progress, got %q", session.Status)
	}
}

func TestRepeatedMistakeIncrementsLedger(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	judge := seedQuestions(t, env, model.QuestionTypeJudge, 1, "正确")[0]

	for round := 0; round < 2; round++ {
		started, err := env.exams.Start(ctx, 1)
		if err != nil {
			t.Fatalf("round %d Start: %v", round, err)
		}
		_, err = env.exams.Submit(ctx, started.ExamID, 1, []dto.UserAnswerDTO{{QuestionID: judge.ID, Answer: "错误"}})
		if err != nil {
			t.Fatalf("round %d Submit: %v", round, err)
		}
		if round == 0 {
			entry, _ := env.wrongRepo.FindByUserAndQuestion(ctx, 1, judge.ID)
			if err := env.wrongs.MarkMastered(ctx, entry.ID, 1); err != nil {
				t.Fatalf("MarkMastered: %v", err)
			}
		}
	}

	entry, err := env.wrongRepo.FindByUserAndQuestion(ctx, 1, judge.ID)
	if err != nil {
		t.Fatalf("FindByUserAndQuestion: %v", err)
	}
	if entry.WrongCount != 2 {
		t.Errorf("expected wrong_count 2, got %d", entry.WrongCount)
	}
	if entry.IsMastered {
		t.Errorf("a new mistake must reset the mastered flag")
	}
}

func TestGetResultAndListSessions(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	single := seedQuestions(t, env, model.QuestionTypeSingle, 1, "A")[0]

	var lastID uint
	for i := 0; i < 3; i++ {
		started, err := env.exams.Start(ctx, 1)
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
		lastID = started.ExamID
		if _, err := env.exams.Submit(ctx, started.ExamID, 1, []dto.UserAnswerDTO{{QuestionID: single.ID, Answer: "A"}}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	result, err := env.exams.GetResult(ctx, lastID, 1)
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	if len(result.Answers) != 1 || !result.Answers[0].IsCorrect || result.Answers[0].ExamID != lastID {
		t.Errorf("unexpected result answers: %+v", result.Answers)
	}
	if result.Answers[0].Question == nil || result.Answers[0].Question.ID != single.ID {
		t.Errorf("expected question attached to answer record")
	}
	if result.Exam.Score != 100 {
		t.Errorf("expected score 100, got %v", result.Exam.Score)
	}
	if _, err := env.exams.GetResult(ctx, lastID, 2); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}

	page, err := env.exams.ListSessions(ctx, 1, 2, 2)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if page.Total != 3 || page.Pages != 2 || page.CurrentPage != 2 || len(page.Exams) != 1 {
		t.Errorf("unexpected page: total=%d pages=%d current=%d len=%d", page.Total, page.Pages, page.CurrentPage, len(page.Exams))
	}

	clamped, err := env.exams.ListSessions(ctx, 1, 0, 1000)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if clamped.CurrentPage != 1 || len(clamped.Exams) != 3 {
		t.Errorf("expected clamped first page with 3 sessions, got page %d with %d", clamped.CurrentPage, len(clamped.Exams))
	}
}
