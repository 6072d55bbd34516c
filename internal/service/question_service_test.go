package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/model"
)

func strPtr(s string) *string { return &s }

func TestCreateQuestionNormalizesAndRejectsDuplicates(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	created, err := env.questions.CreateQuestion(ctx, dto.CreateQuestionRequest{
		QuestionText:  "  Go 中   哪些类型是引用类型（多选）",
		QuestionType:  model.QuestionTypeMultiple,
		OptionA:       strPtr("slice"),
		OptionB:       strPtr("map"),
		CorrectAnswer: "a，b",
	})
	if err != nil {
		t.Fatalf("CreateQuestion returned error: %v", err)
	}
	if created.QuestionText != "Go 中 哪些类型是引用类型（多选）" || created.CorrectAnswer != "A,B" || created.Difficulty != 1 {
		t.Errorf("question not normalized: %+v", created)
	}

	_, err = env.questions.CreateQuestion(ctx, dto.CreateQuestionRequest{
		QuestionText:  "Go 中 哪些类型是引用类型（多选）",
		QuestionType:  model.QuestionTypeMultiple,
		CorrectAnswer: "A",
	})
	if !errors.Is(err, ErrDuplicateQuestion) {
		t.Errorf("expected ErrDuplicateQuestion, got %v", err)
	}

	_, err = env.questions.CreateQuestion(ctx, dto.CreateQuestionRequest{
		QuestionText:  "难度超出范围的题目",
		QuestionType:  model.QuestionTypeSingle,
		CorrectAnswer: "A",
		Difficulty:    9,
	})
	if !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("expected ErrInvalidQuestion, got %v", err)
	}
}

func TestUpdateAndDeleteQuestion(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	qs := seedQuestions(t, env, model.QuestionTypeSingle, 2, "A")

	updated, err := env.questions.UpdateQuestion(ctx, qs[0].ID, dto.UpdateQuestionRequest{
		CorrectAnswer: strPtr("c"),
		Explanation:   strPtr("because"),
	})
	if err != nil {
		t.Fatalf("UpdateQuestion returned error: %v", err)
	}
	if updated.CorrectAnswer != "C" || updated.Explanation == nil || *updated.Explanation != "because" {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if updated.QuestionText != qs[0].QuestionText {
		t.Errorf("absent fields must be kept, got text %q", updated.QuestionText)
	}

	_, err = env.questions.UpdateQuestion(ctx, qs[0].ID, dto.UpdateQuestionRequest{QuestionText: strPtr(qs[1].QuestionText)})
	if !errors.Is(err, ErrDuplicateQuestion) {
		t.Errorf("expected ErrDuplicateQuestion when renaming onto existing text, got %v", err)
	}

	if err := env.wrongRepo.Upsert(ctx, 1, qs[1].ID, qs[1].CreatedAt); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := env.questions.DeleteQuestion(ctx, qs[1].ID); err != nil {
		t.Fatalf("DeleteQuestion returned error: %v", err)
	}
	if _, err := env.questions.GetQuestion(ctx, qs[1].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := env.wrongRepo.FindByUserAndQuestion(ctx, 1, qs[1].ID); err == nil {
		t.Errorf("ledger entry must be removed with its question")
	}
	if err := env.questions.DeleteQuestion(ctx, qs[1].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListQuestionsFiltersAndPaginates(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	seedQuestions(t, env, model.QuestionTypeSingle, 25, "A")
	seedQuestions(t, env, model.QuestionTypeJudge, 3, "正确")

	page, err := env.questions.ListQuestions(ctx, dto.QuestionListQuery{Type: model.QuestionTypeSingle, Page: 2})
	if err != nil {
		t.Fatalf("ListQuestions returned error: %v", err)
	}
	if page.Total != 25 || page.Pages != 2 || len(page.Questions) != 5 {
		t.Errorf("unexpected page: total=%d pages=%d len=%d", page.Total, page.Pages, len(page.Questions))
	}

	search, err := env.questions.ListQuestions(ctx, dto.QuestionListQuery{Search: "judge question number 1"})
	if err != nil {
		t.Fatalf("ListQuestions returned error: %v", err)
	}
	if search.Total != 1 {
		t.Errorf("expected 1 search hit, got %d", search.Total)
	}
}

func TestClearQuestionsAndRandomPractice(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	seedQuestions(t, env, model.QuestionTypeSingle, 4, "A")
	seedQuestions(t, env, model.QuestionTypeMultiple, 3, "A,B")

	practice, err := env.questions.RandomPractice(ctx)
	if err != nil {
		t.Fatalf("RandomPractice returned error: %v", err)
	}
	if practice.Total != 7 || len(practice.Questions) != 7 {
		t.Errorf("expected the whole 7-question bank, got %d", practice.Total)
	}
	if practice.Questions[0].CorrectAnswer == "" {
		t.Errorf("practice questions carry their answers")
	}

	deleted, err := env.questions.ClearQuestions(ctx)
	if err != nil {
		t.Fatalf("ClearQuestions returned error: %v", err)
	}
	if deleted != 7 {
		t.Errorf("expected 7 deleted, got %d", deleted)
	}
	stats, _ := env.questions.Stats(ctx)
	if stats.Total != 0 {
		t.Errorf("expected empty bank, got %d", stats.Total)
	}
}
