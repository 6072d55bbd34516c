package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/Tiku/internal/model"
	"github.com/xuri/excelize/v2"
)

func buildXLSX(t *testing.T, sheets map[string][][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet: %v", err)
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			r := row
			if err := f.SetSheetRow(name, cell, &r); err != nil {
				t.Fatalf("SetSheetRow: %v", err)
			}
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("DeleteSheet: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf.Bytes()
}

func sampleBank(t *testing.T) []byte {
	return buildXLSX(t, map[string][][]interface{}{
		"Bank": {
			{"题目", "A", "B", "C", "D", "答案"},
			{"下列哪一个协议用于域名解析服务", "HTTP", "DNS", "FTP", "SMTP", "b"},
			{"以下哪些属于关系型数据库（多选）", "PostgreSQL", "Redis", "MySQL", "MongoDB", "A,C"},
			{"防火墙可以完全阻止所有网络攻击，判断对错", "", "", "", "", "×"},
			{"TCP 连接建立需要三次握手，判断正误", "", "", "", "", "√"},
			{"下列哪一个协议用于域名解析服务", "HTTP", "DNS", "FTP", "SMTP", "b"},
			{"太短", "", "", "", "", "A"},
			{"答案单元格只有逗号的无效题目示例", "甲", "乙", "丙", "丁", ","},
		},
	})
}

func TestImportSpreadsheetDedupsWithinFileAndAcrossImports(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	data := sampleBank(t)

	first, err := env.imports.ImportSpreadsheet(ctx, data, "bank.xlsx")
	if err != nil {
		t.Fatalf("ImportSpreadsheet returned error: %v", err)
	}
	if first.ImportedCount != 4 {
		t.Errorf("expected 4 imported, got %d", first.ImportedCount)
	}
	if first.ErrorCount != 1 {
		t.Errorf("expected 1 error row, got %d", first.ErrorCount)
	}
	if len(first.Sheets) != 1 || first.Sheets[0].Sheet != "Bank" || first.Sheets[0].Imported != 4 {
		t.Errorf("unexpected sheet summary: %+v", first.Sheets)
	}

	second, err := env.imports.ImportSpreadsheet(ctx, data, "bank.xlsx")
	if err != nil {
		t.Fatalf("second import returned error: %v", err)
	}
	if second.ImportedCount != 0 || len(second.Sheets) != 0 {
		t.Errorf("expected re-import to add nothing, got %d (%+v)", second.ImportedCount, second.Sheets)
	}

	stats, err := env.questions.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 4 || stats.Single != 1 || stats.Multiple != 1 || stats.Judge != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestImportSpreadsheetNormalizesJudgeAnswers(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	if _, err := env.imports.ImportSpreadsheet(ctx, sampleBank(t), "bank.xlsx"); err != nil {
		t.Fatalf("ImportSpreadsheet: %v", err)
	}

	var q model.Question
	if err := env.db.Where("question_text LIKE ?", "TCP%").First(&q).Error; err != nil {
		t.Fatalf("imported judge question not found: %v", err)
	}
	if q.QuestionType != model.QuestionTypeJudge || q.CorrectAnswer != "正确" {
		t.Errorf("expected judge/正确, got %s/%s", q.QuestionType, q.CorrectAnswer)
	}

	var multi model.Question
	if err := env.db.Where("question_type = ?", model.QuestionTypeMultiple).First(&multi).Error; err != nil {
		t.Fatalf("imported multiple question not found: %v", err)
	}
	if multi.CorrectAnswer != "A,C" {
		t.Errorf("expected A,C, got %s", multi.CorrectAnswer)
	}
	if multi.OptionD == nil || *multi.OptionD != "MongoDB" {
		t.Errorf("expected option D MongoDB, got %v", multi.OptionD)
	}
}

func TestImportSpreadsheetRejectsUnsupportedFormat(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.imports.ImportSpreadsheet(context.Background(), []byte("q,a"), "bank.csv")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestImportSpreadsheetRejectsCorruptFile(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.imports.ImportSpreadsheet(context.Background(), []byte("not a zip archive"), "bank.xlsx")
	if !errors.Is(err, ErrUnreadableSpreadsheet) {
		t.Fatalf("expected ErrUnreadableSpreadsheet, got %v", err)
	}
}
