package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/ingest"
	"github.com/lshigami/Tiku/internal/model"
	"github.com/lshigami/Tiku/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ImportService loads question banks from uploaded spreadsheets.
type ImportService interface {
	ImportSpreadsheet(ctx context.Context, data []byte, filename string) (*dto.ImportResponse, error)
}

type importService struct {
	questionRepo repository.QuestionRepository
	db           *gorm.DB
}

func NewImportService(questionRepo repository.QuestionRepository, db *gorm.DB) ImportService {
	return &importService{questionRepo: questionRepo, db: db}
}

// ImportSpreadsheet parses every worksheet, drops questions whose text is
// already in the bank or earlier in the same file, and commits the rest in
// one transaction.
func (s *importService) ImportSpreadsheet(ctx context.Context, data []byte, filename string) (*dto.ImportResponse, error) {
	if !ingest.IsSupported(filename) {
		return nil, ErrUnsupportedFormat
	}

	parsed, err := ingest.Parse(data, filename)
	if err != nil {
		if errors.Is(err, ingest.ErrUnsupportedFormat) {
			return nil, ErrUnsupportedFormat
		}
		log.Error().Err(err).Str("file", filename).Msg("ImportSpreadsheet: failed to open workbook")
		return nil, fmt.Errorf("%w: %v", ErrUnreadableSpreadsheet, err)
	}

	var hashes []string
	for _, sheet := range parsed.Sheets {
		for _, q := range sheet.Questions {
			hashes = append(hashes, q.TextHash)
		}
	}
	existing, err := s.questionRepo.ExistingHashes(ctx, hashes)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing questions: %w", err)
	}

	resp := &dto.ImportResponse{Sheets: []dto.SheetSummary{}}
	staged := make(map[string]bool)
	var toInsert []*model.Question
	for _, sheet := range parsed.Sheets {
		resp.ErrorCount += sheet.Errors
		imported := 0
		for i := range sheet.Questions {
			q := &sheet.Questions[i]
			if existing[q.TextHash] || staged[q.TextHash] {
				continue
			}
			staged[q.TextHash] = true
			toInsert = append(toInsert, q)
			imported++
		}
		if imported > 0 {
			resp.Sheets = append(resp.Sheets, dto.SheetSummary{Sheet: sheet.Name, Imported: imported})
		}
	}

	var inserted int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.questionRepo.WithTx(tx).CreateIgnoringDuplicates(ctx, toInsert)
		if err != nil {
			return fmt.Errorf("failed to insert questions: %w", err)
		}
		inserted = n
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("file", filename).Int("staged", len(toInsert)).Msg("ImportSpreadsheet: transaction rolled back")
		return nil, err
	}
	if int(inserted) != len(toInsert) {
		log.Warn().Int("staged", len(toInsert)).Int64("inserted", inserted).Msg("ImportSpreadsheet: some questions were inserted concurrently by another import")
	}

	resp.ImportedCount = int(inserted)
	resp.Message = fmt.Sprintf("imported %d questions", resp.ImportedCount)
	log.Info().
		Str("file", filename).
		Int("imported", resp.ImportedCount).
		Int("errors", resp.ErrorCount).
		Int("sheets", len(resp.Sheets)).
		Msg("Spreadsheet imported")
	return resp, nil
}
