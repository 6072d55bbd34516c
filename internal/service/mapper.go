package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/model"
	"github.com/rs/zerolog/log"
)

func toQuestionResponse(q *model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, q); err != nil {
		log.Error().Err(err).Uint("questionID", q.ID).Msg("Error copying question to DTO")
	}
	return resp
}

func toQuestionResponses(questions []model.Question) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, toQuestionResponse(&questions[i]))
	}
	return out
}

func toExamQuestionResponses(questions []model.Question) []dto.ExamQuestionResponse {
	out := make([]dto.ExamQuestionResponse, 0, len(questions))
	for i := range questions {
		var item dto.ExamQuestionResponse
		if err := copier.Copy(&item, &questions[i]); err != nil {
			log.Error().Err(err).Uint("questionID", questions[i].ID).Msg("Error copying exam question to DTO")
			continue
		}
		out = append(out, item)
	}
	return out
}

func toSessionResponse(s *model.ExamSession) dto.ExamSessionResponse {
	var resp dto.ExamSessionResponse
	if err := copier.Copy(&resp, s); err != nil {
		log.Error().Err(err).Uint("sessionID", s.ID).Msg("Error copying exam session to DTO")
	}
	return resp
}

func toAnswerRecordResponse(r *model.AnswerRecord) dto.AnswerRecordResponse {
	var resp dto.AnswerRecordResponse
	if err := copier.Copy(&resp, r); err != nil {
		log.Error().Err(err).Uint("answerID", r.ID).Msg("Error copying answer record to DTO")
	}
	resp.ExamID = r.ExamSessionID
	return resp
}

func toWrongQuestionResponse(e *model.WrongQuestionEntry) dto.WrongQuestionResponse {
	var resp dto.WrongQuestionResponse
	if err := copier.Copy(&resp, e); err != nil {
		log.Error().Err(err).Uint("entryID", e.ID).Msg("Error copying wrong question to DTO")
	}
	resp.Question = toQuestionResponse(&e.Question)
	return resp
}
