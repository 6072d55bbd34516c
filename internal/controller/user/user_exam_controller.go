package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tiku/internal/controller"
	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/service"
	"github.com/rs/zerolog/log"
)

type UserExamController struct {
	examService service.ExamService
}

func NewUserExamController(examService service.ExamService) *UserExamController {
	return &UserExamController{examService: examService}
}

// StartExam godoc
// @Summary (User) Start a mock exam
// @Description Opens a new exam session. Only one session per user may be in progress.
// @Tags User - Exams
// @Produce json
// @Success 201 {object} dto.StartExamResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 409 {object} dto.ActiveSessionErrorResponse "An exam is already in progress"
// @Security BearerAuth
// @Router /exams [post]
func (c *UserExamController) StartExam(ctx *gin.Context) {
	userID, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	resp, err := c.examService.Start(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Uint("userID", userID).Uint("sessionID", resp.ExamID).Msg("Exam started")
	ctx.JSON(http.StatusCreated, resp)
}

// ListExams godoc
// @Summary (User) List my exam sessions
// @Description Newest first.
// @Tags User - Exams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(10)
// @Success 200 {object} dto.ExamListResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /exams [get]
func (c *UserExamController) ListExams(ctx *gin.Context) {
	userID, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	var query dto.PageQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.examService.ListSessions(ctx.Request.Context(), userID, query.Page, query.PerPage)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetExamQuestions godoc
// @Summary (User) Draw the questions of an exam
// @Description Every call draws a fresh stratified sample. Correct answers are not included.
// @Tags User - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamQuestionsResponse
// @Failure 403 {object} dto.ErrorResponse "Exam belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam already completed"
// @Security BearerAuth
// @Router /exams/{exam_id}/questions [get]
func (c *UserExamController) GetExamQuestions(ctx *gin.Context) {
	userID, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	resp, err := c.examService.SelectQuestions(ctx.Request.Context(), examID, userID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitExam godoc
// @Summary (User) Submit answers and finish an exam
// @Tags User - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param answers body dto.SubmitExamRequest true "Answers"
// @Success 200 {object} dto.SubmitExamResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Exam belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam already completed"
// @Security BearerAuth
// @Router /exams/{exam_id}/submit [post]
func (c *UserExamController) SubmitExam(ctx *gin.Context) {
	userID, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.examService.Submit(ctx.Request.Context(), examID, userID, req.Answers)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Uint("userID", userID).Uint("sessionID", examID).Float64("score", resp.Score).Msg("Exam submitted")
	ctx.JSON(http.StatusOK, resp)
}

// GetExamResult godoc
// @Summary (User) Get the result of an exam
// @Tags User - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResultResponse
// @Failure 403 {object} dto.ErrorResponse "Exam belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Security BearerAuth
// @Router /exams/{exam_id}/result [get]
func (c *UserExamController) GetExamResult(ctx *gin.Context) {
	userID, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	resp, err := c.examService.GetResult(ctx.Request.Context(), examID, userID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
