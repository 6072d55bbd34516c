package admin

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tiku/internal/controller"
	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	importService      service.ImportService
	questionService    service.QuestionService
	explanationService service.ExplanationService
	maxUploadBytes     int64
}

func NewAdminQuestionController(
	importService service.ImportService,
	questionService service.QuestionService,
	explanationService service.ExplanationService,
	maxUploadBytes int64,
) *AdminQuestionController {
	return &AdminQuestionController{
		importService:      importService,
		questionService:    questionService,
		explanationService: explanationService,
		maxUploadBytes:     maxUploadBytes,
	}
}

// ImportQuestions godoc
// @Summary (Admin) Import questions from a spreadsheet
// @Description Upload an .xlsx, .xlsm or .xls file. Every worksheet is scanned; questions already in the bank are skipped.
// @Tags Admin - Questions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet file"
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or unsupported format"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/questions/import [post]
func (c *AdminQuestionController) ImportQuestions(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no file uploaded"})
		return
	}
	if fileHeader.Filename == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no file selected"})
		return
	}
	if c.maxUploadBytes > 0 && fileHeader.Size > c.maxUploadBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: fmt.Sprintf("file larger than %d bytes", c.maxUploadBytes)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("file", fileHeader.Filename).Msg("Admin ImportQuestions: failed to open upload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not read uploaded file"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not read uploaded file"})
		return
	}

	resp, err := c.importService.ImportSpreadsheet(ctx.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetStats godoc
// @Summary (Admin) Question bank statistics
// @Tags Admin - Questions
// @Produce json
// @Success 200 {object} dto.QuestionStatsResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/questions/stats [get]
func (c *AdminQuestionController) GetStats(ctx *gin.Context) {
	stats, err := c.questionService.Stats(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// CreateQuestion godoc
// @Summary (Admin) Add a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question"
// @Failure 409 {object} dto.ErrorResponse "Question text already exists"
// @Security BearerAuth
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.questionService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Description Only the fields present in the body are changed.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.UpdateQuestionRequest true "Fields to change"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 409 {object} dto.ErrorResponse "Question text already exists"
// @Security BearerAuth
// @Router /admin/questions/{id} [put]
func (c *AdminQuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.questionService.UpdateQuestion(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Security BearerAuth
// @Router /admin/questions/{id} [delete]
func (c *AdminQuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "question deleted"})
}

// ClearQuestions godoc
// @Summary (Admin) Delete every question
// @Tags Admin - Questions
// @Produce json
// @Success 200 {object} dto.ClearQuestionsResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/questions/clear [post]
func (c *AdminQuestionController) ClearQuestions(ctx *gin.Context) {
	deleted, err := c.questionService.ClearQuestions(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ClearQuestionsResponse{Message: "question bank cleared", Deleted: deleted})
}

// ExplainQuestion godoc
// @Summary (Admin) Generate an AI explanation for a question
// @Tags Admin - Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.ExplanationResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 503 {object} dto.ErrorResponse "Explanation generator not configured"
// @Security BearerAuth
// @Router /admin/questions/{id}/explanation [post]
func (c *AdminQuestionController) ExplainQuestion(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.explanationService.Explain(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
