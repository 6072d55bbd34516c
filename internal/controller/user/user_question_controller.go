package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tiku/internal/controller"
	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/service"
)

type UserQuestionController struct {
	questionService service.QuestionService
}

func NewUserQuestionController(questionService service.QuestionService) *UserQuestionController {
	return &UserQuestionController{questionService: questionService}
}

// ListQuestions godoc
// @Summary (User) Browse the question bank
// @Tags User - Questions
// @Produce json
// @Param type query string false "Question type" Enums(single, multiple, judge)
// @Param search query string false "Substring of the question text"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(20)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /questions [get]
func (c *UserQuestionController) ListQuestions(ctx *gin.Context) {
	var query dto.QuestionListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.questionService.ListQuestions(ctx.Request.Context(), query)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuestion godoc
// @Summary (User) Get one question
// @Tags User - Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Security BearerAuth
// @Router /questions/{id} [get]
func (c *UserQuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.questionService.GetQuestion(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RandomPractice godoc
// @Summary (User) Draw a practice set
// @Description Same stratified draw as an exam, with answers included and no session recorded.
// @Tags User - Questions
// @Produce json
// @Success 200 {object} dto.PracticeResponse
// @Security BearerAuth
// @Router /questions/random [get]
func (c *UserQuestionController) RandomPractice(ctx *gin.Context) {
	resp, err := c.questionService.RandomPractice(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
