package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tiku/internal/controller"
	"github.com/lshigami/Tiku/internal/dto"
	"github.com/lshigami/Tiku/internal/service"
)

type UserWrongQuestionController struct {
	wrongService service.WrongQuestionService
}

func NewUserWrongQuestionController(wrongService service.WrongQuestionService) *UserWrongQuestionController {
	return &UserWrongQuestionController{wrongService: wrongService}
}

// ListWrongQuestions godoc
// @Summary (User) List my wrong questions
// @Description Most recently missed first. Mastered entries are hidden unless show_mastered is true.
// @Tags User - Wrong Questions
// @Produce json
// @Param show_mastered query bool false "Include mastered entries"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(20)
// @Success 200 {object} dto.WrongQuestionListResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /wrong-questions [get]
func (c *UserWrongQuestionController) ListWrongQuestions(ctx *gin.Context) {
	userID, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	var query dto.WrongQuestionQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.wrongService.List(ctx.Request.Context(), userID, query.ShowMastered, query.Page, query.PerPage)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// MasterWrongQuestion godoc
// @Summary (User) Mark a wrong question as mastered
// @Tags User - Wrong Questions
// @Produce json
// @Param id path int true "Wrong question entry ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Entry belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /wrong-questions/{id}/master [post]
func (c *UserWrongQuestionController) MasterWrongQuestion(ctx *gin.Context) {
	userID, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.wrongService.MarkMastered(ctx.Request.Context(), id, userID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "marked as mastered"})
}
