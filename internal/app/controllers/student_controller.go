package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/app/services"
	"github.com/deepak/eventsphere/internal/middleware"
	"github.com/deepak/eventsphere/internal/pkg/validation"
)

// StudentController handles student profile operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetProfile handles retrieving a student profile by email
// @Summary Get student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param email path string true "Institutional email"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student profile"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/profile/{email} [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	email := ctx.Param("email")
	if !validation.IsValidEmail(email) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid email").WithField("email")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	student, err := c.studentService.GetByEmail(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}
