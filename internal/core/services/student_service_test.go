package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	"github.com/mattilda/school_billing_app/internal/core/domain"
	portssvc "github.com/mattilda/school_billing_app/internal/core/ports/services"
	"github.com/mattilda/school_billing_app/internal/core/services"
	"github.com/mattilda/school_billing_app/internal/dto"
)

type StudentServiceTestSuite struct {
	suite.Suite
	studentRepo *MockStudentRepository
	schoolRepo  *MockSchoolRepository
	service     portssvc.StudentSvcFacade
	ctx         context.Context
}

func (s *StudentServiceTestSuite) SetupTest() {
	s.studentRepo = new(MockStudentRepository)
	s.schoolRepo = new(MockSchoolRepository)
	s.service = services.NewStudentService(s.studentRepo, s.schoolRepo)
	s.ctx = context.Background()
}

func (s *StudentServiceTestSuite) TestCreateStudent_Success() {
	school := &domain.School{SchoolID: uuid.NewString(), Name: "St. Analytical"}
	s.schoolRepo.On("FindSchoolByID", s.ctx, school.SchoolID).Return(school, nil)
	s.studentRepo.On("SaveStudent", s.ctx, mock.AnythingOfType("domain.Student")).Return(nil)

	req := dto.CreateStudentRequest{Name: "Ada", Email: "ada@example.com", SchoolID: school.SchoolID}
	student, err := s.service.CreateStudent(s.ctx, req)

	s.NoError(err)
	s.NotEmpty(student.StudentID)
	s.Equal(school.SchoolID, student.SchoolID)
	s.False(student.CreatedAt.IsZero())
}

func (s *StudentServiceTestSuite) TestCreateStudent_UnknownSchool() {
	schoolID := uuid.NewString()
	s.schoolRepo.On("FindSchoolByID", s.ctx, schoolID).Return(nil, apperrors.ErrNotFound)

	req := dto.CreateStudentRequest{Name: "Ada", SchoolID: schoolID}
	_, err := s.service.CreateStudent(s.ctx, req)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.studentRepo.AssertNotCalled(s.T(), "SaveStudent", mock.Anything, mock.Anything)
}

func (s *StudentServiceTestSuite) TestUpdateStudent_PatchesOnlyGivenFields() {
	student := &domain.Student{StudentID: uuid.NewString(), Name: "Ada", Email: "ada@example.com", SchoolID: uuid.NewString()}
	newName := "Ada Lovelace"

	s.studentRepo.On("FindStudentByID", s.ctx, student.StudentID).Return(student, nil)
	s.studentRepo.On("UpdateStudent", s.ctx, mock.AnythingOfType("domain.Student")).Return(nil)

	updated, err := s.service.UpdateStudent(s.ctx, student.StudentID, dto.UpdateStudentRequest{Name: &newName})

	s.NoError(err)
	s.Equal(newName, updated.Name)
	s.Equal("ada@example.com", updated.Email)
}

func (s *StudentServiceTestSuite) TestDeleteStudent_UnknownStudent() {
	studentID := uuid.NewString()
	s.studentRepo.On("FindStudentByID", s.ctx, studentID).Return(nil, apperrors.ErrNotFound)

	err := s.service.DeleteStudent(s.ctx, studentID)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.studentRepo.AssertNotCalled(s.T(), "DeleteStudent", mock.Anything, mock.Anything)
}

func TestStudentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceTestSuite))
}
