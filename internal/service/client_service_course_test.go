package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avdeev/go-coursebook/internal/adapter"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/mock"
	"github.com/avdeev/go-coursebook/models"
)

func newTestCourseClientService(ctrl *gomock.Controller) (CourseClientService, *mock.MockServerAdapter) {
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	return NewCourseClientService(mockAdapter, logger.Nop()), mockAdapter
}

func TestCourseClientService_ListCourses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestCourseClientService(ctrl)
	ctx := context.Background()

	expected := []models.Course{
		{ID: 1, Title: "Learn To Code", Description: "The basics", UserID: 1},
		{ID: 2, Title: "Advanced Coding", Description: "Beyond the basics", UserID: 2},
	}
	mockAdapter.EXPECT().ListCourses(ctx).Return(expected, nil)

	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, courses)
}

func TestCourseClientService_CreateCourse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestCourseClientService(ctrl)
	ctx := context.Background()

	input := models.CourseInput{Title: "Learn To Code", Description: "The basics"}
	mockAdapter.EXPECT().CreateCourse(ctx, input).Return(int64(42), nil)

	id, err := svc.CreateCourse(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCourseClientService_UnauthorizedBecomesSessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestCourseClientService(ctrl)
	ctx := context.Background()

	rejected := fmt.Errorf("%w: Access Denied", adapter.ErrUnauthorized)

	mockAdapter.EXPECT().CreateCourse(ctx, gomock.Any()).Return(int64(0), rejected)
	_, err := svc.CreateCourse(ctx, models.CourseInput{Title: "Learn To Code", Description: "The basics"})
	assert.ErrorIs(t, err, ErrSessionExpired)

	mockAdapter.EXPECT().UpdateCourse(ctx, int64(1), gomock.Any()).Return(rejected)
	err = svc.UpdateCourse(ctx, 1, models.CourseInput{Title: "Learn To Code", Description: "The basics"})
	assert.ErrorIs(t, err, ErrSessionExpired)

	mockAdapter.EXPECT().DeleteCourse(ctx, int64(1)).Return(rejected)
	err = svc.DeleteCourse(ctx, 1)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestCourseClientService_PassesThroughCourseSentinels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestCourseClientService(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetCourse(ctx, int64(99)).
		Return(models.Course{}, fmt.Errorf("%w: Not Found", adapter.ErrNotFound))
	_, err := svc.GetCourse(ctx, 99)
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	mockAdapter.EXPECT().DeleteCourse(ctx, int64(2)).
		Return(fmt.Errorf("%w: You are not authorized to modify this course", adapter.ErrForbidden))
	err = svc.DeleteCourse(ctx, 2)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestCourseClientService_PassesThroughValidationFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestCourseClientService(ctrl)
	ctx := context.Background()

	validationErr := &adapter.ValidationFailedError{Messages: []string{`Please provide a value for "title"`}}
	mockAdapter.EXPECT().CreateCourse(ctx, gomock.Any()).Return(int64(0), validationErr)

	_, err := svc.CreateCourse(ctx, models.CourseInput{})
	require.Error(t, err)

	got, ok := adapter.AsValidationFailed(err)
	require.True(t, ok)
	assert.Equal(t, validationErr.Messages, got.Messages)
}
