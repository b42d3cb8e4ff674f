package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
)

// CourseInput is the admin create/update payload for a course.
type CourseInput struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail" validate:"required"`
	Coordinator string  `json:"coordinator" validate:"required"`
	CategoryID  string  `json:"category_id" validate:"required"`
	Lessons     int     `json:"lessons" validate:"gte=0"`
	Level       string  `json:"level" validate:"omitempty,oneof=beginner intermediate expert"`
	Price       string  `json:"price" validate:"required"`
	Discount    float64 `json:"discount" validate:"gte=0,lte=100"`
}

// ListCourses fetches one backend page of courses.
func (c *Client) ListCourses(ctx context.Context, page int) ([]domain.Course, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/course/?page=%d", page), "", nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch courses")
	if err != nil {
		return nil, err
	}

	var courses []domain.Course
	if err := decodeInto(raw, &courses, "fetch courses"); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse fetches a single course by id.
func (c *Client) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/course/"+url.PathEscape(id), "", nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch course")
	if err != nil {
		return nil, err
	}

	var course domain.Course
	if err := decodeInto(raw, &course, "fetch course"); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a course (admin).
func (c *Client) CreateCourse(ctx context.Context, token string, input CourseInput) (*domain.Course, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/course/", token, input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "create course")
	if err != nil {
		return nil, err
	}

	var course domain.Course
	if err := decodeInto(raw, &course, "create course"); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse updates a course (admin).
func (c *Client) UpdateCourse(ctx context.Context, token, id string, input CourseInput) (*domain.Course, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/v1/course/"+url.PathEscape(id), token, input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "update course")
	if err != nil {
		return nil, err
	}

	var course domain.Course
	if err := decodeInto(raw, &course, "update course"); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse deletes a course (admin).
func (c *Client) DeleteCourse(ctx context.Context, token, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/course/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, req, "delete course")
	return err
}
