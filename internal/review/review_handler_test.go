package review_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	employeeerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/employee/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/review"
	reviewerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/review/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeReviewService struct {
	SubmitManagerReviewFn func(ctx context.Context, userID string, req review.SubmitManagerReviewRequest) (review.ManagerReviewResponse, error)
	SubmitLeadReviewFn    func(ctx context.Context, userID string, req review.SubmitLeadReviewRequest) (review.LeadReviewResponse, error)
	TeamMembersFn         func(ctx context.Context, userID string) ([]review.TeamMemberResponse, error)
	LeadAppraisalsFn      func(ctx context.Context, userID string) ([]review.AppraisalBundle, error)
	MyRatingsFn           func(ctx context.Context, userID string) (review.MyRatingsResponse, error)
}

func (f *fakeReviewService) SubmitManagerReview(ctx context.Context, userID string, req review.SubmitManagerReviewRequest) (review.ManagerReviewResponse, error) {
	return f.SubmitManagerReviewFn(ctx, userID, req)
}
func (f *fakeReviewService) SubmitLeadReview(ctx context.Context, userID string, req review.SubmitLeadReviewRequest) (review.LeadReviewResponse, error) {
	return f.SubmitLeadReviewFn(ctx, userID, req)
}
func (f *fakeReviewService) TeamMembers(ctx context.Context, userID string) ([]review.TeamMemberResponse, error) {
	return f.TeamMembersFn(ctx, userID)
}
func (f *fakeReviewService) LeadAppraisals(ctx context.Context, userID string) ([]review.AppraisalBundle, error) {
	return f.LeadAppraisalsFn(ctx, userID)
}
func (f *fakeReviewService) MyRatings(ctx context.Context, userID string) (review.MyRatingsResponse, error) {
	return f.MyRatingsFn(ctx, userID)
}

func managerReviewBody(employeeID string) string {
	return `{
		"employeeId": "` + employeeID + `",
		"performanceRating": 4,
		"goalsAchieved": "Delivered the roadmap",
		"areasOfGrowth": "Delegation",
		"promotionReadiness": "ready",
		"overallComments": "Solid performance"
	}`
}

func TestReviewHandler_SubmitManagerReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		employeeID := uuid.NewString()
		svc := &fakeReviewService{
			SubmitManagerReviewFn: func(ctx context.Context, userID string, req review.SubmitManagerReviewRequest) (review.ManagerReviewResponse, error) {
				assert.Equal(t, "user-1", userID)
				assert.Equal(t, employeeID, req.EmployeeID)
				return review.ManagerReviewResponse{ID: uuid.NewString(), Status: review.StatusCompleted}, nil
			},
		}

		h := review.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/manager-reviews", strings.NewReader(managerReviewBody(employeeID)))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", "user-1")

		h.SubmitManagerReview(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		h := review.NewHandler(&fakeReviewService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employeeId":"` + uuid.NewString() + `","performanceRating":6,"goalsAchieved":"x","areasOfGrowth":"y","promotionReadiness":"z","overallComments":"w"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/manager-reviews", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.SubmitManagerReview(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not a direct report", func(t *testing.T) {
		svc := &fakeReviewService{
			SubmitManagerReviewFn: func(ctx context.Context, userID string, req review.SubmitManagerReviewRequest) (review.ManagerReviewResponse, error) {
				return review.ManagerReviewResponse{}, reviewerrors.ErrNotDirectReport
			},
		}

		h := review.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/manager-reviews", strings.NewReader(managerReviewBody(uuid.NewString())))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", "user-1")

		h.SubmitManagerReview(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "direct reports")
	})

	t.Run("unlinked session", func(t *testing.T) {
		svc := &fakeReviewService{
			SubmitManagerReviewFn: func(ctx context.Context, userID string, req review.SubmitManagerReviewRequest) (review.ManagerReviewResponse, error) {
				return review.ManagerReviewResponse{}, employeeerrors.ErrNotLinkedToUser
			},
		}

		h := review.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/manager-reviews", strings.NewReader(managerReviewBody(uuid.NewString())))
		c.Request.Header.Set("Content-Type", "application/json")

		h.SubmitManagerReview(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReviewHandler_SubmitLeadReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeReviewService{
			SubmitLeadReviewFn: func(ctx context.Context, userID string, req review.SubmitLeadReviewRequest) (review.LeadReviewResponse, error) {
				assert.Equal(t, 5, req.FinalRating)
				return review.LeadReviewResponse{ID: uuid.NewString(), FinalRating: 5}, nil
			},
		}

		h := review.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employeeId":"` + uuid.NewString() + `","finalRating":5,"promotionDecision":"promote","remarks":"Ready for the next level"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/lead-reviews", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", "user-1")

		h.SubmitLeadReview(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("outside leadership chain", func(t *testing.T) {
		svc := &fakeReviewService{
			SubmitLeadReviewFn: func(ctx context.Context, userID string, req review.SubmitLeadReviewRequest) (review.LeadReviewResponse, error) {
				return review.LeadReviewResponse{}, reviewerrors.ErrNotUnderLeadership
			},
		}

		h := review.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employeeId":"` + uuid.NewString() + `","finalRating":3,"promotionDecision":"hold","remarks":"Needs another cycle"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/lead-reviews", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", "user-1")

		h.SubmitLeadReview(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestReviewHandler_TeamMembers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeReviewService{
		TeamMembersFn: func(ctx context.Context, userID string) ([]review.TeamMemberResponse, error) {
			assert.Equal(t, "user-1", userID)
			return []review.TeamMemberResponse{}, nil
		},
	}

	h := review.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/manager/team-members", nil)
	c.Set("user_id", "user-1")

	h.TeamMembers(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewHandler_MyRatings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	avg := 4.5
	svc := &fakeReviewService{
		MyRatingsFn: func(ctx context.Context, userID string) (review.MyRatingsResponse, error) {
			return review.MyRatingsResponse{
				Reviews:       []review.LeadReviewResponse{{ID: uuid.NewString(), FinalRating: 4}, {ID: uuid.NewString(), FinalRating: 5}},
				AverageRating: &avg,
			}, nil
		},
	}

	h := review.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/my-ratings", nil)
	c.Set("user_id", "user-1")

	h.MyRatings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"averageRating":4.5`)
}
